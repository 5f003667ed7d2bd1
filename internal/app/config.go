package app

import "github.com/vk/rgbmix/internal/rgb"

// DefaultRatio is the weight of the first color when none is given.
const DefaultRatio = 0.5

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Color1 string // raw, unparsed
	Color2 string
	Ratio  float64
	Format rgb.Mode

	Preview   bool
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy. Only the ratio is checked here,
// ahead of any color parsing; a failure is the *rgb.RatioRangeError itself.
func NewConfig(cfg Config) (*Config, error) {
	if err := rgb.ValidateRatio(cfg.Ratio); err != nil {
		return nil, err
	}

	if cfg.Format == "" {
		cfg.Format = rgb.ModeBoth
	}

	return &cfg, nil
}
