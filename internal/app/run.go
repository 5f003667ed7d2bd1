package app

import (
	"context"

	"github.com/vk/rgbmix/internal/ctxlog"
	"github.com/vk/rgbmix/internal/rgb"
)

// Run executes the blend pipeline: validate the ratio, parse color1, parse
// color2, mix. Any failure aborts the run and is returned as-is.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := rgb.ValidateRatio(a.config.Ratio); err != nil {
		return nil, err
	}

	c1, err := parseColor(ctx, "color1", a.config.Color1)
	if err != nil {
		return nil, err
	}
	c2, err := parseColor(ctx, "color2", a.config.Color2)
	if err != nil {
		return nil, err
	}

	mixed := rgb.Mix(c1, c2, a.config.Ratio)
	first, second := rgb.Percentages(a.config.Ratio)
	a.logger.Debug("Colors mixed.", "ratio", a.config.Ratio, "mixed", mixed.Hex())

	a.logger.Debug("App.Run method finished.")
	return &Result{
		Color1:        c1,
		Color2:        c2,
		Mixed:         mixed,
		FirstPercent:  first,
		SecondPercent: second,
	}, nil
}

func parseColor(ctx context.Context, name, raw string) (rgb.Color, error) {
	logger := ctxlog.FromContext(ctx)

	c, err := rgb.Parse(raw)
	if err != nil {
		logger.Debug("Color rejected.", "flag", name, "input", raw, "error", err)
		return rgb.Color{}, err
	}

	logger.Debug("Color parsed.", "flag", name, "input", raw, "color", c.Hex())
	return c, nil
}
