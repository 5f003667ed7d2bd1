package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/rgbmix/internal/app"
	"github.com/vk/rgbmix/internal/rgb"
)

// UsageExitCode is returned for malformed invocations, as opposed to
// well-formed invocations carrying bad color or ratio values.
const UsageExitCode = 2

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, a ...any) *ExitError {
	return &ExitError{Code: UsageExitCode, Message: fmt.Sprintf(format, a...)}
}

const usageText = `
rgbmix - Mix two RGB colors with optional ratio.

Usage:
  rgbmix --color1 R,G,B --color2 R,G,B [options]

Options:
`

const examplesText = `
Examples:
  rgbmix --color1 255,0,0 --color2 0,255,0
  rgbmix --color1 255,0,0 --color2 0,0,255 --ratio 0.7
  rgbmix --color1 "255 128 0" --color2 "0 128 255" --format hex
`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an error.
//
// Malformed invocations yield an *ExitError. An out-of-range ratio yields
// the *rgb.RatioRangeError from app.NewConfig so the caller can treat it
// like any other value error.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rgbmix", flag.ContinueOnError)
	// The flag package would print its own error and the usage on failure;
	// errors are reported by the caller as a single line instead.
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	printUsage := func() {
		fmt.Fprint(output, usageText)
		flagSet.SetOutput(output)
		flagSet.PrintDefaults()
		flagSet.SetOutput(io.Discard)
		fmt.Fprint(output, examplesText)
	}

	color1Flag := flagSet.String("color1", "", `First RGB color (format: R,G,B or "R G B"). Required.`)
	color2Flag := flagSet.String("color2", "", `Second RGB color (format: R,G,B or "R G B"). Required.`)
	ratioFlag := flagSet.Float64("ratio", app.DefaultRatio, "Mix ratio (0.0-1.0). 1.0 = all color1, 0.0 = all color2.")
	formatFlag := flagSet.String("format", string(rgb.ModeBoth), "Output format. Options: 'rgb', 'hex' or 'both'.")
	previewFlag := flagSet.Bool("preview", false, "Append a colored swatch to each line.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage()
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, usageError("unrecognized arguments: %s", strings.Join(flagSet.Args(), " "))
	}

	// Presence, not emptiness: an explicit empty color is a value error
	// reported by the parser.
	seen := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	var missing []string
	for _, name := range []string{"color1", "color2"} {
		if !seen[name] {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return nil, false, usageError("the following arguments are required: %s", strings.Join(missing, ", "))
	}

	format, err := rgb.ParseMode(*formatFlag)
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Color1:    *color1Flag,
		Color2:    *color2Flag,
		Ratio:     *ratioFlag,
		Format:    format,
		Preview:   *previewFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, err
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
