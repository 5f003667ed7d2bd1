package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/rgbmix/internal/app"
	"github.com/vk/rgbmix/internal/cli"
)

// main is the entrypoint for the rgbmix application.
func main() {
	// Use a quiet logger until the run's own one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(execute(os.Stdout, os.Stderr, os.Args[1:]))
}

// execute runs the application and turns its outcome into an exit code.
// A failure is reported as exactly one line on errW.
func execute(outW, errW io.Writer, args []string) int {
	err := run(outW, errW, args)
	if err == nil {
		return 0
	}

	fmt.Fprintf(errW, "Error: %v\n", err)

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	mixApp := app.NewApp(errW, appConfig)
	result, err := mixApp.Run(context.Background())
	if err != nil {
		return err
	}

	return app.Report(outW, result, appConfig.Format, appConfig.Preview)
}
