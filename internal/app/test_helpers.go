package app

import (
	"bytes"
	"os"
	"testing"
)

// SetupAppTest creates a new app instance for tests, logging at debug level
// into a buffer that is dumped when RGBMIX_TEST_LOGS=true.
func SetupAppTest(t *testing.T, cfg *Config) (*App, *bytes.Buffer) {
	t.Helper()

	logBuffer := &bytes.Buffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(logBuffer, cfg)

	t.Cleanup(func() {
		if os.Getenv("RGBMIX_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
