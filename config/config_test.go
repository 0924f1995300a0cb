package config

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	utils "github.com/minaorangina/splendor/internal"
	"github.com/minaorangina/splendor/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SPLENDOR_PLAYERS", "SPLENDOR_CATALOG", "SPLENDOR_SEED", "SPLENDOR_LOG_LEVEL", "SPLENDOR_DEV"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		c, err := FromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, c, Config{Players: 2, LogLevel: "info"})
	})

	t.Run("reads every variable", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SPLENDOR_PLAYERS", "4")
		t.Setenv("SPLENDOR_CATALOG", "/tmp/cards.txt")
		t.Setenv("SPLENDOR_SEED", "42")
		t.Setenv("SPLENDOR_LOG_LEVEL", "debug")
		t.Setenv("SPLENDOR_DEV", "true")

		c, err := FromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, c, Config{
			Players:     4,
			CatalogPath: "/tmp/cards.txt",
			Seed:        42,
			LogLevel:    "debug",
			Dev:         true,
		})
	})

	t.Run("unparseable value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SPLENDOR_PLAYERS", "lots")

		_, err := FromEnv()
		utils.AssertErrored(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})

	t.Run("unparseable seed or flag", func(t *testing.T) {
		for key, value := range map[string]string{"SPLENDOR_SEED": "not-a-number", "SPLENDOR_DEV": "maybe"} {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := FromEnv()
			utils.AssertErrored(t, err)
			assert.Contains(t, err.Error(), "parse env:", key)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SPLENDOR_PLAYERS", "5")
		t.Setenv("SPLENDOR_LOG_LEVEL", "loud")

		_, err := FromEnv()
		errs := multierr.Errors(err)
		require.Len(t, errs, 2)
		for _, e := range errs {
			utils.AssertErrorKind(t, e, protocol.InvalidArgument)
		}
	})
}

func TestLogger(t *testing.T) {
	for _, dev := range []bool{false, true} {
		logger, err := Config{Players: 2, LogLevel: "warn", Dev: dev}.Logger()
		utils.AssertNoError(t, err)

		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	}

	_, err := Config{LogLevel: "nope"}.Logger()
	utils.AssertErrored(t, err)
}

// Exitf calls os.Exit, so it runs in a subprocess
func TestExitf(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "expected *exec.ExitError, got %T: %v", err, err)
	utils.AssertEqual(t, exitErr.ExitCode(), 1)
	assert.True(t, strings.Contains(string(out), "fatal: something broke"))
}
