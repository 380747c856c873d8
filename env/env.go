package env

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/agentuity/translator-check/logger"
	"github.com/spf13/cobra"
)

// FlagOrEnv will try and get a flag from the cobra.Command and if not found, look it up in the environment
// and fallback to defaultValue if non found
func FlagOrEnv(cmd *cobra.Command, flagName string, envName string, defaultValue string) string {
	flagValue, _ := cmd.Flags().GetString(flagName)
	if flagValue != "" {
		return flagValue
	}
	if val, ok := os.LookupEnv(envName); ok && val != "" {
		return val
	}
	return defaultValue
}

// Choice resolves an option like FlagOrEnv and checks that the lower cased
// result is one of allowed.
func Choice(cmd *cobra.Command, flagName string, envName string, defaultValue string, allowed ...string) (string, error) {
	val := strings.ToLower(FlagOrEnv(cmd, flagName, envName, defaultValue))
	if !slices.Contains(allowed, val) {
		return "", fmt.Errorf("invalid --%s %q: must be one of %s", flagName, val, strings.Join(allowed, ", "))
	}
	return val, nil
}

// LogLevel returns the level from the log-level flag, then TRANSLATOR_CHECK_LOG_LEVEL, falling back to warn.
func LogLevel(cmd *cobra.Command) logger.LogLevel {
	level, _ := logger.ParseLevel(FlagOrEnv(cmd, "log-level", logger.EnvLogLevel, "warn"))
	return level
}

// NewLogger returns a console logger by first checking the cobra.Command log-level flag, then use the
// TRANSLATOR_CHECK_LOG_LEVEL environment value and falling back to the warn logger level
func NewLogger(cmd *cobra.Command) logger.Logger {
	return logger.NewConsoleLogger(LogLevel(cmd))
}
