package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyInput    = "input"
	keyLogLevel = "log-level"
	keyIndent   = "indent"
)

// config holds the resolved settings for one invocation.
type config struct {
	Input    string
	LogLevel slog.Level
	Indent   bool
}

// loadEnvFiles loads .env files from the working directory, if present.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// newViper returns a viper instance reading COLLECT_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("collect")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// setupFlags adds the persistent flags shared by every operation.
func setupFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(keyInput, "i", "-", "JSON file holding an array of records, - for stdin")
	cmd.PersistentFlags().String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	cmd.PersistentFlags().Bool(keyIndent, false, "pretty-print the JSON output")
}

// readConfig binds the command's flags to v and resolves the settings.
func readConfig(v *viper.Viper, cmd *cobra.Command) (config, error) {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config{}, err
	}
	conf := config{
		Input:  v.GetString(keyInput),
		Indent: v.GetBool(keyIndent),
	}
	if err := conf.LogLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return config{}, fmt.Errorf("%w: %q", ErrInvalidLogLevel, v.GetString(keyLogLevel))
	}
	return conf, nil
}
