package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadConfig layers flags over BMPCTL_* environment variables over the
// optional config file, and writes the result back into the global flags.
//
// Precedence (highest to lowest):
//  1. Flags set on the command line
//  2. Environment variables (BMPCTL_STRICT, BMPCTL_LOG_DIR, ...)
//  3. Config file (--config or BMPCTL_CONFIG)
//  4. Flag defaults
func loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("BMPCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("configuration file not found: %s", path)
			}
			return fmt.Errorf("failed to read config file: %w", err)
		}
		configFile = path
	}

	verbose = v.GetBool("verbose")
	quiet = v.GetBool("quiet")
	jsonOut = v.GetBool("json")
	strict = v.GetBool("strict")
	logDir = v.GetString("log-dir")
	return nil
}
