// Package config provides configuration management for the kontroll CLI.
//
// Global settings resolve in viper's usual order: explicit flag, then
// KONTROLL_* environment variable, then the config file, then the flag
// default. The config file is YAML:
//
//	socket: /run/user/1000/kontroll.sock
//	timeout: 10
//	log-level: INFO
//	output: table
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. KONTROLL_SOCKET.
const EnvPrefix = "KONTROLL"

// globalKeys are the persistent flags that can also come from env or file.
var globalKeys = []string{"socket", "addr", "timeout", "log-level", "output"}

// Load resolves Global from flags, environment and config file.
func Load(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := cmd.Flags()
	for _, key := range globalKeys {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", key, err)
		}
	}

	if Global.ConfigFile != "" {
		v.SetConfigFile(Global.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := DefaultConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) || Global.ConfigFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		logging.Debug("No config file found, using flags and environment")
	} else {
		logging.Debug("Using config file %s", v.ConfigFileUsed())
	}

	Global.Socket = v.GetString("socket")
	Global.Addr = v.GetString("addr")
	Global.Timeout = v.GetInt("timeout")
	Global.LogLevel = strings.ToUpper(v.GetString("log-level"))
	Global.Output = strings.ToLower(v.GetString("output"))

	return nil
}
