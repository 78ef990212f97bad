package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config keys. Environment variables use the FOLIOCTL_ prefix, so
// gateway_url is also settable as FOLIOCTL_GATEWAY_URL.
const (
	cfgKeyGatewayURL = "gateway_url"
	cfgKeyStateDir   = "state_dir"
	cfgKeyNATSURL    = "nats_url"

	defaultGatewayURL = "http://localhost:8080"
)

var cfg *viper.Viper

// loadConfig reads the optional config file into the package-level
// viper instance. A missing file is not an error; flags and env
// variables still apply.
func loadConfig(configFile string) error {
	v := viper.New()
	v.SetDefault(cfgKeyGatewayURL, defaultGatewayURL)
	v.SetEnvPrefix("FOLIOCTL")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".folioctl")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configFile != "" || !os.IsNotExist(err) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg = v
	return nil
}

// resolveGatewayURL applies flag > config/env > default precedence.
func resolveGatewayURL() string {
	if flagGatewayURL != "" {
		return flagGatewayURL
	}
	return cfg.GetString(cfgKeyGatewayURL)
}

// resolveStateDir returns the directory holding drafts and saved
// contact info, defaulting to ~/.folioctl.
func resolveStateDir() (string, error) {
	if flagStateDir != "" {
		return flagStateDir, nil
	}
	if dir := cfg.GetString(cfgKeyStateDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve state dir: %w", err)
	}
	return filepath.Join(home, ".folioctl"), nil
}

func resolveNATSURL() string {
	if flagNATSURL != "" {
		return flagNATSURL
	}
	return cfg.GetString(cfgKeyNATSURL)
}
