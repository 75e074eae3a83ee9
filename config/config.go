package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	Port = "server.port"

	LogLevel  = "log.level"
	LogFormat = "log.format"
)

func init() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault(Port, ":9000")
	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(LogFormat, "text")
}

// Load reads the YAML config file at path into viper. A missing file is not
// an error: defaults and environment variables still apply.
func Load(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("load: error reading config %s: %w", path, err)
	}
	return nil
}
