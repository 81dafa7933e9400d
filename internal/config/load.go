package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DBConfig holds configuration for the load command.
type DBConfig struct {
	PGDSN     string
	Dir       string
	Tables    []string
	BatchSize int
	LogLevel  string
}

// LoadDB merges config file, environment variables, and flags into DBConfig.
func LoadDB(cfgFile string, flags *pflag.FlagSet) (DBConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("ROGUEDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("dir", "./data/processed")
	v.SetDefault("batch-size", 1000)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return DBConfig{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := readConfigFile(v, cfgFile); err != nil {
		return DBConfig{}, err
	}

	cfg := DBConfig{
		PGDSN:     v.GetString("pg-dsn"),
		Dir:       v.GetString("dir"),
		Tables:    getStringSlice(v, "tables"),
		BatchSize: v.GetInt("batch-size"),
		LogLevel:  v.GetString("log-level"),
	}

	return cfg, nil
}
