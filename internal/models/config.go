package models

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the runtime settings read from the config file, environment
// and flags.
type Config struct {
	StoreBackend string `mapstructure:"store_backend"` // "file" or "sqlite"
	StorePath    string `mapstructure:"store_path"`
	ExportDir    string `mapstructure:"export_dir"`
	Locale       string `mapstructure:"locale"`
	SeedOrders   int    `mapstructure:"seed_orders"`
	SeedServers  int    `mapstructure:"seed_servers"`
}

func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetDefault("store_backend", "file")
	viper.SetDefault("export_dir", ".")
	viper.SetDefault("locale", "pt-BR")
	viper.SetDefault("seed_orders", 40)
	viper.SetDefault("seed_servers", 4)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.StorePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home dir: %w", err)
		}
		config.StorePath = filepath.Join(home, ".rodizio")
	}

	return &config, nil
}
