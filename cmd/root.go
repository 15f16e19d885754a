package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rodizioboard/rodizio/internal/board"
	"github.com/rodizioboard/rodizio/internal/models"
	"github.com/rodizioboard/rodizio/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rodizio",
	Short: "Order-tracking board for rodízio pizza service",
	Long: `rodizio is a single-location restaurant order board: register flavors and
wait staff, open and complete table orders through a night of service, and
report throughput and prep latency per night and across all recorded nights.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rodizio.yaml)")

	rootCmd.PersistentFlags().String("store-backend", "file", "State store backend: file or sqlite")
	rootCmd.PersistentFlags().String("store-path", "", "State store location (default is $HOME/.rodizio)")
	rootCmd.PersistentFlags().String("locale", "pt-BR", "Locale used for sorting catalog names")
	rootCmd.PersistentFlags().String("export-dir", ".", "Directory backups are written to")

	viper.BindPFlag("store_backend", rootCmd.PersistentFlags().Lookup("store-backend"))
	viper.BindPFlag("store_path", rootCmd.PersistentFlags().Lookup("store-path"))
	viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
	viper.BindPFlag("export_dir", rootCmd.PersistentFlags().Lookup("export-dir"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rodizio")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openBoard wires config, store and board together for a command run. The
// returned cleanup closes the store.
func openBoard(opts ...board.Option) (*board.Board, *models.Config, func(), error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	path := cfg.StorePath
	if cfg.StoreBackend == "sqlite" {
		if err := os.MkdirAll(cfg.StorePath, 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("preparing store dir: %w", err)
		}
		path = filepath.Join(cfg.StorePath, "rodizio.db")
	}

	st, err := store.Open(cfg.StoreBackend, path)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append([]board.Option{board.WithLocale(cfg.Locale)}, opts...)
	b, err := board.New(st, opts...)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		st.Close()
	}
	return b, cfg, cleanup, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
