package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import the whole board state",
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current state to a dated backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, cfg, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.ExportDir
		}
		path, err := b.Export(dir)
		if err != nil {
			return err
		}
		fmt.Println("Backup written to", path)
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the current state with a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := b.Import(args[0]); err != nil {
			return err
		}
		fmt.Println("Backup imported")
		return nil
	},
}

func init() {
	backupExportCmd.Flags().String("dir", "", "Directory to write the backup to (default from config)")

	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
	rootCmd.AddCommand(backupCmd)
}
