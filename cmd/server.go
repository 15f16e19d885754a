package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage the wait staff",
}

var serverAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		server, err := b.AddServer(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Added server %s id=%s\n", server.Name, server.ID)
		return nil
	},
}

var serverRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a server",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := b.RenameServer(args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Server renamed")
		return nil
	},
}

var serverDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := b.DeleteServer(args[0]); err != nil {
			return err
		}
		fmt.Println("Server removed")
		return nil
	},
}

var serverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the wait staff",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, s := range b.ListServers() {
			fmt.Fprintf(w, "%s\t%s\n", s.ID, s.Name)
		}
		return w.Flush()
	},
}

func init() {
	serverCmd.AddCommand(serverAddCmd, serverRenameCmd, serverDeleteCmd, serverListCmd)
	rootCmd.AddCommand(serverCmd)
}
