package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rodizioboard/rodizio/internal/models"
	"github.com/spf13/cobra"
)

var flavorCmd = &cobra.Command{
	Use:   "flavor",
	Short: "Manage the flavor catalog",
}

var flavorAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new flavor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		category, _ := cmd.Flags().GetString("category")
		flavor, err := b.AddFlavor(args[0], category)
		if err != nil {
			return err
		}
		fmt.Printf("Added flavor %s (%s) id=%s\n", flavor.Name, flavor.Category, flavor.ID)
		return nil
	},
}

var flavorRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a flavor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := b.RenameFlavor(args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Flavor renamed")
		return nil
	},
}

var flavorDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a flavor from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := b.DeleteFlavor(args[0]); err != nil {
			return err
		}
		fmt.Println("Flavor removed")
		return nil
	},
}

var flavorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List flavors, optionally by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		category, _ := cmd.Flags().GetString("category")
		var flavors []models.Flavor
		if category != "" {
			flavors = b.ListFlavorsByCategory(category)
		} else {
			flavors = b.ListFlavors()
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
		for _, f := range flavors {
			fmt.Fprintf(w, "%s\t%s\t%s\n", f.ID, f.Name, f.Category)
		}
		return w.Flush()
	},
}

func init() {
	flavorAddCmd.Flags().String("category", "", "Flavor category: sweet or savory")
	flavorListCmd.Flags().String("category", "", "Only list this category")

	flavorCmd.AddCommand(flavorAddCmd, flavorRenameCmd, flavorDeleteCmd, flavorListCmd)
	rootCmd.AddCommand(flavorCmd)
}
