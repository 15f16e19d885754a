package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rodizioboard/rodizio/internal/board"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the catalog, the active night and all history",
	Long: `reset wipes the whole board back to first-run state. This is the only
operation that clears the catalog and it cannot be undone, so it asks twice:
a yes/no prompt followed by typing the confirmation phrase verbatim.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		reader := bufio.NewReader(os.Stdin)

		fmt.Print("This permanently erases all flavors, servers, orders and history. Continue? [y/N] ")
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return nil
		}

		fmt.Printf("Type %q to confirm: ", board.ResetConfirmPhrase)
		phrase, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		if err := b.FullReset(strings.TrimSpace(phrase)); err != nil {
			return err
		}
		fmt.Println("Board reset to first-run state")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
