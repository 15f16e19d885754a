package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rodizioboard/rodizio/internal/models"
	"github.com/spf13/cobra"
)

var nightCmd = &cobra.Command{
	Use:   "night",
	Short: "Roll the service night over",
}

var nightNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh night, archiving the current one if it has orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := b.StartNewNight(); err != nil {
			return err
		}
		fmt.Println("New night started")
		return nil
	},
}

var nightCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the current night and show its numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		stats, err := b.CloseNight()
		if err != nil {
			return err
		}
		fmt.Println("Night closed")
		renderNightStats(stats)
		return nil
	},
}

func renderNightStats(stats models.NightStats) {
	fmt.Printf("Orders: %d (%d completed, %d pending)\n", stats.OrderCount, stats.CompletedCount, stats.PendingCount)
	fmt.Printf("Average prep time: %d min\n", stats.AvgPrepMinutes)
	renderRanking("Top flavors", stats.TopFlavors)
	renderRanking("Server ranking", stats.ServerRanking)
}

func renderRanking(title string, ranking []models.ItemCount) {
	if len(ranking) == 0 {
		return
	}
	fmt.Println(title + ":")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, item := range ranking {
		fmt.Fprintf(w, "  %d.\t%s\t%d orders\n", i+1, item.Name, item.Count)
	}
	w.Flush()
}

func init() {
	nightCmd.AddCommand(nightNewCmd, nightCloseCmd)
	rootCmd.AddCommand(nightCmd)
}
