package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show tonight's numbers and the all-time aggregate",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		fmt.Println("== Tonight ==")
		renderNightStats(b.NightReport())

		hourly := b.HourlyReport()
		if len(hourly) > 0 {
			fmt.Println("Orders per hour:")
			for _, bucket := range hourly {
				fmt.Printf("  %4s %s %d\n", bucket.Label, strings.Repeat("#", bucket.Count), bucket.Count)
			}
		}

		overall := b.AggregateAcrossHistory()
		fmt.Println("\n== All nights ==")
		fmt.Printf("Nights recorded: %d\n", overall.SessionCount)
		fmt.Printf("Total orders: %d\n", overall.TotalOrders)
		fmt.Printf("Average prep time: %d min\n", overall.OverallAvgPrepMinutes)
		renderRanking("Top flavors", overall.TopFlavors)
		renderRanking("Server ranking", overall.ServerRanking)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
