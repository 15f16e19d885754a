package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/rodizioboard/rodizio/internal/board"
	"github.com/rodizioboard/rodizio/internal/models"
	"github.com/spf13/cobra"
)

// Presentation of alert levels. Core code only deals in the enum; the badge
// and label live here.
var alertBadges = map[models.AlertLevel]string{
	models.AlertNormal:   "ok",
	models.AlertWarning:  "WARN",
	models.AlertCritical: "LATE",
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage the active night's orders",
}

var orderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a pending order for a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		category, _ := cmd.Flags().GetString("category")
		flavorID, _ := cmd.Flags().GetString("flavor")
		serverID, _ := cmd.Flags().GetString("server")
		table, _ := cmd.Flags().GetInt("table")

		order, err := b.CreateOrder(category, flavorID, serverID, table)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s opened: %s for table %d (%s)\n", order.ID, order.FlavorName, order.TableNumber, order.ServerName)
		return nil
	},
}

var orderCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark an order as delivered to the table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := b.CompleteOrder(args[0]); err != nil {
			return err
		}
		fmt.Println("Order completed")
		return nil
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active night's orders, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		filter, _ := cmd.Flags().GetString("filter")
		renderOrders(os.Stdout, b, filter)
		return nil
	},
}

var orderWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view of the pending queue, refreshed every second",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, cleanup, err := openBoard()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			fmt.Print("\033[2J\033[H")
			renderOrders(os.Stdout, b, board.FilterPending)
			fmt.Println("\nCtrl+C to stop")

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	},
}

func renderOrders(out *os.File, b *board.Board, filter string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFLAVOR\tCATEGORY\tTABLE\tSERVER\tSTATUS\tELAPSED")
	for _, o := range b.ListOrders(filter) {
		elapsed := ""
		status := o.Status
		if o.Pending() {
			secs := b.SecondsElapsed(o)
			elapsed = fmt.Sprintf("%d:%02d", secs/60, secs%60)
			status = fmt.Sprintf("%s [%s]", status, alertBadges[models.AlertFor(b.MinutesElapsed(o))])
		} else if o.PrepMinutes != nil {
			elapsed = fmt.Sprintf("%d min", *o.PrepMinutes)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			o.ID, o.CreatedAt.Format("15:04"), o.FlavorName, o.Category,
			o.TableNumber, o.ServerName, status, elapsed)
	}
	w.Flush()
}

func init() {
	orderCreateCmd.Flags().String("category", "", "Order category: sweet or savory")
	orderCreateCmd.Flags().String("flavor", "", "Flavor id from the catalog")
	orderCreateCmd.Flags().String("server", "", "Server id from the catalog")
	orderCreateCmd.Flags().Int("table", 0, "Table number")
	orderListCmd.Flags().String("filter", board.FilterAll, "Filter: all, pending or completed")

	orderCmd.AddCommand(orderCreateCmd, orderCompleteCmd, orderListCmd, orderWatchCmd)
	rootCmd.AddCommand(orderCmd)
}
