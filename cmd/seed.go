package cmd

import (
	"fmt"
	"time"

	"github.com/rodizioboard/rodizio/internal/board"
	"github.com/rodizioboard/rodizio/internal/factories"
	"github.com/rodizioboard/rodizio/internal/models"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the board with a demo catalog and a night of orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Orders are backdated through the evening so the report view has a
		// per-hour curve; a virtual clock walks forward from service start.
		current := time.Now().Add(-6 * time.Hour)
		b, cfg, cleanup, err := openBoard(board.WithClock(func() time.Time { return current }))
		if err != nil {
			return err
		}
		defer cleanup()

		force, _ := cmd.Flags().GetBool("force")
		state := b.State()
		if !force && (len(state.Catalog.Flavors) > 0 || len(state.ActiveNight.Orders) > 0 || len(state.History) > 0) {
			return fmt.Errorf("board already has data; pass --force to seed anyway")
		}

		var flavors []models.Flavor
		for _, seed := range factories.FlavorSeeds() {
			flavor, err := b.AddFlavor(seed.Name, seed.Category)
			if err != nil {
				return err
			}
			flavors = append(flavors, flavor)
		}

		var servers []models.Server
		for _, name := range factories.ServerNames(cfg.SeedServers) {
			server, err := b.AddServer(name)
			if err != nil {
				return err
			}
			servers = append(servers, server)
		}

		count, _ := cmd.Flags().GetInt("orders")
		if count <= 0 {
			count = cfg.SeedOrders
		}

		bar := progressbar.Default(int64(count), "seeding orders")
		wallNow := time.Now()
		for i := 0; i < count; i++ {
			current = current.Add(time.Duration(factories.GapMinutes()) * time.Minute)
			// Never place a demo order in the future.
			if current.After(wallNow) {
				current = wallNow
			}
			flavor := flavors[i%len(flavors)]
			server := servers[i%len(servers)]

			order, err := b.CreateOrder(flavor.Category, flavor.ID, server.ID, factories.TableNumber())
			if err != nil {
				return err
			}
			if factories.ShouldComplete() {
				// Jump the clock to the delivery moment, then back, so the
				// next order is still created in sequence.
				placed := current
				current = current.Add(time.Duration(factories.PrepMinutes()) * time.Minute)
				if current.After(wallNow) {
					current = wallNow
				}
				if err := b.CompleteOrder(order.ID); err != nil {
					return err
				}
				current = placed
			}
			bar.Add(1)
		}

		fmt.Printf("Seeded %d flavors, %d servers and %d orders\n", len(flavors), len(servers), count)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("orders", 0, "How many demo orders to create (default from config)")
	seedCmd.Flags().Bool("force", false, "Seed even if the board already has data")

	rootCmd.AddCommand(seedCmd)
}
