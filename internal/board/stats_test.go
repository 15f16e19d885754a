package board

import (
	"testing"
	"time"

	"github.com/rodizioboard/rodizio/internal/models"
)

func minutes(n int) *int {
	return &n
}

func completedOrder(flavor, server string, prep int, at time.Time) models.Order {
	return models.Order{
		ID:          flavor + server,
		FlavorName:  flavor,
		ServerName:  server,
		CreatedAt:   at,
		Status:      models.OrderStatusCompleted,
		PrepMinutes: minutes(prep),
	}
}

func pendingOrder(flavor, server string, at time.Time) models.Order {
	return models.Order{
		ID:         flavor + server,
		FlavorName: flavor,
		ServerName: server,
		CreatedAt:  at,
		Status:     models.OrderStatusPending,
	}
}

func TestNightStatsEmpty(t *testing.T) {
	stats := ComputeNightStats(nil)

	if stats.OrderCount != 0 || stats.CompletedCount != 0 || stats.PendingCount != 0 {
		t.Errorf("counts on empty input: %+v", stats)
	}
	if stats.AvgPrepMinutes != 0 {
		t.Errorf("avg on empty input = %d, want 0", stats.AvgPrepMinutes)
	}
	if len(stats.TopFlavors) != 0 || len(stats.ServerRanking) != 0 {
		t.Errorf("rankings on empty input: %+v", stats)
	}
}

func TestNightStatsAvgIsZeroWithoutCompletions(t *testing.T) {
	at := time.Date(2025, 11, 21, 20, 0, 0, 0, time.UTC)
	stats := ComputeNightStats([]models.Order{
		pendingOrder("Calabresa", "Ana", at),
		pendingOrder("Chocolate", "Bruno", at),
	})

	if stats.AvgPrepMinutes != 0 {
		t.Errorf("avg = %d, want 0 when nothing completed", stats.AvgPrepMinutes)
	}
	if stats.PendingCount != 2 || stats.CompletedCount != 0 {
		t.Errorf("counts wrong: %+v", stats)
	}
}

func TestNightStatsRoundedMean(t *testing.T) {
	at := time.Date(2025, 11, 21, 20, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		preps []int
		want  int
	}{
		{name: "fourAndTen", preps: []int{4, 10}, want: 7},
		{name: "roundsHalfUp", preps: []int{4, 5}, want: 5},
		{name: "single", preps: []int{9}, want: 9},
		{name: "roundsDown", preps: []int{4, 4, 5}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var orders []models.Order
			for i, prep := range tt.preps {
				orders = append(orders, completedOrder("Calabresa", "Ana", prep, at.Add(time.Duration(i)*time.Minute)))
			}
			if got := ComputeNightStats(orders).AvgPrepMinutes; got != tt.want {
				t.Errorf("avg = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTopFlavorsCapAtFiveWithStableTies(t *testing.T) {
	at := time.Date(2025, 11, 21, 20, 0, 0, 0, time.UTC)
	var orders []models.Order
	// Six distinct flavors: two orders of the first, one of each other.
	names := []string{"Calabresa", "Margherita", "Portuguesa", "Chocolate", "Atum", "Napolitana"}
	for i, name := range names {
		orders = append(orders, pendingOrder(name, "Ana", at.Add(time.Duration(i)*time.Minute)))
	}
	orders = append(orders, pendingOrder("Calabresa", "Ana", at.Add(10*time.Minute)))

	top := ComputeNightStats(orders).TopFlavors
	if len(top) != 5 {
		t.Fatalf("top flavors length = %d, want 5", len(top))
	}
	if top[0].Name != "Calabresa" || top[0].Count != 2 {
		t.Errorf("top[0] = %+v, want Calabresa x2", top[0])
	}
	// The tied single-count flavors keep first-encountered order.
	wantRest := []string{"Margherita", "Portuguesa", "Chocolate", "Atum"}
	for i, name := range wantRest {
		if top[i+1].Name != name {
			t.Errorf("top[%d] = %q, want %q", i+1, top[i+1].Name, name)
		}
	}
}

func TestServerRankingCountsEveryServer(t *testing.T) {
	at := time.Date(2025, 11, 21, 20, 0, 0, 0, time.UTC)
	orders := []models.Order{
		pendingOrder("Calabresa", "Ana", at),
		pendingOrder("Chocolate", "Bruno", at),
		pendingOrder("Atum", "Bruno", at),
		pendingOrder("Margherita", "Carla", at),
	}

	ranking := ComputeNightStats(orders).ServerRanking
	if len(ranking) != 3 {
		t.Fatalf("ranking length = %d, want 3", len(ranking))
	}
	if ranking[0].Name != "Bruno" || ranking[0].Count != 2 {
		t.Errorf("ranking[0] = %+v, want Bruno x2", ranking[0])
	}
	if ranking[1].Name != "Ana" || ranking[2].Name != "Carla" {
		t.Errorf("tied servers must keep first-encountered order: %+v", ranking)
	}
}

func TestHourlyDistributionSortsNumerically(t *testing.T) {
	day := time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC)
	var orders []models.Order
	for _, hour := range []int{21, 2, 10, 9, 10, 9, 9} {
		orders = append(orders, pendingOrder("Calabresa", "Ana", day.Add(time.Duration(hour)*time.Hour)))
	}

	buckets := HourlyDistribution(orders)
	wantLabels := []string{"2h", "9h", "10h", "21h"}
	wantCounts := []int{1, 3, 2, 1}
	if len(buckets) != len(wantLabels) {
		t.Fatalf("bucket count = %d, want %d", len(buckets), len(wantLabels))
	}
	for i := range wantLabels {
		if buckets[i].Label != wantLabels[i] || buckets[i].Count != wantCounts[i] {
			t.Errorf("bucket[%d] = %+v, want %s=%d", i, buckets[i], wantLabels[i], wantCounts[i])
		}
	}
}

func TestHourlyDistributionEmpty(t *testing.T) {
	if got := HourlyDistribution(nil); len(got) != 0 {
		t.Errorf("expected empty series, got %+v", got)
	}
}
