package board

import (
	"fmt"
	"math"
	"sort"

	"github.com/rodizioboard/rodizio/internal/models"
)

// ComputeNightStats summarizes one night's orders: totals, rounded mean prep
// time over completed orders (0 when none completed), the five most ordered
// flavors and the full server ranking. Ties keep first-encountered order.
func ComputeNightStats(orders []models.Order) models.NightStats {
	stats := models.NightStats{
		OrderCount:    len(orders),
		TopFlavors:    []models.ItemCount{},
		ServerRanking: []models.ItemCount{},
	}

	var prepSum, prepCount int
	for _, o := range orders {
		if o.Completed() {
			stats.CompletedCount++
			if o.PrepMinutes != nil {
				prepSum += *o.PrepMinutes
				prepCount++
			}
		} else {
			stats.PendingCount++
		}
	}
	if prepCount > 0 {
		stats.AvgPrepMinutes = int(math.Round(float64(prepSum) / float64(prepCount)))
	}

	stats.TopFlavors = rankByCount(orders, func(o models.Order) string { return o.FlavorName }, 5)
	stats.ServerRanking = rankByCount(orders, func(o models.Order) string { return o.ServerName }, 0)
	return stats
}

// NightReport computes the stats of the still-open active night.
func (b *Board) NightReport() models.NightStats {
	return ComputeNightStats(b.state.ActiveNight.Orders)
}

// AggregateAcrossHistory merges every archived night with the active night.
// History entries written before stats were stored are recomputed from their
// raw order lists, so older imports aggregate the same as fresh ones.
func (b *Board) AggregateAcrossHistory() models.OverallStats {
	all := make([]models.Order, 0, len(b.state.ActiveNight.Orders))
	for _, night := range b.state.History {
		all = append(all, night.Orders...)
	}
	all = append(all, b.state.ActiveNight.Orders...)

	nightly := ComputeNightStats(all)
	return models.OverallStats{
		TotalOrders:           nightly.OrderCount,
		OverallAvgPrepMinutes: nightly.AvgPrepMinutes,
		TopFlavors:            nightly.TopFlavors,
		ServerRanking:         nightly.ServerRanking,
		SessionCount:          len(b.state.History) + 1,
	}
}

// HourlyDistribution buckets orders by the hour of day they were placed,
// sorted numerically by hour. Feeds the x-axis of the chart collaborator.
func HourlyDistribution(orders []models.Order) []models.HourBucket {
	counts := make(map[int]int)
	for _, o := range orders {
		counts[o.CreatedAt.Hour()]++
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	out := make([]models.HourBucket, 0, len(hours))
	for _, h := range hours {
		out = append(out, models.HourBucket{
			Hour:  h,
			Label: fmt.Sprintf("%dh", h),
			Count: counts[h],
		})
	}
	return out
}

// HourlyReport is the distribution for the active night.
func (b *Board) HourlyReport() []models.HourBucket {
	return HourlyDistribution(b.state.ActiveNight.Orders)
}

// rankByCount counts orders per key, preserving first-encounter order among
// equal counts. limit 0 means no cap.
func rankByCount(orders []models.Order, key func(models.Order) string, limit int) []models.ItemCount {
	index := make(map[string]int)
	ranking := []models.ItemCount{}
	for _, o := range orders {
		name := key(o)
		if i, ok := index[name]; ok {
			ranking[i].Count++
			continue
		}
		index[name] = len(ranking)
		ranking = append(ranking, models.ItemCount{Name: name, Count: 1})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
