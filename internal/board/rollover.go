package board

import (
	"fmt"

	"github.com/rodizioboard/rodizio/internal/models"
)

// ResetConfirmPhrase must be typed verbatim to authorize a full reset.
const ResetConfirmPhrase = "ERASE ALL DATA"

// StartNewNight archives the active night into history and opens a fresh
// one. An active night with no orders is discarded rather than archived.
// The catalog always survives a rollover; only FullReset clears it.
func (b *Board) StartNewNight() error {
	if len(b.state.ActiveNight.Orders) > 0 {
		b.archiveActiveNight()
	}
	b.state.ActiveNight = models.NewNight(b.now())
	return b.persist()
}

// CloseNight archives the active night unconditionally, opens a fresh one
// and returns the stats of the night just closed for immediate display.
func (b *Board) CloseNight() (models.NightStats, error) {
	stats := b.archiveActiveNight()
	b.state.ActiveNight = models.NewNight(b.now())
	if err := b.persist(); err != nil {
		return models.NightStats{}, err
	}
	return stats, nil
}

func (b *Board) archiveActiveNight() models.NightStats {
	stats := ComputeNightStats(b.state.ActiveNight.Orders)
	end := b.now()
	night := b.state.ActiveNight
	night.EndTime = &end
	night.Stats = &stats
	b.state.History = append(b.state.History, night)
	return stats
}

// FullReset erases the catalog, the active night and all history. The only
// destructive operation in the system: it refuses to run unless the caller
// passes the literal confirmation phrase.
func (b *Board) FullReset(confirmPhrase string) error {
	if confirmPhrase != ResetConfirmPhrase {
		return fmt.Errorf("%w: confirmation phrase does not match", models.ErrValidation)
	}
	b.state = models.NewSystemState(b.now())
	return b.persist()
}
