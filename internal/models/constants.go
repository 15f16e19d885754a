package models

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"

	CategorySweet  = "sweet"
	CategorySavory = "savory"
)

// Alert thresholds for pending orders, in elapsed minutes. Fixed by design.
const (
	AlertWarningMinutes  = 5
	AlertCriticalMinutes = 10
)

type AlertLevel int

const (
	AlertNormal AlertLevel = iota
	AlertWarning
	AlertCritical
)

func (l AlertLevel) String() string {
	switch l {
	case AlertWarning:
		return "warning"
	case AlertCritical:
		return "critical"
	default:
		return "normal"
	}
}

// AlertFor classifies a pending order by how long it has been waiting.
func AlertFor(elapsedMinutes int) AlertLevel {
	switch {
	case elapsedMinutes >= AlertCriticalMinutes:
		return AlertCritical
	case elapsedMinutes >= AlertWarningMinutes:
		return AlertWarning
	default:
		return AlertNormal
	}
}

// ValidCategory reports whether c is one of the two flavor categories.
func ValidCategory(c string) bool {
	return c == CategorySweet || c == CategorySavory
}
