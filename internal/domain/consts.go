package domain

// DateLayout is the ISO day format used for ledger keys and day rollover.
const DateLayout = "2006-01-02"

const (
	// DefaultCheckHour is used by setup when no hour is given
	DefaultCheckHour = 9

	// DefaultPageSize is the number of subjects per summary page
	DefaultPageSize = 20

	// DefaultRetentionDays is how long wish ledger entries are kept
	DefaultRetentionDays = 7

	MinCheckHour = 0
	MaxCheckHour = 23
)

// ValidCheckHour reports whether hour is a valid tenant-local trigger hour.
func ValidCheckHour(hour int) bool {
	return hour >= MinCheckHour && hour <= MaxCheckHour
}
