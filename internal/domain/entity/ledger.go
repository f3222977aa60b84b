package entity

import "time"

// WishLedgerEntry records that a subject was wished on a given day (YYYY-MM-DD).
type WishLedgerEntry struct {
	TenantID  string
	SubjectID string
	Date      string
	CreatedAt time.Time
}
