package entity

import "time"

// AnniversaryRecord is the birthday of one subject inside one tenant.
type AnniversaryRecord struct {
	TenantID  string
	SubjectID string
	Month     int
	Day       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *AnniversaryRecord) IsLeapDay() bool {
	return r.Month == 2 && r.Day == 29
}
