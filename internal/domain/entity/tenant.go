package entity

import "time"

// TenantConfig is the per-workspace configuration written by setup.
// Optional references are empty when not configured.
type TenantConfig struct {
	TenantID          string
	ChannelRef        string
	StatusRoleRef     string
	ModeratorRoleRef  string
	CheckHour         int
	SummaryMessageRef string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (c *TenantConfig) HasStatusRole() bool {
	return c.StatusRoleRef != ""
}

func (c *TenantConfig) HasModeratorRole() bool {
	return c.ModeratorRoleRef != ""
}

func (c *TenantConfig) HasSummaryMessage() bool {
	return c.SummaryMessageRef != ""
}
