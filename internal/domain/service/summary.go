package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/calendar"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/sirupsen/logrus"
)

type summaryView struct {
	dm       contract.DataManager
	gateway  contract.Gateway
	log      logrus.FieldLogger
	pageSize int
	location *time.Location
}

func newSummaryView(dm contract.DataManager, gateway contract.Gateway, pageSize int, location *time.Location, log logrus.FieldLogger) *summaryView {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &summaryView{
		dm:       dm,
		gateway:  gateway,
		log:      log,
		pageSize: pageSize,
		location: location,
	}
}

// BuildPages orders records by days until their next occurrence, ties by
// subject id, and splits them into pages. When highlight is nil the today
// marker comes from the calendar, otherwise from highlight.
func BuildPages(records []*entity.AnniversaryRecord, ref time.Time, pageSize int, highlight map[string]bool) [][]entity.SummaryLine {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	lines := make([]entity.SummaryLine, 0, len(records))
	for _, record := range records {
		isToday := calendar.IsAnniversaryOn(*record, ref)
		if highlight != nil {
			isToday = highlight[record.SubjectID]
		}

		lines = append(lines, entity.SummaryLine{
			SubjectID:   record.SubjectID,
			DisplayDate: calendar.Display(record.Month, record.Day),
			DaysUntil:   calendar.DaysUntilNext(*record, ref),
			IsToday:     isToday,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].DaysUntil != lines[j].DaysUntil {
			return lines[i].DaysUntil < lines[j].DaysUntil
		}
		return lines[i].SubjectID < lines[j].SubjectID
	})

	var pages [][]entity.SummaryLine
	for start := 0; start < len(lines); start += pageSize {
		end := start + pageSize
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}

	return pages
}

// Render formats one page as plain message text.
func (v *summaryView) Render(lines []entity.SummaryLine, pageIndex, pageCount, checkHour int) string {
	var b strings.Builder

	if pageCount < 1 {
		pageCount = 1
	}
	fmt.Fprintf(&b, "🎂 *Birthday List* (Page %d/%d)\n", pageIndex+1, pageCount)

	if len(lines) == 0 {
		b.WriteString("📂 No birthdays found yet.\n")
	}

	for _, line := range lines {
		marker := ""
		if line.IsToday {
			marker = "🎉 "
		}
		fmt.Fprintf(&b, "✦ %s<@%s>: %s\n", marker, line.SubjectID, line.DisplayDate)
	}

	fmt.Fprintf(&b, "_Birthdays are checked every day at %02d:00 (%s)._", checkHour, v.location.String())

	return b.String()
}

// Refresh renders the first page and posts or edits the pinned summary,
// persisting the new message reference when the gateway had to repost.
func (v *summaryView) Refresh(ctx context.Context, cfg *entity.TenantConfig, ref time.Time, highlight map[string]bool) error {
	records, err := v.dm.Record().ListByTenant(ctx, cfg.TenantID)
	if err != nil {
		return storeError("list records", err)
	}

	pages := BuildPages(records, ref, v.pageSize, highlight)
	var first []entity.SummaryLine
	if len(pages) > 0 {
		first = pages[0]
	}
	text := v.Render(first, 0, len(pages), cfg.CheckHour)

	messageRef, err := v.gateway.PostOrUpdateSummary(ctx, cfg.TenantID, cfg.ChannelRef, cfg.SummaryMessageRef, text)
	if err != nil {
		return fmt.Errorf("failed to publish summary: %w", err)
	}

	if messageRef != cfg.SummaryMessageRef {
		if err := v.dm.Tenant().SetSummaryMessage(ctx, cfg.TenantID, messageRef); err != nil {
			return storeError("save summary message", err)
		}
		cfg.SummaryMessageRef = messageRef
	}

	return nil
}

// Page renders an on-demand view. Out of range indexes are clamped.
func (v *summaryView) Page(ctx context.Context, tenantID string, pageIndex int, ref time.Time) (*entity.SummaryPage, error) {
	cfg, err := v.dm.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return nil, storeError("get tenant config", err)
	}
	if cfg == nil {
		return nil, domain.ErrConfigMissing
	}

	records, err := v.dm.Record().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storeError("list records", err)
	}

	pages := BuildPages(records, ref, v.pageSize, nil)
	count := len(pages)
	if count == 0 {
		count = 1
	}

	if pageIndex >= count {
		pageIndex = count - 1
	}
	if pageIndex < 0 {
		pageIndex = 0
	}

	var lines []entity.SummaryLine
	if len(pages) > 0 {
		lines = pages[pageIndex]
	}

	return &entity.SummaryPage{
		Index: pageIndex,
		Count: count,
		Total: len(records),
		Text:  v.Render(lines, pageIndex, count, cfg.CheckHour),
	}, nil
}
