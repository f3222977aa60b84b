package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/calendar"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-birthday-bot/internal/domain/slack"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const (
	blockIDPage    = "birthday_page"
	actionPrevPage = "birthday_page_prev"
	actionNextPage = "birthday_page_next"

	// testDateTimeout bounds a simulated run that outlives its slash command
	testDateTimeout = 5 * time.Minute
)

type SlackHandler struct {
	birthdayService contract.BirthdayService
	signingSecret   string
	location        *time.Location
	now             func() time.Time
	log             logrus.FieldLogger
}

// New builds the Slack HTTP handler. clock defaults to time.Now.
func New(birthdayService contract.BirthdayService, signingSecret string, location *time.Location, clock func() time.Time, log logrus.FieldLogger) *SlackHandler {
	if location == nil {
		location = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &SlackHandler{
		birthdayService: birthdayService,
		signingSecret:   signingSecret,
		location:        location,
		now:             clock,
		log:             log.WithField("component", "handler"),
	}
}

func (h *SlackHandler) clock() time.Time {
	return h.now().In(h.location)
}

// verifyRequest checks the Slack signature and leaves the body readable
func (h *SlackHandler) verifyRequest(r *http.Request) ([]byte, int) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, http.StatusBadRequest
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		return nil, http.StatusUnauthorized
	}

	if _, err := verifier.Write(body); err != nil {
		return nil, http.StatusInternalServerError
	}

	if err := verifier.Ensure(); err != nil {
		return nil, http.StatusUnauthorized
	}

	return body, http.StatusOK
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, status := h.verifyRequest(r); status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error()+". Use `/birthday help` to see the available commands.")
		return
	}

	// Handle command
	response := h.handleCommand(r, cmd, &s)

	h.writeJSON(w, response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSetup:
		return h.handleSetup(r, cmd, slashCmd)
	case slackcmd.CmdSet:
		return h.handleSetRecord(r, slashCmd.TeamID, slashCmd.UserID, cmd.Args, "Use: `/birthday set DD MM`")
	case slackcmd.CmdRemove:
		return h.handleDeleteRecord(r, slashCmd.TeamID, slashCmd.UserID)
	case slackcmd.CmdSetUser:
		return h.handleSetUser(r, cmd, slashCmd)
	case slackcmd.CmdRemoveUser:
		return h.handleRemoveUser(r, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(r, cmd, slashCmd)
	case slackcmd.CmdRefresh:
		return h.handleRefresh(r, slashCmd)
	case slackcmd.CmdImport:
		return h.handleImport(r, cmd, slashCmd)
	case slackcmd.CmdTestDate:
		return h.handleTestDate(r, cmd, slashCmd)
	case slackcmd.CmdWished:
		return h.handleWished(r, slashCmd)
	case slackcmd.CmdClearWished:
		return h.handleClearWished(r, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSetup(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	ctx := r.Context()

	args, err := slackcmd.ParseSetupArgs(cmd.Args)
	if err != nil {
		return h.createErrorResponse("Use: `/birthday setup #channel [@status-group] [@mod-group mod] [hour]`")
	}

	channelID := args.ChannelID
	if channelID == "" {
		channelID = slashCmd.ChannelID
	}

	checkHour := domain.DefaultCheckHour
	if args.HourSet {
		checkHour = args.CheckHour
	} else {
		existing, err := h.birthdayService.GetConfig(ctx, slashCmd.TeamID)
		if err != nil {
			return h.serviceError(err, slashCmd.TeamID, "load the current configuration")
		}
		if existing != nil {
			checkHour = existing.CheckHour
		}
	}

	cfg := &entity.TenantConfig{
		TenantID:         slashCmd.TeamID,
		ChannelRef:       channelID,
		StatusRoleRef:    args.StatusGroupID,
		ModeratorRoleRef: args.ModeratorGroupID,
		CheckHour:        checkHour,
	}

	if err := h.birthdayService.Setup(ctx, cfg); err != nil {
		return h.serviceError(err, slashCmd.TeamID, "save the configuration")
	}

	var text strings.Builder
	fmt.Fprintf(&text, "✅ Birthday messages will be posted in <#%s> every day at %02d:00 (%s).", channelID, checkHour, h.location.String())
	if cfg.HasStatusRole() {
		fmt.Fprintf(&text, "\nBirthday members join <!subteam^%s> for the day.", cfg.StatusRoleRef)
	}
	if cfg.HasModeratorRole() {
		fmt.Fprintf(&text, "\nModerator group: <!subteam^%s>.", cfg.ModeratorRoleRef)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleSetRecord(r *http.Request, tenantID, subjectID string, args []string, usage string) *slack.Msg {
	day, month, _, err := slackcmd.ParseDayMonth(args)
	if err != nil {
		return h.createErrorResponse(usage)
	}

	if err := h.birthdayService.SetRecord(r.Context(), tenantID, subjectID, month, day); err != nil {
		return h.serviceError(err, tenantID, "save the birthday")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🎂 Birthday of <@%s> set to %s!", subjectID, calendar.Display(month, day)),
	}
}

func (h *SlackHandler) handleDeleteRecord(r *http.Request, tenantID, subjectID string) *slack.Msg {
	if err := h.birthdayService.DeleteRecord(r.Context(), tenantID, subjectID); err != nil {
		return h.serviceError(err, tenantID, "delete the birthday")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🗑️ Birthday of <@%s> deleted.", subjectID),
	}
}

func (h *SlackHandler) handleSetUser(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	const usage = "Use: `/birthday setuser @user DD MM`"

	if len(cmd.Args) == 0 {
		return h.createErrorResponse(usage)
	}

	userID, ok := slackcmd.ParseUserID(cmd.Args[0])
	if !ok {
		return h.createErrorResponse(usage)
	}

	return h.handleSetRecord(r, slashCmd.TeamID, userID, cmd.Args[1:], usage)
}

func (h *SlackHandler) handleRemoveUser(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/birthday removeuser @user`")
	}

	userID, ok := slackcmd.ParseUserID(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Use: `/birthday removeuser @user`")
	}

	return h.handleDeleteRecord(r, slashCmd.TeamID, userID)
}

func (h *SlackHandler) handleList(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	pageIndex := 0
	if len(cmd.Args) > 0 {
		page, err := strconv.Atoi(cmd.Args[0])
		if err != nil || page < 1 {
			return h.createErrorResponse("Use: `/birthday list [page]`")
		}
		pageIndex = page - 1
	}

	page, err := h.birthdayService.SummaryPage(r.Context(), slashCmd.TeamID, pageIndex)
	if err != nil {
		return h.serviceError(err, slashCmd.TeamID, "load the birthday list")
	}

	return pageMessage(page)
}

func (h *SlackHandler) handleRefresh(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.birthdayService.RefreshSummary(r.Context(), slashCmd.TeamID); err != nil {
		return h.serviceError(err, slashCmd.TeamID, "refresh the birthday list")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "🔄 Birthday list refreshed and pinned.",
	}
}

func (h *SlackHandler) handleImport(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Body == "" {
		return h.createErrorResponse("Use: `/birthday import` followed by one `@user - DD/MM` per line")
	}

	count, err := h.birthdayService.ImportRecords(r.Context(), slashCmd.TeamID, cmd.Body)
	if err != nil {
		return h.serviceError(err, slashCmd.TeamID, "import birthdays")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("📥 Imported %d birthdays.", count),
	}
}

// handleTestDate acknowledges right away; the run can take longer than Slack
// waits for a slash command reply, so its summary goes to the response_url.
func (h *SlackHandler) handleTestDate(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	args, err := slackcmd.ParseTestDateArgs(cmd.Args, h.clock())
	if err != nil {
		return h.createErrorResponse("Use: `/birthday testdate DD MM [YYYY] [reset] [force]` with a valid date")
	}

	opts := entity.RunOptions{
		TenantID:     slashCmd.TeamID,
		Date:         args.Date,
		IgnoreWished: args.IgnoreWished,
		ResetLedger:  args.ResetLedger,
	}

	ctx := context.WithoutCancel(r.Context())
	go h.runTestDate(ctx, slashCmd.ResponseURL, opts)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("⏳ Running the birthday check for %s...", args.Date.Format("02-01-2006")),
	}
}

func (h *SlackHandler) runTestDate(ctx context.Context, responseURL string, opts entity.RunOptions) {
	ctx, cancel := context.WithTimeout(ctx, testDateTimeout)
	defer cancel()

	msg := h.testDateResult(ctx, opts)

	err := slack.PostWebhookContext(ctx, responseURL, &slack.WebhookMessage{
		ResponseType: msg.ResponseType,
		Text:         msg.Text,
	})
	if err != nil {
		h.log.WithError(err).WithField("tenant_id", opts.TenantID).Error("failed to report birthday check result")
	}
}

func (h *SlackHandler) testDateResult(ctx context.Context, opts entity.RunOptions) *slack.Msg {
	summary, err := h.birthdayService.RunOnce(ctx, opts)
	if err != nil {
		return h.serviceError(err, opts.TenantID, "run the birthday check")
	}

	for _, outcome := range summary.Outcomes {
		if outcome.Err != nil {
			return h.serviceError(outcome.Err, opts.TenantID, "run the birthday check")
		}
		if outcome.Result.Skipped {
			return h.serviceError(domain.ErrConfigMissing, opts.TenantID, "run the birthday check")
		}
	}

	sent, failed, _ := summary.Totals()
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("✅ Birthday check simulated for %s: %d sent, %d failed.",
			opts.Date.Format("02-01-2006"), sent, failed),
	}
}

func (h *SlackHandler) handleWished(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	entries, err := h.birthdayService.ListWished(r.Context(), slashCmd.TeamID)
	if err != nil {
		return h.serviceError(err, slashCmd.TeamID, "load the wished list")
	}

	if len(entries) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Nobody has been wished yet.",
		}
	}

	var list strings.Builder
	list.WriteString("*Already wished:*\n")
	for _, entry := range entries {
		list.WriteString(fmt.Sprintf("• <@%s> on %s\n", entry.SubjectID, entry.Date))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleClearWished(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.birthdayService.ClearWished(r.Context(), slashCmd.TeamID); err != nil {
		return h.serviceError(err, slashCmd.TeamID, "clear the wished list")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "🧹 Wished list cleared.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// pageMessage renders a listing page with navigation buttons; the target
// page index travels in the button value.
func pageMessage(page *entity.SummaryPage) *slack.Msg {
	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, page.Text, false, false), nil, nil),
	}

	var buttons []slack.BlockElement
	if page.HasPrev() {
		buttons = append(buttons, slack.NewButtonBlockElement(actionPrevPage, strconv.Itoa(page.Index-1),
			slack.NewTextBlockObject(slack.PlainTextType, "⬅️ Previous", false, false)))
	}
	if page.HasNext() {
		buttons = append(buttons, slack.NewButtonBlockElement(actionNextPage, strconv.Itoa(page.Index+1),
			slack.NewTextBlockObject(slack.PlainTextType, "➡️ Next", false, false)))
	}
	if len(buttons) > 0 {
		blocks = append(blocks, slack.NewActionBlock(blockIDPage, buttons...))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         page.Text,
		Blocks:       slack.Blocks{BlockSet: blocks},
	}
}

func (h *SlackHandler) serviceError(err error, tenantID, action string) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrConfigMissing):
		return h.createErrorResponse("The birthday bot is not configured yet. Run `/birthday setup #channel` first.")
	case errors.Is(err, domain.ErrInvalidDate):
		return h.createErrorResponse("Invalid date. Use `DD MM`, for example `04 07`.")
	case errors.Is(err, domain.ErrInvalidCheckHour):
		return h.createErrorResponse("The check hour must be between 0 and 23.")
	case errors.Is(err, domain.ErrChannelUnavailable):
		return h.createErrorResponse("I cannot post in the birthday channel. Invite me to it or run `/birthday setup` again.")
	}

	h.log.WithError(err).WithField("tenant_id", tenantID).Errorf("failed to %s", action)
	return h.createErrorResponse(fmt.Sprintf("Failed to %s. Please try again later.", action))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	h.writeJSON(w, h.createErrorResponse(message))
}

func (h *SlackHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WithError(err).Error("failed to write response")
	}
}
