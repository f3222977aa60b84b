package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/slack-go/slack"
)

// HandleInteractions re-renders the birthday list when a page button is
// clicked. The new page replaces the original message through response_url.
func (h *SlackHandler) HandleInteractions(w http.ResponseWriter, r *http.Request) {
	if _, status := h.verifyRequest(r); status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeBlockActions {
		w.WriteHeader(http.StatusOK)
		return
	}

	for _, action := range callback.ActionCallback.BlockActions {
		if action.BlockID != blockIDPage {
			continue
		}

		pageIndex, err := strconv.Atoi(action.Value)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		h.replacePage(r, callback.Team.ID, callback.ResponseURL, pageIndex)
		break
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) replacePage(r *http.Request, tenantID, responseURL string, pageIndex int) {
	ctx := r.Context()
	log := h.log.WithField("tenant_id", tenantID)

	page, err := h.birthdayService.SummaryPage(ctx, tenantID, pageIndex)
	if err != nil {
		log.WithError(err).Error("failed to load birthday list page")
		return
	}

	msg := pageMessage(page)
	err = slack.PostWebhookContext(ctx, responseURL, &slack.WebhookMessage{
		Text:            msg.Text,
		Blocks:          &msg.Blocks,
		ReplaceOriginal: true,
	})
	if err != nil {
		log.WithError(err).Error("failed to replace birthday list message")
	}
}

func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
