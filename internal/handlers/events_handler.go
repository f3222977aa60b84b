package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/slack-go/slack/slackevents"
)

// HandleEvents serves the Events API: url verification and members leaving
// the birthday channel.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, status := h.verifyRequest(r)
	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		switch ev := event.InnerEvent.Data.(type) {
		case *slackevents.MemberLeftChannelEvent:
			h.handleMemberLeft(r, event.TeamID, ev)
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) handleMemberLeft(r *http.Request, tenantID string, ev *slackevents.MemberLeftChannelEvent) {
	ctx := r.Context()
	log := h.log.WithField("tenant_id", tenantID).WithField("subject_id", ev.User)

	cfg, err := h.birthdayService.GetConfig(ctx, tenantID)
	if err != nil {
		log.WithError(err).Error("failed to load config for member left event")
		return
	}

	// only leaving the birthday channel removes the birthday
	if cfg == nil || cfg.ChannelRef != ev.Channel {
		return
	}

	if err := h.birthdayService.MemberLeft(ctx, tenantID, ev.User); err != nil {
		log.WithError(err).Error("failed to remove birthday of member who left")
	}
}
