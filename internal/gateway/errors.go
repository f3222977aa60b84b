package gateway

import (
	"context"
	"errors"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/slack-go/slack"
)

var notFoundCodes = map[string]bool{
	"channel_not_found": true,
	"message_not_found": true,
	"no_such_subteam":   true,
	"user_not_found":    true,
	"users_not_found":   true,
	"is_archived":       true,
	"no_item_specified": true,
}

var forbiddenCodes = map[string]bool{
	"not_in_channel":         true,
	"missing_scope":          true,
	"no_permission":          true,
	"permission_denied":      true,
	"restricted_action":      true,
	"not_allowed_token_type": true,
	"cant_update_message":    true,
	"access_denied":          true,
	"invalid_auth":           true,
	"account_inactive":       true,
}

// classify turns a Slack API failure into a *domain.GatewayError
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var rateLimited *slack.RateLimitedError
	if errors.As(err, &rateLimited) || errors.Is(err, context.DeadlineExceeded) {
		return domain.NewGatewayError(op, domain.ReasonTransient, err)
	}

	code := err.Error()
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		code = slackErr.Err
	}

	switch {
	case notFoundCodes[code]:
		return domain.NewGatewayError(op, domain.ReasonNotFound, err)
	case forbiddenCodes[code]:
		return domain.NewGatewayError(op, domain.ReasonForbidden, err)
	default:
		return domain.NewGatewayError(op, domain.ReasonTransient, err)
	}
}
