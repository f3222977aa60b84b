// Package gateway implements contract.Gateway on top of the Slack Web API.
//
// Status roles are Slack user groups. Slack refuses empty groups, so revoking
// the last member disables the group and granting to a disabled group enables
// it again.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

const (
	defaultCallTimeout = 10 * time.Second
	defaultRatePerSec  = 1
	defaultBurst       = 3
)

type Options struct {
	CallTimeout time.Duration
	RatePerSec  float64
	Burst       int
}

type slackGateway struct {
	client  contract.SlackClient
	limiter *rate.Limiter
	timeout time.Duration
	log     logrus.FieldLogger

	// user group membership updates are read-modify-write, one lock per group
	groupLocksMu sync.Mutex
	groupLocks   map[string]*sync.Mutex
}

func New(client contract.SlackClient, opts Options, log logrus.FieldLogger) contract.Gateway {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = defaultCallTimeout
	}
	if opts.RatePerSec <= 0 {
		opts.RatePerSec = defaultRatePerSec
	}
	if opts.Burst <= 0 {
		opts.Burst = defaultBurst
	}

	return &slackGateway{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSec), opts.Burst),
		timeout: opts.CallTimeout,
		log:     log.WithField("component", "gateway"),

		groupLocks: make(map[string]*sync.Mutex),
	}
}

// lockGroup serializes membership updates of one user group and returns the unlock func
func (g *slackGateway) lockGroup(roleRef string) func() {
	g.groupLocksMu.Lock()
	lock, ok := g.groupLocks[roleRef]
	if !ok {
		lock = &sync.Mutex{}
		g.groupLocks[roleRef] = lock
	}
	g.groupLocksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// call waits for the limiter and runs fn under the per-call timeout
func (g *slackGateway) call(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return domain.NewGatewayError(op, domain.ReasonTransient, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return classify(op, fn(callCtx))
}

func (g *slackGateway) ResolveChannel(ctx context.Context, tenantID, channelRef string) error {
	const op = "resolve channel"

	var channel *slack.Channel
	err := g.call(ctx, op, func(ctx context.Context) (err error) {
		channel, err = g.client.GetConversationInfo(ctx, channelRef)
		return err
	})
	if err != nil {
		return err
	}

	if channel == nil || channel.IsArchived {
		return domain.NewGatewayError(op, domain.ReasonNotFound, fmt.Errorf("channel %s is archived", channelRef))
	}

	return nil
}

func (g *slackGateway) ResolveRole(ctx context.Context, tenantID, roleRef string) error {
	_, err := g.findGroup(ctx, "resolve role", roleRef)
	return err
}

func (g *slackGateway) Congratulate(ctx context.Context, tenantID, channelRef, subjectID string) error {
	text := fmt.Sprintf("Happy Birthday, <@%s>! 🎈\nFrom all of us, sending you lots of love today 💖🎂", subjectID)

	return g.call(ctx, "congratulate", func(ctx context.Context) error {
		_, err := g.client.PostMessage(ctx, channelRef, slack.MsgOptionText(text, false))
		return err
	})
}

func (g *slackGateway) GrantRole(ctx context.Context, tenantID, subjectID, roleRef string) error {
	const op = "grant role"

	defer g.lockGroup(roleRef)()

	group, err := g.findGroup(ctx, op, roleRef)
	if err != nil {
		return err
	}

	if isDisabled(group) {
		err = g.call(ctx, op, func(ctx context.Context) error {
			return g.client.EnableUserGroup(ctx, roleRef)
		})
		if err != nil {
			return err
		}
		// a re-enabled group keeps its previous members, which already expired
		group.Users = nil
	} else if contains(group.Users, subjectID) {
		return nil
	}

	members := append(append([]string{}, group.Users...), subjectID)
	return g.call(ctx, op, func(ctx context.Context) error {
		return g.client.UpdateUserGroupMembers(ctx, roleRef, members)
	})
}

func (g *slackGateway) RevokeRole(ctx context.Context, tenantID, subjectID, roleRef string) error {
	const op = "revoke role"

	defer g.lockGroup(roleRef)()

	group, err := g.findGroup(ctx, op, roleRef)
	if err != nil {
		return err
	}

	if isDisabled(group) || !contains(group.Users, subjectID) {
		return nil
	}

	remaining := make([]string, 0, len(group.Users))
	for _, member := range group.Users {
		if member != subjectID {
			remaining = append(remaining, member)
		}
	}

	if len(remaining) == 0 {
		return g.call(ctx, op, func(ctx context.Context) error {
			return g.client.DisableUserGroup(ctx, roleRef)
		})
	}

	return g.call(ctx, op, func(ctx context.Context) error {
		return g.client.UpdateUserGroupMembers(ctx, roleRef, remaining)
	})
}

func (g *slackGateway) RoleHolders(ctx context.Context, tenantID, roleRef string) ([]string, error) {
	group, err := g.findGroup(ctx, "role holders", roleRef)
	if err != nil {
		return nil, err
	}

	if isDisabled(group) {
		return nil, nil
	}

	return append([]string{}, group.Users...), nil
}

func (g *slackGateway) PostOrUpdateSummary(ctx context.Context, tenantID, channelRef, existingRef, text string) (string, error) {
	log := g.log.WithField("tenant_id", tenantID)

	if existingRef != "" {
		err := g.call(ctx, "update summary", func(ctx context.Context) error {
			return g.client.UpdateMessage(ctx, channelRef, existingRef, slack.MsgOptionText(text, false))
		})
		if err == nil {
			return existingRef, nil
		}
		if domain.GatewayReasonOf(err) != domain.ReasonNotFound {
			return "", err
		}
		log.WithError(err).Info("summary message is gone, posting a new one")
	}

	var ref string
	err := g.call(ctx, "post summary", func(ctx context.Context) (err error) {
		ref, err = g.client.PostMessage(ctx, channelRef, slack.MsgOptionText(text, false))
		return err
	})
	if err != nil {
		return "", err
	}

	err = g.call(ctx, "pin summary", func(ctx context.Context) error {
		return g.client.AddPin(ctx, channelRef, ref)
	})
	if err != nil {
		log.WithError(err).Warn("failed to pin summary message")
	}

	return ref, nil
}

func (g *slackGateway) findGroup(ctx context.Context, op, roleRef string) (*slack.UserGroup, error) {
	var groups []slack.UserGroup
	err := g.call(ctx, op, func(ctx context.Context) (err error) {
		groups, err = g.client.GetUserGroups(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	for i := range groups {
		if groups[i].ID == roleRef {
			return &groups[i], nil
		}
	}

	return nil, domain.NewGatewayError(op, domain.ReasonNotFound, errors.New("user group "+roleRef+" not found"))
}

func isDisabled(group *slack.UserGroup) bool {
	return group.DateDelete != 0
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
