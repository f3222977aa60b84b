package contract

//go:generate go run go.uber.org/mock/mockgen -source=slack.go -destination=../../../mocks/slack.go -package=mocks

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel and returns its timestamp
	PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, error)

	UpdateMessage(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) error

	AddPin(ctx context.Context, channelID, timestamp string) error

	GetConversationInfo(ctx context.Context, channelID string) (*slack.Channel, error)

	// GetUserGroups lists all user groups of the workspace, including disabled
	// ones, with their members
	GetUserGroups(ctx context.Context) ([]slack.UserGroup, error)

	UpdateUserGroupMembers(ctx context.Context, userGroupID string, members []string) error

	EnableUserGroup(ctx context.Context, userGroupID string) error

	DisableUserGroup(ctx context.Context, userGroupID string) error
}
