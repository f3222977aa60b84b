package gateway

import (
	"context"
	"strings"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// slackAPI adapts *slack.Client to contract.SlackClient
type slackAPI struct {
	client *slack.Client
}

func NewSlackAPI(client *slack.Client) contract.SlackClient {
	return &slackAPI{client: client}
}

func (a *slackAPI) PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, error) {
	_, timestamp, err := a.client.PostMessageContext(ctx, channelID, options...)
	return timestamp, err
}

func (a *slackAPI) UpdateMessage(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) error {
	_, _, _, err := a.client.UpdateMessageContext(ctx, channelID, timestamp, options...)
	return err
}

func (a *slackAPI) AddPin(ctx context.Context, channelID, timestamp string) error {
	return a.client.AddPinContext(ctx, channelID, slack.NewRefToMessage(channelID, timestamp))
}

func (a *slackAPI) GetConversationInfo(ctx context.Context, channelID string) (*slack.Channel, error) {
	return a.client.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
		ChannelID: channelID,
	})
}

func (a *slackAPI) GetUserGroups(ctx context.Context) ([]slack.UserGroup, error) {
	return a.client.GetUserGroupsContext(ctx,
		slack.GetUserGroupsOptionIncludeUsers(true),
		slack.GetUserGroupsOptionIncludeDisabled(true),
	)
}

func (a *slackAPI) UpdateUserGroupMembers(ctx context.Context, userGroupID string, members []string) error {
	_, err := a.client.UpdateUserGroupMembersContext(ctx, userGroupID, strings.Join(members, ","))
	return err
}

func (a *slackAPI) EnableUserGroup(ctx context.Context, userGroupID string) error {
	_, err := a.client.EnableUserGroupContext(ctx, userGroupID)
	return err
}

func (a *slackAPI) DisableUserGroup(ctx context.Context, userGroupID string) error {
	_, err := a.client.DisableUserGroupContext(ctx, userGroupID)
	return err
}
