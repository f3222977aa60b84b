package contract

//go:generate go run go.uber.org/mock/mockgen -source=gateway.go -destination=../../../mocks/gateway.go -package=mocks

import "context"

// Gateway is everything the notification engine needs from the chat platform.
// Failures are returned as *domain.GatewayError.
type Gateway interface {
	ResolveChannel(ctx context.Context, tenantID, channelRef string) error
	ResolveRole(ctx context.Context, tenantID, roleRef string) error
	Congratulate(ctx context.Context, tenantID, channelRef, subjectID string) error
	GrantRole(ctx context.Context, tenantID, subjectID, roleRef string) error
	RevokeRole(ctx context.Context, tenantID, subjectID, roleRef string) error
	RoleHolders(ctx context.Context, tenantID, roleRef string) ([]string, error)
	// PostOrUpdateSummary edits existingRef when it still resolves, otherwise
	// posts a new message. It returns the reference of the live message.
	PostOrUpdateSummary(ctx context.Context, tenantID, channelRef, existingRef, text string) (string, error)
}
