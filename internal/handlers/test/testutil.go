package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/handlers"
	"github.com/diegoclair/slack-birthday-bot/mocks"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

// Now is the handler clock in tests
var Now = time.Date(2025, time.July, 4, 10, 0, 0, 0, time.UTC)

type ServiceMocks struct {
	BirthdayServiceMock *mocks.MockBirthdayService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		BirthdayServiceMock: mocks.NewMockBirthdayService(ctrl),
	}

	log, _ := logrustest.NewNullLogger()
	handler = handlers.New(m.BirthdayServiceMock, SigningSecret, time.UTC, func() time.Time { return Now }, log)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, channelName, userID, teamID, signingSecret string) *http.Request {
	t.Helper()
	return CreateSlackRequestWithResponseURL(t, command, text, channelID, channelName, userID, teamID, "https://hooks.slack.com/commands/test", signingSecret)
}

// CreateSlackRequestWithResponseURL is CreateSlackRequest for commands that
// answer later through the response_url
func CreateSlackRequestWithResponseURL(t *testing.T, command, text, channelID, channelName, userID, teamID, responseURL, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {responseURL},
		"trigger_id":   {"test-trigger-id"},
	}

	return CreateSignedRequest(t, "/slack/commands", "application/x-www-form-urlencoded", form.Encode(), signingSecret)
}

// CreateEventRequest creates a signed Events API request carrying a JSON body
func CreateEventRequest(t *testing.T, body, signingSecret string) *http.Request {
	t.Helper()
	return CreateSignedRequest(t, "/slack/events", "application/json", body, signingSecret)
}

// CreateInteractionRequest creates a signed interactivity request with the
// callback JSON in the payload form field
func CreateInteractionRequest(t *testing.T, payload, signingSecret string) *http.Request {
	t.Helper()
	form := url.Values{"payload": {payload}}
	return CreateSignedRequest(t, "/slack/interactions", "application/x-www-form-urlencoded", form.Encode(), signingSecret)
}

func CreateSignedRequest(t *testing.T, path, contentType, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", contentType)

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
