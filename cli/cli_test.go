package cli

import (
	"bytes"
	"dailyco/meetingtoken"
	"dailyco/protocol"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	mu     sync.Mutex
	method string
	path   string
	query  string
	body   []byte
}

// fakeAPI answers every request with reply and records the last one.
func fakeAPI(t *testing.T, status int, reply string) *capture {
	t.Helper()
	last := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		last.mu.Lock()
		last.method, last.path, last.query, last.body = r.Method, r.URL.EscapedPath(), r.URL.RawQuery, body
		last.mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DAILY_API_KEY", "cli-test-key")
	t.Setenv("DAILY_API_BASE_URL", srv.URL)
	t.Setenv("DAILY_DOMAIN_ID", "cli-domain")
	t.Setenv("DAILY_LOG_LEVEL", "error")
	return last
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// get returns a snapshot of the last request.
func (c *capture) get() capture {
	c.mu.Lock()
	defer c.mu.Unlock()
	return capture{method: c.method, path: c.path, query: c.query, body: c.body}
}

func TestRoomsCreate_SendsOnlySetFields(t *testing.T) {
	last := fakeAPI(t, http.StatusOK, `{"name":"standup","config":{"enable_chat":true}}`)

	out, err := run(t, "rooms", "create", "--name", "standup", "--set", "enable_chat=true", "--set", "max_participants=5")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, last.get().method)
	assert.Equal(t, "/rooms", last.get().path)
	assert.JSONEq(t, `{"name":"standup","properties":{"enable_chat":true,"max_participants":5}}`, string(last.get().body))

	var printed map[string]json.RawMessage
	require.NoError(t, protocol.Unmarshal([]byte(out), &printed))
	assert.JSONEq(t, `"public"`, string(printed["privacy"]))
}

func TestRoomsCreate_DryRun(t *testing.T) {
	last := fakeAPI(t, http.StatusOK, `{}`)

	out, err := run(t, "rooms", "create", "--dry-run", "--privacy", "private", "--set", "lang=de")
	require.NoError(t, err)
	assert.Empty(t, last.get().method)
	assert.JSONEq(t, `{"privacy":"private","properties":{"lang":"de"}}`, out)
}

func TestRoomsCreate_BadSet(t *testing.T) {
	fakeAPI(t, http.StatusOK, `{}`)

	_, err := run(t, "rooms", "create", "--set", "enable_chat")
	assert.ErrorContains(t, err, "expected key=value")
	_, err = run(t, "rooms", "create", "--set", "room_name=x")
	assert.ErrorContains(t, err, "unknown room field")
}

func TestRoomsGet_ServiceError(t *testing.T) {
	fakeAPI(t, http.StatusNotFound, `{"error":"not-found","info":"room not found"}`)

	_, err := run(t, "rooms", "get", "missing")
	assert.ErrorContains(t, err, "room not found")

	out, err := run(t, "rooms", "delete", "missing", "--ignore-missing")
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":false,"name":"missing"}`, out)
}

func TestRoomsList_Pagination(t *testing.T) {
	fakeAPI(t, http.StatusOK, `{"total_count":100,"data":[]}`)

	_, err := run(t, "rooms", "list")
	assert.ErrorContains(t, err, "requires pagination")
}

func TestTokens_SignAndVerify(t *testing.T) {
	fakeAPI(t, http.StatusOK, `{}`)

	out, err := run(t, "tokens", "sign", "--set", "room_name=abc", "--set", "is_owner=true", "--set", "eject_after_elapsed=50")
	require.NoError(t, err)
	var signed map[string]string
	require.NoError(t, protocol.Unmarshal([]byte(out), &signed))

	claims, err := meetingtoken.Claims(signed["token"])
	require.NoError(t, err)
	assert.Len(t, claims, 4)
	assert.JSONEq(t, `"cli-domain"`, string(claims["d"]))

	out, err = run(t, "tokens", "verify", signed["token"])
	require.NoError(t, err)
	var verified struct {
		DomainID   string                    `json:"domain_id"`
		Properties meetingtoken.MeetingToken `json:"properties"`
	}
	require.NoError(t, protocol.Unmarshal([]byte(out), &verified))
	assert.Equal(t, "cli-domain", verified.DomainID)
	require.NotNil(t, verified.Properties.RoomName)
	assert.Equal(t, "abc", *verified.Properties.RoomName)
	assert.True(t, verified.Properties.IsOwner)

	_, err = run(t, "tokens", "verify", signed["token"], "--secret", "wrong")
	assert.Error(t, err)
}

func TestTokensCreate(t *testing.T) {
	last := fakeAPI(t, http.StatusOK, `{"token":"issued"}`)

	out, err := run(t, "tokens", "create", "--set", "user_name=Ada", "--set", "lang=fr")
	require.NoError(t, err)
	assert.Equal(t, "/meeting-tokens", last.get().path)
	assert.JSONEq(t, `{"properties":{"user_name":"Ada","lang":"fr"}}`, string(last.get().body))
	assert.JSONEq(t, `{"token":"issued"}`, out)
}

func TestRecordingsLink(t *testing.T) {
	last := fakeAPI(t, http.StatusOK, `{"download_link":"https://dl","expires":1}`)

	_, err := run(t, "recordings", "link", "a1b2c3d4-0000-4000-8000-000000000001", "--valid-for", "60")
	require.NoError(t, err)
	assert.Equal(t, "/recordings/a1b2c3d4-0000-4000-8000-000000000001/access-link", last.get().path)
	assert.Equal(t, "valid_for_secs=60", last.get().query)

	_, err = run(t, "recordings", "get", "not-a-uuid")
	assert.ErrorContains(t, err, "recording id")
}

func TestRecordingsList(t *testing.T) {
	last := fakeAPI(t, http.StatusOK, `{"total_count":0,"data":[]}`)

	_, err := run(t, "recordings", "list", "--limit", "3", "--room", "standup")
	require.NoError(t, err)
	assert.Equal(t, "limit=3&room_name=standup", last.get().query)
}

func TestFields(t *testing.T) {
	fakeAPI(t, http.StatusOK, `{}`)

	out, err := run(t, "fields", "token")
	require.NoError(t, err)
	var rows []fieldRow
	require.NoError(t, protocol.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 18)
	assert.Equal(t, "room_name", rows[0].Key)
	assert.Equal(t, "r", rows[0].Claim)

	out, err = run(t, "fields", "room")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, `"enable_screenshare"`))

	_, err = run(t, "fields", "meeting")
	assert.Error(t, err)
}

func TestMissingAPIKey(t *testing.T) {
	fakeAPI(t, http.StatusOK, `{}`)
	t.Setenv("DAILY_API_KEY", "")

	_, err := run(t, "rooms", "list")
	assert.ErrorContains(t, err, "no API key")
}
