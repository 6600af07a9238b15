package properties

import (
	"dailyco/protocol"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns a non-default value of the field's kind.
func sample(f Field) interface{} {
	switch f.Kind {
	case Bool:
		if f.Default == true {
			return false
		}
		return true
	case Int:
		return int64(1700000000)
	case Uint:
		return uint64(42)
	case String:
		return "value-" + string(f.Key)
	case Enum:
		return f.Values[len(f.Values)-1]
	default:
		return json.RawMessage(`{"bucket_name":"b"}`)
	}
}

func decodeObject(t *testing.T, data []byte) map[string]json.RawMessage {
	t.Helper()
	var obj map[string]json.RawMessage
	require.NoError(t, protocol.Unmarshal(data, &obj))
	return obj
}

func TestEmptyBag_MarshalsEmptyObject(t *testing.T) {
	for _, s := range []*Schema{Room, Token} {
		b, err := NewBag(s).MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(b), s.Name())
	}
}

func TestBag_OmitsUnsetFields(t *testing.T) {
	for _, s := range []*Schema{Room, Token} {
		for _, f := range s.Fields() {
			bag := NewBag(s).Set(f.Key, sample(f))
			data, err := bag.MarshalJSON()
			require.NoError(t, err)

			obj := decodeObject(t, data)
			assert.Len(t, obj, 1, "%s.%s", s.Name(), f.Key)
			assert.Contains(t, obj, string(f.Key))
			assert.NotContains(t, string(data), "null")
		}
	}
}

func TestBag_RoundTripsEveryField(t *testing.T) {
	for _, s := range []*Schema{Room, Token} {
		for _, f := range s.Fields() {
			want := sample(f)
			data, err := NewBag(s).Set(f.Key, want).MarshalJSON()
			require.NoError(t, err)

			parsed, err := s.ParseBag(data)
			require.NoError(t, err)
			got, ok := parsed.Get(f.Key)
			require.True(t, ok, "%s.%s", s.Name(), f.Key)
			if f.Kind == Object {
				assert.JSONEq(t, string(want.(json.RawMessage)), string(got.(json.RawMessage)))
				continue
			}
			assert.Equal(t, want, got, "%s.%s", s.Name(), f.Key)
		}
	}
}

func TestBag_ExplicitFalseIsSent(t *testing.T) {
	data, err := NewBag(Room).Set(EnableChat, false).Set(MaxParticipants, uint64(0)).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"enable_chat":false,"max_participants":0}`, string(data))
}

func TestBag_LastWriteWins(t *testing.T) {
	bag := NewBag(Token).Set(IsOwner, true).Set(IsOwner, false)
	v, ok := bag.Get(IsOwner)
	require.True(t, ok)
	assert.Equal(t, false, v)
	assert.Equal(t, 1, bag.Len())
}

func TestBag_ObjectFieldsHoldRawJSON(t *testing.T) {
	type bucket struct {
		Name string `json:"bucket_name"`
	}
	typed := NewBag(Room).Set(RecordingsBucket, bucket{Name: "b"})
	raw := NewBag(Room)
	require.NoError(t, raw.SetRaw(string(RecordingsBucket), `{"bucket_name":"b"}`))

	for _, bag := range []*Bag{typed, raw} {
		v, ok := bag.Get(RecordingsBucket)
		require.True(t, ok)
		got, isRaw := v.(json.RawMessage)
		require.True(t, isRaw, "%T", v)
		assert.JSONEq(t, `{"bucket_name":"b"}`, string(got))
	}
}

func TestBag_KeysFollowSchemaOrder(t *testing.T) {
	bag := NewBag(Token).Set(Lang, "fr").Set(RoomName, "abc").Set(IsOwner, true)
	assert.Equal(t, []Key{RoomName, IsOwner, Lang}, bag.Keys())
}

func TestBag_CloneIsIndependent(t *testing.T) {
	a := NewBag(Room).Set(EnableChat, true)
	b := a.Clone().Set(EnableKnocking, true)
	assert.False(t, a.Has(EnableKnocking))
	assert.True(t, b.Has(EnableChat))
}

func TestBag_SetPanicsOutsideSchema(t *testing.T) {
	assert.Panics(t, func() { NewBag(Token).Set(EnableChat, true) })
	assert.Panics(t, func() { NewBag(Room).Set(EnableChat, nil) })
}

func TestBag_Claims(t *testing.T) {
	bag := NewBag(Token).
		Set(RoomName, "abc").
		Set(IsOwner, true).
		Set(EjectAfterElapsed, int64(50)).
		Set(EnablePrejoinUI, true)

	assert.Equal(t, map[string]interface{}{
		"r":                 "abc",
		"o":                 true,
		"eje":               int64(50),
		"enable_prejoin_ui": true,
	}, bag.Claims())
}

func TestBag_SetRaw(t *testing.T) {
	bag := NewBag(Room)
	require.NoError(t, bag.SetRaw("enable_chat", "true"))
	require.NoError(t, bag.SetRaw("exp", "-5"))
	require.NoError(t, bag.SetRaw("max_participants", "10"))
	require.NoError(t, bag.SetRaw("lang", "de"))
	require.NoError(t, bag.SetRaw("recordings_bucket", `{"bucket_name": "rec"}`))

	data, err := bag.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"enable_chat": true,
		"exp": -5,
		"max_participants": 10,
		"lang": "de",
		"recordings_bucket": {"bucket_name": "rec"}
	}`, string(data))

	assert.ErrorContains(t, bag.SetRaw("nope", "1"), `unknown room field "nope"`)
	assert.Error(t, bag.SetRaw("enable_chat", "maybe"))
	assert.Error(t, bag.SetRaw("max_participants", "-1"))
	assert.Error(t, bag.SetRaw("recordings_bucket", `[1]`))
}

func TestFill_InsertsEveryDefault(t *testing.T) {
	for _, s := range []*Schema{Room, Token} {
		filled, err := s.Fill([]byte(`{}`))
		require.NoError(t, err)
		obj := decodeObject(t, filled)

		for _, f := range s.Fields() {
			raw, ok := obj[string(f.Key)]
			if f.Optional() {
				assert.False(t, ok, "%s.%s", s.Name(), f.Key)
				continue
			}
			want, err := protocol.Marshal(f.Default)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(raw), "%s.%s", s.Name(), f.Key)
		}
	}
}

// Hand-written so a changed default in the field table fails here.
const (
	roomDefaults = `{
		"enable_pip_ui": false,
		"enable_network_ui": false,
		"enable_knocking": false,
		"enable_screenshare": true,
		"enable_video_processing_ui": true,
		"enable_chat": false,
		"enable_advanced_chat": false,
		"enable_emoji_reactions": false,
		"enable_hand_raising": false,
		"enable_breakout_rooms": false,
		"start_video_off": false,
		"start_audio_off": false,
		"owner_only_broadcast": false,
		"eject_at_room_exp": false,
		"enable_hidden_participants": false,
		"enforce_unique_user_ids": false,
		"lang": "en",
		"signaling_imp": "ws",
		"enable_terse_logging": false
	}`
	tokenDefaults = `{
		"eject_at_token_exp": false,
		"is_owner": false,
		"enable_screenshare": true,
		"start_video_off": false,
		"start_audio_off": false,
		"enable_terse_logging": false,
		"start_cloud_recording": false,
		"close_tab_on_exit": false
	}`
)

func TestFill_LiteralDefaults(t *testing.T) {
	filled, err := Room.Fill([]byte(`{}`))
	require.NoError(t, err)
	assert.JSONEq(t, roomDefaults, string(filled))

	filled, err = Token.Fill([]byte(`{}`))
	require.NoError(t, err)
	assert.JSONEq(t, tokenDefaults, string(filled))
}

func TestFill_NullCountsAsAbsent(t *testing.T) {
	filled, err := Room.Fill([]byte(`{"enable_screenshare":null,"enable_chat":true,"future_flag":1}`))
	require.NoError(t, err)
	obj := decodeObject(t, filled)
	assert.JSONEq(t, `true`, string(obj["enable_screenshare"]))
	assert.JSONEq(t, `true`, string(obj["enable_chat"]))
	assert.JSONEq(t, `1`, string(obj["future_flag"]))
}

func TestFill_RejectsNonObject(t *testing.T) {
	_, err := Room.Fill([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestFromClaims(t *testing.T) {
	claims := map[string]json.RawMessage{
		"r":   json.RawMessage(`"abc"`),
		"o":   json.RawMessage(`true`),
		"uil": json.RawMessage(`"fr"`),
		"d":   json.RawMessage(`"domain"`),
		"iat": json.RawMessage(`1`),
	}
	got := Token.FromClaims(claims)
	assert.Len(t, got, 3)
	assert.JSONEq(t, `"abc"`, string(got["room_name"]))
	assert.JSONEq(t, `true`, string(got["is_owner"]))
	assert.JSONEq(t, `"fr"`, string(got["lang"]))
}

func TestNewSchema_RejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema("dup", Field{Key: "a", Claim: "x"}, Field{Key: "b", Claim: "x"})
	})
	assert.Panics(t, func() {
		NewSchema("dup", Field{Key: "a"}, Field{Key: "a", Claim: "y"})
	})
	assert.Panics(t, func() {
		NewSchema("dup", Field{Key: "x"}, Field{Key: "b", Claim: "x"})
	})
}

func TestTokenClaims_AreUniqueAndAvoidDomain(t *testing.T) {
	seen := map[string]Key{}
	for _, f := range Token.Fields() {
		assert.NotEqual(t, DomainClaim, f.ClaimKey())
		_, dup := seen[f.ClaimKey()]
		assert.False(t, dup)
		seen[f.ClaimKey()] = f.Key
	}
	assert.Len(t, seen, 18)
}

func TestTokenClaimTable(t *testing.T) {
	want := map[Key]string{
		RoomName:              "r",
		EjectAtTokenExp:       "ejt",
		EjectAfterElapsed:     "eje",
		Nbf:                   "nbf",
		Exp:                   "exp",
		IsOwner:               "o",
		UserName:              "u",
		UserID:                "ud",
		EnableScreenshare:     "ss",
		StartVideoOff:         "vo",
		StartAudioOff:         "ao",
		EnableRecording:       "er",
		EnablePrejoinUI:       "enable_prejoin_ui",
		EnableTerseLogging:    "enable_terse_logging",
		StartCloudRecording:   "sr",
		CloseTabOnExit:        "ctoe",
		RedirectOnMeetingExit: "rome",
		Lang:                  "uil",
	}
	for key, claim := range want {
		f, ok := Token.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, claim, f.ClaimKey(), key)
	}
}
