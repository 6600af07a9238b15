// Package meetingtoken builds Daily meeting tokens, either through the
// issuance endpoint or self-signed offline, and models the token properties
// the service reports back.
package meetingtoken

import (
	"dailyco/configuration"
	"dailyco/properties"
	"dailyco/protocol"
	"fmt"
)

// MeetingToken is the materialized token configuration.
type MeetingToken struct {
	RoomName              *string                      `json:"room_name,omitempty"`
	EjectAtTokenExp       bool                         `json:"eject_at_token_exp"`
	EjectAfterElapsed     *int64                       `json:"eject_after_elapsed,omitempty"`
	Nbf                   *int64                       `json:"nbf,omitempty"`
	Exp                   *int64                       `json:"exp,omitempty"`
	IsOwner               bool                         `json:"is_owner"`
	UserName              *string                      `json:"user_name,omitempty"`
	UserID                *string                      `json:"user_id,omitempty"`
	EnableScreenshare     bool                         `json:"enable_screenshare"`
	StartVideoOff         bool                         `json:"start_video_off"`
	StartAudioOff         bool                         `json:"start_audio_off"`
	EnableRecording       *configuration.RecordingType `json:"enable_recording,omitempty"`
	EnablePrejoinUI       *bool                        `json:"enable_prejoin_ui,omitempty"`
	EnableTerseLogging    bool                         `json:"enable_terse_logging"`
	StartCloudRecording   bool                         `json:"start_cloud_recording"`
	CloseTabOnExit        bool                         `json:"close_tab_on_exit"`
	RedirectOnMeetingExit *string                      `json:"redirect_on_meeting_exit,omitempty"`
	Lang                  *configuration.Lang          `json:"lang,omitempty"`
}

// UnmarshalJSON fills service defaults for absent fields.
func (t *MeetingToken) UnmarshalJSON(data []byte) error {
	type plain MeetingToken
	return properties.Token.Decode(data, (*plain)(t))
}

// Builder accumulates meeting-token properties. The same state can be sent
// to the issuance endpoint or self-signed.
type Builder struct {
	bag *properties.Bag
}

func New() *Builder {
	return &Builder{bag: properties.NewBag(properties.Token)}
}

func (b *Builder) set(key properties.Key, v interface{}) *Builder {
	b.bag.Set(key, v)
	return b
}

// RoomName restricts the token to one room. Without it the token is valid
// for every room in the domain.
func (b *Builder) RoomName(name string) *Builder {
	return b.set(properties.RoomName, name)
}

func (b *Builder) EjectAtTokenExp(v bool) *Builder {
	return b.set(properties.EjectAtTokenExp, v)
}

func (b *Builder) EjectAfterElapsed(secs int64) *Builder {
	return b.set(properties.EjectAfterElapsed, secs)
}

func (b *Builder) Nbf(unix int64) *Builder {
	return b.set(properties.Nbf, unix)
}

func (b *Builder) Exp(unix int64) *Builder {
	return b.set(properties.Exp, unix)
}

func (b *Builder) IsOwner(v bool) *Builder {
	return b.set(properties.IsOwner, v)
}

func (b *Builder) UserName(name string) *Builder {
	return b.set(properties.UserName, name)
}

func (b *Builder) UserID(id string) *Builder {
	return b.set(properties.UserID, id)
}

func (b *Builder) EnableScreenshare(v bool) *Builder {
	return b.set(properties.EnableScreenshare, v)
}

func (b *Builder) StartVideoOff(v bool) *Builder {
	return b.set(properties.StartVideoOff, v)
}

func (b *Builder) StartAudioOff(v bool) *Builder {
	return b.set(properties.StartAudioOff, v)
}

func (b *Builder) EnableRecording(v configuration.RecordingType) *Builder {
	return b.set(properties.EnableRecording, string(v))
}

func (b *Builder) EnablePrejoinUI(v bool) *Builder {
	return b.set(properties.EnablePrejoinUI, v)
}

func (b *Builder) EnableTerseLogging(v bool) *Builder {
	return b.set(properties.EnableTerseLogging, v)
}

func (b *Builder) StartCloudRecording(v bool) *Builder {
	return b.set(properties.StartCloudRecording, v)
}

func (b *Builder) CloseTabOnExit(v bool) *Builder {
	return b.set(properties.CloseTabOnExit, v)
}

func (b *Builder) RedirectOnMeetingExit(url string) *Builder {
	return b.set(properties.RedirectOnMeetingExit, url)
}

func (b *Builder) Lang(v configuration.Lang) *Builder {
	return b.set(properties.Lang, string(v))
}

// Set assigns a field from its textual form, e.g. Set("is_owner", "true").
func (b *Builder) Set(key, raw string) error {
	return b.bag.SetRaw(key, raw)
}

// Bag returns a copy of the fields set so far.
func (b *Builder) Bag() *properties.Bag {
	return b.bag.Clone()
}

func (b *Builder) Clone() *Builder {
	return &Builder{bag: b.bag.Clone()}
}

// MarshalJSON encodes the body of POST /meeting-tokens.
func (b *Builder) MarshalJSON() ([]byte, error) {
	return protocol.Marshal(protocol.PropertiesEnvelope{Properties: b.bag})
}

// Materialize returns the token the service reports for this builder state.
func (b *Builder) Materialize() (MeetingToken, error) {
	var t MeetingToken
	data, err := b.bag.MarshalJSON()
	if err != nil {
		return t, fmt.Errorf("meetingtoken: materialize: %w", err)
	}
	if err := t.UnmarshalJSON(data); err != nil {
		return t, fmt.Errorf("meetingtoken: materialize: %w", err)
	}
	return t, nil
}
