package room

import (
	"dailyco/configuration"
	"dailyco/properties"
	"fmt"
)

// S3Bucket points Daily at a customer-owned bucket for cloud recordings.
type S3Bucket struct {
	BucketName               string `json:"bucket_name"`
	BucketRegion             string `json:"bucket_region"`
	AssumeRoleArn            string `json:"assume_role_arn"`
	AllowAPIAccess           bool   `json:"allow_api_access"`
	AllowStreamingFromBucket bool   `json:"allow_streaming_from_bucket"`
}

// RoomProperties is the materialized room configuration. Fields with a
// documented default are plain values; the rest stay nil when unset.
type RoomProperties struct {
	Nbf                            *int64                       `json:"nbf,omitempty"`
	Exp                            *int64                       `json:"exp,omitempty"`
	MaxParticipants                *uint64                      `json:"max_participants,omitempty"`
	EnablePeopleUI                 *bool                        `json:"enable_people_ui,omitempty"`
	EnablePipUI                    bool                         `json:"enable_pip_ui"`
	EnablePrejoinUI                *bool                        `json:"enable_prejoin_ui,omitempty"`
	EnableNetworkUI                bool                         `json:"enable_network_ui"`
	EnableKnocking                 bool                         `json:"enable_knocking"`
	EnableScreenshare              bool                         `json:"enable_screenshare"`
	EnableVideoProcessingUI        bool                         `json:"enable_video_processing_ui"`
	EnableChat                     bool                         `json:"enable_chat"`
	EnableAdvancedChat             bool                         `json:"enable_advanced_chat"`
	EnableEmojiReactions           bool                         `json:"enable_emoji_reactions"`
	EnableHandRaising              bool                         `json:"enable_hand_raising"`
	EnableBreakoutRooms            bool                         `json:"enable_breakout_rooms"`
	StartVideoOff                  bool                         `json:"start_video_off"`
	StartAudioOff                  bool                         `json:"start_audio_off"`
	OwnerOnlyBroadcast             bool                         `json:"owner_only_broadcast"`
	EnableRecording                *configuration.RecordingType `json:"enable_recording,omitempty"`
	EjectAtRoomExp                 bool                         `json:"eject_at_room_exp"`
	EjectAfterElapsed              *int64                       `json:"eject_after_elapsed,omitempty"`
	EnableHiddenParticipants       bool                         `json:"enable_hidden_participants"`
	EnableMeshSFU                  *bool                        `json:"enable_mesh_sfu,omitempty"`
	ExperimentalOptimizeLargeCalls *bool                        `json:"experimental_optimize_large_calls,omitempty"`
	EnforceUniqueUserIDs           bool                         `json:"enforce_unique_user_ids"`
	Lang                           configuration.Lang           `json:"lang"`
	MeetingJoinHook                *string                      `json:"meeting_join_hook,omitempty"`
	SignalingImp                   configuration.SignalingImp   `json:"signaling_imp"`
	Geo                            *configuration.Region        `json:"geo,omitempty"`
	RtmpGeo                        *configuration.RtmpGeoRegion `json:"rtmp_geo,omitempty"`
	RecordingsBucket               *S3Bucket                    `json:"recordings_bucket,omitempty"`
	RecordingsTemplate             *string                      `json:"recordings_template,omitempty"`
	EnableTerseLogging             bool                         `json:"enable_terse_logging"`
}

// UnmarshalJSON fills service defaults for absent fields.
func (p *RoomProperties) UnmarshalJSON(data []byte) error {
	type plain RoomProperties
	return properties.Room.Decode(data, (*plain)(p))
}

// PropertiesBuilder accumulates the room properties a caller wants to send.
type PropertiesBuilder struct {
	bag *properties.Bag
}

// NewProperties returns an empty builder; an empty builder encodes as {}.
func NewProperties() *PropertiesBuilder {
	return &PropertiesBuilder{bag: properties.NewBag(properties.Room)}
}

func (b *PropertiesBuilder) set(key properties.Key, v interface{}) *PropertiesBuilder {
	b.bag.Set(key, v)
	return b
}

func (b *PropertiesBuilder) Nbf(unix int64) *PropertiesBuilder {
	return b.set(properties.Nbf, unix)
}

func (b *PropertiesBuilder) Exp(unix int64) *PropertiesBuilder {
	return b.set(properties.Exp, unix)
}

func (b *PropertiesBuilder) MaxParticipants(n uint) *PropertiesBuilder {
	return b.set(properties.MaxParticipants, uint64(n))
}

func (b *PropertiesBuilder) EnablePeopleUI(v bool) *PropertiesBuilder {
	return b.set(properties.EnablePeopleUI, v)
}

func (b *PropertiesBuilder) EnablePipUI(v bool) *PropertiesBuilder {
	return b.set(properties.EnablePipUI, v)
}

func (b *PropertiesBuilder) EnablePrejoinUI(v bool) *PropertiesBuilder {
	return b.set(properties.EnablePrejoinUI, v)
}

func (b *PropertiesBuilder) EnableNetworkUI(v bool) *PropertiesBuilder {
	return b.set(properties.EnableNetworkUI, v)
}

func (b *PropertiesBuilder) EnableKnocking(v bool) *PropertiesBuilder {
	return b.set(properties.EnableKnocking, v)
}

func (b *PropertiesBuilder) EnableScreenshare(v bool) *PropertiesBuilder {
	return b.set(properties.EnableScreenshare, v)
}

func (b *PropertiesBuilder) EnableVideoProcessingUI(v bool) *PropertiesBuilder {
	return b.set(properties.EnableVideoProcessingUI, v)
}

func (b *PropertiesBuilder) EnableChat(v bool) *PropertiesBuilder {
	return b.set(properties.EnableChat, v)
}

func (b *PropertiesBuilder) EnableAdvancedChat(v bool) *PropertiesBuilder {
	return b.set(properties.EnableAdvancedChat, v)
}

func (b *PropertiesBuilder) EnableEmojiReactions(v bool) *PropertiesBuilder {
	return b.set(properties.EnableEmojiReactions, v)
}

func (b *PropertiesBuilder) EnableHandRaising(v bool) *PropertiesBuilder {
	return b.set(properties.EnableHandRaising, v)
}

func (b *PropertiesBuilder) EnableBreakoutRooms(v bool) *PropertiesBuilder {
	return b.set(properties.EnableBreakoutRooms, v)
}

func (b *PropertiesBuilder) StartVideoOff(v bool) *PropertiesBuilder {
	return b.set(properties.StartVideoOff, v)
}

func (b *PropertiesBuilder) StartAudioOff(v bool) *PropertiesBuilder {
	return b.set(properties.StartAudioOff, v)
}

func (b *PropertiesBuilder) OwnerOnlyBroadcast(v bool) *PropertiesBuilder {
	return b.set(properties.OwnerOnlyBroadcast, v)
}

func (b *PropertiesBuilder) EnableRecording(v configuration.RecordingType) *PropertiesBuilder {
	return b.set(properties.EnableRecording, string(v))
}

func (b *PropertiesBuilder) EjectAtRoomExp(v bool) *PropertiesBuilder {
	return b.set(properties.EjectAtRoomExp, v)
}

// EjectAfterElapsed ejects participants this many seconds after they join.
func (b *PropertiesBuilder) EjectAfterElapsed(secs int64) *PropertiesBuilder {
	return b.set(properties.EjectAfterElapsed, secs)
}

func (b *PropertiesBuilder) EnableHiddenParticipants(v bool) *PropertiesBuilder {
	return b.set(properties.EnableHiddenParticipants, v)
}

func (b *PropertiesBuilder) EnableMeshSFU(v bool) *PropertiesBuilder {
	return b.set(properties.EnableMeshSFU, v)
}

func (b *PropertiesBuilder) ExperimentalOptimizeLargeCalls(v bool) *PropertiesBuilder {
	return b.set(properties.ExperimentalOptimizeLargeCalls, v)
}

func (b *PropertiesBuilder) EnforceUniqueUserIDs(v bool) *PropertiesBuilder {
	return b.set(properties.EnforceUniqueUserIDs, v)
}

func (b *PropertiesBuilder) Lang(v configuration.Lang) *PropertiesBuilder {
	return b.set(properties.Lang, string(v))
}

// MeetingJoinHook sets the webhook URL called when a participant joins.
func (b *PropertiesBuilder) MeetingJoinHook(url string) *PropertiesBuilder {
	return b.set(properties.MeetingJoinHook, url)
}

func (b *PropertiesBuilder) SignalingImp(v configuration.SignalingImp) *PropertiesBuilder {
	return b.set(properties.SignalingImp, string(v))
}

func (b *PropertiesBuilder) Geo(v configuration.Region) *PropertiesBuilder {
	return b.set(properties.Geo, string(v))
}

func (b *PropertiesBuilder) RtmpGeo(v configuration.RtmpGeoRegion) *PropertiesBuilder {
	return b.set(properties.RtmpGeo, string(v))
}

func (b *PropertiesBuilder) RecordingsBucket(v S3Bucket) *PropertiesBuilder {
	return b.set(properties.RecordingsBucket, v)
}

func (b *PropertiesBuilder) RecordingsTemplate(v string) *PropertiesBuilder {
	return b.set(properties.RecordingsTemplate, v)
}

func (b *PropertiesBuilder) EnableTerseLogging(v bool) *PropertiesBuilder {
	return b.set(properties.EnableTerseLogging, v)
}

// Set assigns a field from its textual form, e.g. Set("enable_chat", "true").
func (b *PropertiesBuilder) Set(key, raw string) error {
	return b.bag.SetRaw(key, raw)
}

// Bag returns a copy of the fields set so far.
func (b *PropertiesBuilder) Bag() *properties.Bag {
	return b.bag.Clone()
}

// Clone returns an independent builder with the same fields set.
func (b *PropertiesBuilder) Clone() *PropertiesBuilder {
	return &PropertiesBuilder{bag: b.bag.Clone()}
}

func (b *PropertiesBuilder) MarshalJSON() ([]byte, error) {
	return b.bag.MarshalJSON()
}

// Materialize returns the configuration the service reports for a room
// created with exactly these properties.
func (b *PropertiesBuilder) Materialize() (RoomProperties, error) {
	var p RoomProperties
	data, err := b.MarshalJSON()
	if err != nil {
		return p, fmt.Errorf("room: materialize: %w", err)
	}
	if err := p.UnmarshalJSON(data); err != nil {
		return p, fmt.Errorf("room: materialize: %w", err)
	}
	return p, nil
}
