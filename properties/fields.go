package properties

import (
	"dailyco/configuration"
)

// Room and meeting-token field keys. Keys shared by both resources carry the
// same JSON name and are listed once.
const (
	Nbf                            Key = "nbf"
	Exp                            Key = "exp"
	MaxParticipants                Key = "max_participants"
	EnablePeopleUI                 Key = "enable_people_ui"
	EnablePipUI                    Key = "enable_pip_ui"
	EnablePrejoinUI                Key = "enable_prejoin_ui"
	EnableNetworkUI                Key = "enable_network_ui"
	EnableKnocking                 Key = "enable_knocking"
	EnableScreenshare              Key = "enable_screenshare"
	EnableVideoProcessingUI        Key = "enable_video_processing_ui"
	EnableChat                     Key = "enable_chat"
	EnableAdvancedChat             Key = "enable_advanced_chat"
	EnableEmojiReactions           Key = "enable_emoji_reactions"
	EnableHandRaising              Key = "enable_hand_raising"
	EnableBreakoutRooms            Key = "enable_breakout_rooms"
	StartVideoOff                  Key = "start_video_off"
	StartAudioOff                  Key = "start_audio_off"
	OwnerOnlyBroadcast             Key = "owner_only_broadcast"
	EnableRecording                Key = "enable_recording"
	EjectAtRoomExp                 Key = "eject_at_room_exp"
	EjectAfterElapsed              Key = "eject_after_elapsed"
	EnableHiddenParticipants       Key = "enable_hidden_participants"
	EnableMeshSFU                  Key = "enable_mesh_sfu"
	ExperimentalOptimizeLargeCalls Key = "experimental_optimize_large_calls"
	EnforceUniqueUserIDs           Key = "enforce_unique_user_ids"
	Lang                           Key = "lang"
	MeetingJoinHook                Key = "meeting_join_hook"
	SignalingImp                   Key = "signaling_imp"
	Geo                            Key = "geo"
	RtmpGeo                        Key = "rtmp_geo"
	RecordingsBucket               Key = "recordings_bucket"
	RecordingsTemplate             Key = "recordings_template"
	EnableTerseLogging             Key = "enable_terse_logging"

	RoomName              Key = "room_name"
	EjectAtTokenExp       Key = "eject_at_token_exp"
	IsOwner               Key = "is_owner"
	UserName              Key = "user_name"
	UserID                Key = "user_id"
	StartCloudRecording   Key = "start_cloud_recording"
	CloseTabOnExit        Key = "close_tab_on_exit"
	RedirectOnMeetingExit Key = "redirect_on_meeting_exit"
)

// DomainClaim carries the domain id in self-signed token payloads.
const DomainClaim = "d"

var (
	recordingTypes = enumValues(configuration.RecordingTypeValues())
	langs          = enumValues(configuration.LangValues())
)

// Room is the field table of room properties.
var Room = NewSchema("room",
	Field{Key: Nbf, Kind: Int},
	Field{Key: Exp, Kind: Int},
	Field{Key: MaxParticipants, Kind: Uint},
	Field{Key: EnablePeopleUI, Kind: Bool},
	Field{Key: EnablePipUI, Kind: Bool, Default: false},
	Field{Key: EnablePrejoinUI, Kind: Bool},
	Field{Key: EnableNetworkUI, Kind: Bool, Default: false},
	Field{Key: EnableKnocking, Kind: Bool, Default: false},
	Field{Key: EnableScreenshare, Kind: Bool, Default: true},
	Field{Key: EnableVideoProcessingUI, Kind: Bool, Default: true},
	Field{Key: EnableChat, Kind: Bool, Default: false},
	Field{Key: EnableAdvancedChat, Kind: Bool, Default: false},
	Field{Key: EnableEmojiReactions, Kind: Bool, Default: false},
	Field{Key: EnableHandRaising, Kind: Bool, Default: false},
	Field{Key: EnableBreakoutRooms, Kind: Bool, Default: false},
	Field{Key: StartVideoOff, Kind: Bool, Default: false},
	Field{Key: StartAudioOff, Kind: Bool, Default: false},
	Field{Key: OwnerOnlyBroadcast, Kind: Bool, Default: false},
	Field{Key: EnableRecording, Kind: Enum, Values: recordingTypes},
	Field{Key: EjectAtRoomExp, Kind: Bool, Default: false},
	Field{Key: EjectAfterElapsed, Kind: Int},
	Field{Key: EnableHiddenParticipants, Kind: Bool, Default: false},
	Field{Key: EnableMeshSFU, Kind: Bool},
	Field{Key: ExperimentalOptimizeLargeCalls, Kind: Bool},
	Field{Key: EnforceUniqueUserIDs, Kind: Bool, Default: false},
	Field{Key: Lang, Kind: Enum, Default: configuration.DefaultLang, Values: langs},
	Field{Key: MeetingJoinHook, Kind: String},
	Field{Key: SignalingImp, Kind: Enum, Default: configuration.DefaultSignalingImp,
		Values: enumValues(configuration.SignalingImpValues())},
	Field{Key: Geo, Kind: Enum, Values: enumValues(configuration.RegionValues())},
	Field{Key: RtmpGeo, Kind: Enum, Values: enumValues(configuration.RtmpGeoRegionValues())},
	Field{Key: RecordingsBucket, Kind: Object},
	Field{Key: RecordingsTemplate, Kind: String},
	Field{Key: EnableTerseLogging, Kind: Bool, Default: false},
)

// Token is the field table of meeting-token properties. Claim keys follow
// Daily's self-signed token format.
var Token = NewSchema("token",
	Field{Key: RoomName, Claim: "r", Kind: String},
	Field{Key: EjectAtTokenExp, Claim: "ejt", Kind: Bool, Default: false},
	Field{Key: EjectAfterElapsed, Claim: "eje", Kind: Int},
	Field{Key: Nbf, Kind: Int},
	Field{Key: Exp, Kind: Int},
	Field{Key: IsOwner, Claim: "o", Kind: Bool, Default: false},
	Field{Key: UserName, Claim: "u", Kind: String},
	Field{Key: UserID, Claim: "ud", Kind: String},
	Field{Key: EnableScreenshare, Claim: "ss", Kind: Bool, Default: true},
	Field{Key: StartVideoOff, Claim: "vo", Kind: Bool, Default: false},
	Field{Key: StartAudioOff, Claim: "ao", Kind: Bool, Default: false},
	Field{Key: EnableRecording, Claim: "er", Kind: Enum, Values: recordingTypes},
	Field{Key: EnablePrejoinUI, Kind: Bool},
	Field{Key: EnableTerseLogging, Kind: Bool, Default: false},
	Field{Key: StartCloudRecording, Claim: "sr", Kind: Bool, Default: false},
	Field{Key: CloseTabOnExit, Claim: "ctoe", Kind: Bool, Default: false},
	Field{Key: RedirectOnMeetingExit, Claim: "rome", Kind: String},
	Field{Key: Lang, Claim: "uil", Kind: Enum, Values: langs},
)
