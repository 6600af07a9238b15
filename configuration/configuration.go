// Package configuration enumerates the option sets recognized by the Daily
// REST API. Each set is an open string type: values outside the known
// snapshot decode without error and report IsKnown() == false.
package configuration

import "slices"

func known[T ~string](set []T, v T) bool {
	return slices.Contains(set, v)
}

// Region is a Daily SFU region code.
type Region string

const (
	RegionAfSouth1     Region = "af-south-1"
	RegionApNortheast2 Region = "ap-northeast-2"
	RegionApSoutheast1 Region = "ap-southeast-1"
	RegionApSoutheast2 Region = "ap-southeast-2"
	RegionApSouth1     Region = "ap-south-1"
	RegionEuCentral1   Region = "eu-central-1"
	RegionEuWest2      Region = "eu-west-2"
	RegionSaEast1      Region = "sa-east-1"
	RegionUsEast1      Region = "us-east-1"
	RegionUsWest2      Region = "us-west-2"
)

// RegionValues lists every known Region.
func RegionValues() []Region {
	return []Region{
		RegionAfSouth1, RegionApNortheast2, RegionApSoutheast1, RegionApSoutheast2,
		RegionApSouth1, RegionEuCentral1, RegionEuWest2, RegionSaEast1,
		RegionUsEast1, RegionUsWest2,
	}
}

func (r Region) String() string { return string(r) }
func (r Region) IsKnown() bool  { return known(RegionValues(), r) }

// RtmpGeoRegion is a region that can ingest RTMP live streams.
type RtmpGeoRegion string

const (
	RtmpGeoUsWest2      RtmpGeoRegion = "us-west-2"
	RtmpGeoEuCentral1   RtmpGeoRegion = "eu-central-1"
	RtmpGeoApSoutheast1 RtmpGeoRegion = "ap-southeast-1"
)

// RtmpGeoRegionValues lists every known RtmpGeoRegion.
func RtmpGeoRegionValues() []RtmpGeoRegion {
	return []RtmpGeoRegion{RtmpGeoUsWest2, RtmpGeoEuCentral1, RtmpGeoApSoutheast1}
}

func (r RtmpGeoRegion) String() string { return string(r) }
func (r RtmpGeoRegion) IsKnown() bool  { return known(RtmpGeoRegionValues(), r) }

// RecordingType selects how a call is recorded.
type RecordingType string

const (
	RecordingCloud            RecordingType = "cloud"
	RecordingRtpTracks        RecordingType = "rtp-tracks"
	RecordingOutputByteStream RecordingType = "output-byte-stream"
	RecordingLocal            RecordingType = "local"
)

// RecordingTypeValues lists every known RecordingType.
func RecordingTypeValues() []RecordingType {
	return []RecordingType{RecordingCloud, RecordingRtpTracks, RecordingOutputByteStream, RecordingLocal}
}

func (r RecordingType) String() string { return string(r) }
func (r RecordingType) IsKnown() bool  { return known(RecordingTypeValues(), r) }

// SignalingImp is the signaling transport used by clients joining a room.
type SignalingImp string

const (
	SignalingWs SignalingImp = "ws"

	DefaultSignalingImp = SignalingWs
)

// SignalingImpValues lists every known SignalingImp.
func SignalingImpValues() []SignalingImp {
	return []SignalingImp{SignalingWs}
}

func (s SignalingImp) String() string { return string(s) }
func (s SignalingImp) IsKnown() bool  { return known(SignalingImpValues(), s) }

// RoomPrivacy controls who may join a room without a token.
type RoomPrivacy string

const (
	PrivacyPublic  RoomPrivacy = "public"
	PrivacyPrivate RoomPrivacy = "private"

	DefaultRoomPrivacy = PrivacyPublic
)

// RoomPrivacyValues lists every known RoomPrivacy.
func RoomPrivacyValues() []RoomPrivacy {
	return []RoomPrivacy{PrivacyPublic, PrivacyPrivate}
}

func (p RoomPrivacy) String() string { return string(p) }
func (p RoomPrivacy) IsKnown() bool  { return known(RoomPrivacyValues(), p) }

// RecordingStatus is the lifecycle state of a recording.
type RecordingStatus string

const (
	StatusFinished   RecordingStatus = "finished"
	StatusInProgress RecordingStatus = "in-progress"
	StatusCanceled   RecordingStatus = "canceled"
)

// RecordingStatusValues lists every known RecordingStatus.
func RecordingStatusValues() []RecordingStatus {
	return []RecordingStatus{StatusFinished, StatusInProgress, StatusCanceled}
}

func (s RecordingStatus) String() string { return string(s) }
func (s RecordingStatus) IsKnown() bool  { return known(RecordingStatusValues(), s) }
