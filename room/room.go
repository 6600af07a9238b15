// Package room builds Daily room requests and models the rooms the service
// reports back.
package room

import (
	"dailyco/configuration"
	"dailyco/properties"
	"dailyco/protocol"
	"fmt"
	"time"
)

// Room is a room as reported by the service.
type Room struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"name"`
	APICreated bool                      `json:"api_created"`
	Privacy    configuration.RoomPrivacy `json:"privacy"`
	URL        string                    `json:"url"`
	CreatedAt  string                    `json:"created_at"`
	Config     RoomProperties            `json:"config"`
}

// envelope defaults the room-level fields; config defaults to {} so its own
// defaults still apply when the service omits it.
var envelope = properties.NewSchema("room-envelope",
	properties.Field{Key: "privacy", Kind: properties.Enum, Default: configuration.DefaultRoomPrivacy,
		Values: []string{string(configuration.PrivacyPublic), string(configuration.PrivacyPrivate)}},
	properties.Field{Key: "config", Kind: properties.Object, Default: map[string]interface{}{}},
)

func (r *Room) UnmarshalJSON(data []byte) error {
	type plain Room
	return envelope.Decode(data, (*plain)(r))
}

// CreatedTime parses CreatedAt.
func (r Room) CreatedTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("room: created_at: %w", err)
	}
	return t, nil
}

// Create is the body of POST /rooms.
type Create struct {
	name    *string
	privacy *configuration.RoomPrivacy
	props   *PropertiesBuilder
}

// NewCreate returns an empty create request. Daily picks a random name when
// none is set.
func NewCreate() *Create {
	return &Create{}
}

func (c *Create) Name(name string) *Create {
	c.name = &name
	return c
}

func (c *Create) Privacy(p configuration.RoomPrivacy) *Create {
	c.privacy = &p
	return c
}

func (c *Create) Properties(p *PropertiesBuilder) *Create {
	c.props = p
	return c
}

// RoomName returns the requested name, if any.
func (c *Create) RoomName() (string, bool) {
	if c.name == nil {
		return "", false
	}
	return *c.name, true
}

func (c *Create) MarshalJSON() ([]byte, error) {
	body := map[string]interface{}{"properties": propsOrEmpty(c.props)}
	if c.name != nil {
		body["name"] = *c.name
	}
	if c.privacy != nil {
		body["privacy"] = string(*c.privacy)
	}
	return protocol.Marshal(body)
}

// Update is the body of POST /rooms/:name. The name travels in the URL.
type Update struct {
	privacy *configuration.RoomPrivacy
	props   *PropertiesBuilder
}

func NewUpdate() *Update {
	return &Update{}
}

func (u *Update) Privacy(p configuration.RoomPrivacy) *Update {
	u.privacy = &p
	return u
}

func (u *Update) Properties(p *PropertiesBuilder) *Update {
	u.props = p
	return u
}

func (u *Update) MarshalJSON() ([]byte, error) {
	body := map[string]interface{}{"properties": propsOrEmpty(u.props)}
	if u.privacy != nil {
		body["privacy"] = string(*u.privacy)
	}
	return protocol.Marshal(body)
}

func propsOrEmpty(p *PropertiesBuilder) *PropertiesBuilder {
	if p == nil {
		return NewProperties()
	}
	return p
}
