package meetingtoken

import (
	"dailyco/properties"
	"dailyco/protocol"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jws"
)

var (
	ErrEmptySecret   = errors.New("meetingtoken: signing secret is empty")
	ErrEmptyDomainID = errors.New("meetingtoken: domain id is empty")
)

// SelfSign produces an HS256 compact token carrying the builder's fields
// under their claim keys plus the domain id, without calling the service.
func (b *Builder) SelfSign(domainID, secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if domainID == "" {
		return "", ErrEmptyDomainID
	}

	claims := b.bag.Claims()
	claims[properties.DomainClaim] = domainID
	payload, err := protocol.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("meetingtoken: self-sign: %w", err)
	}

	hdrs := jws.NewHeaders()
	if err := hdrs.Set(jws.TypeKey, "JWT"); err != nil {
		return "", fmt.Errorf("meetingtoken: self-sign: %w", err)
	}
	signed, err := jws.Sign(payload, jws.WithKey(jwa.HS256, []byte(secret), jws.WithProtectedHeaders(hdrs)))
	if err != nil {
		return "", fmt.Errorf("meetingtoken: self-sign: %w", err)
	}
	return string(signed), nil
}

// VerifySelfSigned checks an HS256 token against secret and decodes its
// claims through the token field table. It returns the materialized token
// and the domain id claim.
func VerifySelfSigned(token, secret string) (MeetingToken, string, error) {
	var t MeetingToken
	if secret == "" {
		return t, "", ErrEmptySecret
	}
	payload, err := jws.Verify([]byte(token), jws.WithKey(jwa.HS256, []byte(secret)))
	if err != nil {
		return t, "", fmt.Errorf("meetingtoken: verify: %w", err)
	}

	claims, err := protocol.UnmarshalPayload[map[string]json.RawMessage](payload)
	if err != nil {
		return t, "", fmt.Errorf("meetingtoken: verify: %w", err)
	}
	rawDomain, ok := claims[properties.DomainClaim]
	if !ok {
		return t, "", fmt.Errorf("meetingtoken: verify: missing %q claim", properties.DomainClaim)
	}
	domainID, err := protocol.UnmarshalPayload[string](rawDomain)
	if err != nil {
		return t, "", fmt.Errorf("meetingtoken: verify: domain claim: %w", err)
	}

	fields, err := protocol.Marshal(properties.Token.FromClaims(claims))
	if err != nil {
		return t, "", fmt.Errorf("meetingtoken: verify: %w", err)
	}
	if err := t.UnmarshalJSON(fields); err != nil {
		return t, "", fmt.Errorf("meetingtoken: verify: %w", err)
	}
	return t, domainID, nil
}

// Claims returns the decoded, unverified payload of a compact token. It is
// meant for inspection only.
func Claims(token string) (map[string]json.RawMessage, error) {
	msg, err := jws.Parse([]byte(token))
	if err != nil {
		return nil, fmt.Errorf("meetingtoken: parse: %w", err)
	}
	claims, err := protocol.UnmarshalPayload[map[string]json.RawMessage](msg.Payload())
	if err != nil {
		return nil, fmt.Errorf("meetingtoken: parse: %w", err)
	}
	return claims, nil
}
