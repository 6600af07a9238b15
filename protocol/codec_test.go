package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_SortsMapKeys(t *testing.T) {
	b, err := Marshal(map[string]interface{}{"b": 1, "a": true})
	require.NoError(t, err)
	assert.Equal(t, `{"a":true,"b":1}`, string(b))
}

func TestUnmarshalPayload_IgnoresUnknownKeys(t *testing.T) {
	type token struct {
		Token string `json:"token"`
	}
	v, err := UnmarshalPayload[token]([]byte(`{"token":"abc","extra":42}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", v.Token)
}

func TestUnmarshal_InvalidJSON(t *testing.T) {
	var v map[string]interface{}
	err := Unmarshal([]byte(`<html>`), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "protocol: unmarshal")
	assert.False(t, Valid([]byte(`<html>`)))
	assert.True(t, Valid([]byte(`{}`)))
}

func TestListResponse_Decode(t *testing.T) {
	v, err := UnmarshalPayload[ListResponse[json.RawMessage]]([]byte(`{"total_count":2,"data":[{},{}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, v.TotalCount)
	assert.Len(t, v.Data, 2)
}
