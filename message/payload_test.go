package message_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get-axon/go-axon/message"
)

func TestPayload(t *testing.T) {
	t.Run("it wraps the given value", func(t *testing.T) {
		payload := message.NewPayload(123)
		assert.Equal(t, 123, payload.Value())
	})

	t.Run("it renders the value in canonical JSON form", func(t *testing.T) {
		assert.Equal(t, `"Some value"`, message.NewPayload("Some value").String())
		assert.Equal(t, `{"orderId":"A1"}`, message.NewPayload(map[string]any{"orderId": "A1"}).String())
		assert.Equal(t, `null`, message.NewPayload(nil).String())
	})
}

func TestPayloadEqual(t *testing.T) {
	t.Run("equivalent number representations compare equal", func(t *testing.T) {
		assert.True(t, message.NewPayload(123).Equal(message.NewPayload(float64(123))))
	})

	t.Run("different values are not equal", func(t *testing.T) {
		assert.False(t, message.NewPayload("a").Equal(message.NewPayload("b")))
	})
}

func TestPayloadJSON(t *testing.T) {
	payload := message.NewPayload(map[string]any{
		"orderId": "A1",
		"items":   []any{"first", "second"},
	})

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded message.Payload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, payload.Equal(decoded))
}
