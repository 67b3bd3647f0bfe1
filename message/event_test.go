package message_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get-axon/go-axon/ddd"
	"github.com/get-axon/go-axon/message"
)

func TestNewEventMessage(t *testing.T) {
	msg := message.NewEventMessage("OrderPlaced", map[string]any{"orderId": "A1"})

	t.Run("the identity is a fresh Entity named after the event", func(t *testing.T) {
		assert.Equal(t, "OrderPlaced", msg.Identifier().Name())
		assert.NotEmpty(t, msg.Identifier().ID())
	})

	t.Run("the payload wraps the given value", func(t *testing.T) {
		assert.True(t, msg.Payload().Equal(message.NewPayload(map[string]any{"orderId": "A1"})))
	})

	t.Run("the metadata is seeded from the identity", func(t *testing.T) {
		md := msg.Metadata()

		name, ok := md.Get(ddd.EntityNameKey)
		require.True(t, ok)
		assert.Equal(t, "OrderPlaced", name)

		id, ok := md.Get(ddd.EntityIDKey)
		require.True(t, ok)
		assert.Equal(t, msg.Identifier().ID(), id)

		eventName, ok := md.Get(ddd.EventNameKey)
		require.True(t, ok)
		assert.Equal(t, "OrderPlaced", eventName)
	})

	t.Run("it renders through its identity", func(t *testing.T) {
		assert.Contains(t, msg.String(), "OrderPlaced")
	})
}

func TestEventMessageSetIdentifier(t *testing.T) {
	expected := ddd.NewEntity("id", "name")

	msg := message.NewEventMessage("some_event", "my payload").
		SetIdentifier(expected)

	assert.Equal(t, expected, msg.Identifier())
	assert.True(t, msg.Payload().Equal(message.NewPayload("my payload")))

	// Metadata seeded at construction is not re-derived from the new identity.
	name, ok := msg.Metadata().Get(ddd.EntityNameKey)
	require.True(t, ok)
	assert.Equal(t, "some_event", name)
}

func TestEventMessageAddMeta(t *testing.T) {
	msg := message.NewEventMessage("some_event", nil).
		AddMeta("tenant", "acme").
		AddMeta("tenant", "globex")

	value, ok := msg.Metadata().Get("tenant")
	require.True(t, ok)
	assert.Equal(t, "globex", value)
}

func TestEventMessageJSON(t *testing.T) {
	msg := message.NewEventMessage("OrderPlaced", map[string]any{"orderId": "A1"}).
		AddMeta("tenant", "acme")

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded message.EventMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, msg.Identifier(), decoded.Identifier())
	assert.True(t, msg.Metadata().Equal(decoded.Metadata()))
	assert.Equal(t, msg.Metadata().Keys(), decoded.Metadata().Keys())
	assert.True(t, msg.Payload().Equal(decoded.Payload()))
}
