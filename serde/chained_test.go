package serde_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get-axon/go-axon/serde"
)

type orderJSON struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

func TestChain(t *testing.T) {
	mappingSerde := serde.Fuse[order, orderJSON](
		serde.AsSerializerFunc(func(src order) (orderJSON, error) {
			switch src.Status {
			case orderStatusPlaced:
				return orderJSON{Status: "PLACED", ID: src.ID}, nil
			case orderStatusShipped:
				return orderJSON{Status: "SHIPPED", ID: src.ID}, nil
			case orderStatusDelivered:
				return orderJSON{Status: "DELIVERED", ID: src.ID}, nil
			default:
				return orderJSON{}, assert.AnError
			}
		}),
		serde.AsDeserializerFunc(func(dst orderJSON) (order, error) {
			switch dst.Status {
			case "PLACED":
				return order{Status: orderStatusPlaced, ID: dst.ID}, nil
			case "SHIPPED":
				return order{Status: orderStatusShipped, ID: dst.ID}, nil
			case "DELIVERED":
				return order{Status: orderStatusDelivered, ID: dst.ID}, nil
			default:
				return order{}, assert.AnError
			}
		}),
	)

	chainedSerde := serde.Chain[order, orderJSON, []byte](
		mappingSerde,
		serde.NewJSON(func() orderJSON { return orderJSON{} }),
	)

	t.Run("it serializes through both stages", func(t *testing.T) {
		data, err := chainedSerde.Serialize(order{Status: orderStatusShipped, ID: "A1"})
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(data), `"SHIPPED"`))
	})

	t.Run("it round-trips through the middle representation", func(t *testing.T) {
		src := order{Status: orderStatusDelivered, ID: "B2"}

		data, err := chainedSerde.Serialize(src)
		require.NoError(t, err)

		decoded, err := chainedSerde.Deserialize(data)
		require.NoError(t, err)
		assert.Equal(t, src, decoded)
	})

	t.Run("it surfaces first stage failures", func(t *testing.T) {
		_, err := chainedSerde.Serialize(order{Status: orderStatus(99), ID: "C3"})
		assert.Error(t, err)
	})

	t.Run("it surfaces second stage failures", func(t *testing.T) {
		_, err := chainedSerde.Deserialize([]byte("{"))
		assert.Error(t, err)
	})
}
