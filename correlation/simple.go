package correlation

import (
	"github.com/samber/lo"

	"github.com/get-axon/go-axon/ddd"
	"github.com/get-axon/go-axon/message"
)

// SimpleProvider copies a fixed set of metadata entries verbatim from
// the source message onto the correlation data of generated messages.
type SimpleProvider[M message.Message] struct {
	keys []string
}

var _ Provider[message.EventMessage] = SimpleProvider[message.EventMessage]{}

// NewSimpleProvider creates a SimpleProvider copying the given metadata
// keys. Duplicate keys are collapsed, keeping first-occurrence order.
func NewSimpleProvider[M message.Message](keys ...string) SimpleProvider[M] {
	return SimpleProvider[M]{keys: lo.Uniq(keys)}
}

// CorrelationFor returns the source message's metadata entries whose
// key is part of the configured set, in configured-key order. Keys
// missing from the source metadata are silently omitted.
func (p SimpleProvider[M]) CorrelationFor(msg M) ddd.MetaData {
	md := ddd.NewMetaData()
	source := msg.Metadata()

	for _, key := range p.keys {
		if value, ok := source.Get(key); ok {
			md = md.Add(key, value)
		}
	}

	return md
}
