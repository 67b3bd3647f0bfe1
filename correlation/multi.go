package correlation

import (
	"github.com/get-axon/go-axon/ddd"
	"github.com/get-axon/go-axon/message"
)

// MultiProvider composes an ordered sequence of Providers.
//
// Each provider is invoked in sequence order and their outputs merged
// left to right with ddd.MetaData.Merge, so providers appearing later
// in the sequence override keys set by earlier ones. A typical
// composition copies business keys with a SimpleProvider and then
// ensures causal-chain keys with an OriginProvider.
type MultiProvider[M message.Message] struct {
	providers []Provider[M]
}

var _ Provider[message.EventMessage] = MultiProvider[message.EventMessage]{}

// NewMultiProvider creates a MultiProvider invoking the given providers
// in the given order.
func NewMultiProvider[M message.Message](providers ...Provider[M]) MultiProvider[M] {
	owned := make([]Provider[M], len(providers))
	copy(owned, providers)

	return MultiProvider[M]{providers: owned}
}

// CorrelationFor merges the correlation data of every configured
// provider. On key collision, the entry from the provider appearing
// later in the configured sequence wins.
func (p MultiProvider[M]) CorrelationFor(msg M) ddd.MetaData {
	md := ddd.NewMetaData()

	for _, provider := range p.providers {
		md = md.Merge(provider.CorrelationFor(msg))
	}

	return md
}
