package correlation

import (
	"github.com/google/uuid"

	"github.com/get-axon/go-axon/ddd"
	"github.com/get-axon/go-axon/message"
)

// OriginProvider establishes or propagates the causal chain a message
// belongs to.
//
// When the source message already carries correlation entries, they are
// forwarded unchanged. When it does not, the message is treated as the
// root of a new chain: the correlation id is derived from the message's
// own Entity id and, by default, the trace id takes the same value, so
// that rooting a chain is fully deterministic. Use WithFreshTraceID to
// generate an independent trace id per rooted chain instead.
type OriginProvider[M message.Message] struct {
	freshTraceID bool
}

var _ Provider[message.EventMessage] = OriginProvider[message.EventMessage]{}

type originConfig struct {
	freshTraceID bool
}

// OriginOption changes the configuration of an OriginProvider.
type OriginOption interface {
	apply(*originConfig)
}

type originOption func(*originConfig)

func (fn originOption) apply(cfg *originConfig) { fn(cfg) }

// WithFreshTraceID makes the provider generate a new unique trace id
// when rooting a chain, instead of reusing the correlation id.
func WithFreshTraceID() OriginOption {
	return originOption(func(cfg *originConfig) { cfg.freshTraceID = true })
}

// NewOriginProvider creates an OriginProvider.
func NewOriginProvider[M message.Message](options ...OriginOption) OriginProvider[M] {
	var cfg originConfig
	for _, option := range options {
		option.apply(&cfg)
	}

	return OriginProvider[M]{freshTraceID: cfg.freshTraceID}
}

// CorrelationFor returns a MetaData holding the correlation and trace
// ids the generated messages should carry.
//
// Entries already present in the source metadata are forwarded
// verbatim; absent entries are derived from the message identity as
// described on OriginProvider.
func (p OriginProvider[M]) CorrelationFor(msg M) ddd.MetaData {
	source := msg.Metadata()

	correlationID, hasCorrelation := source.Get(ddd.CorrelationIDKey)
	traceID, hasTrace := source.Get(ddd.TraceIDKey)

	if !hasCorrelation && !hasTrace && !p.freshTraceID {
		// Chain root: both ids derive from the message's own identity.
		return msg.Identifier().AsCorrelation()
	}

	if !hasCorrelation {
		correlationID = msg.Identifier().ID()
	}

	if !hasTrace {
		traceID = correlationID
		if p.freshTraceID {
			traceID = uuid.NewString()
		}
	}

	return ddd.NewMetaData().
		Add(ddd.CorrelationIDKey, correlationID).
		Add(ddd.TraceIDKey, traceID)
}
