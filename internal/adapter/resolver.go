package adapter

import (
	"context"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// FetchByID retrieves a single record from a backend collection.
type FetchByID func(ctx context.Context, id string) (map[string]any, error)

// Resolver turns a reference that arrives either as an embedded object or a
// bare identifier into a normalized descriptor. It holds no cache: every
// unresolved reference costs one fetch, which is fine at this data scale.
type Resolver struct {
	fetch    FetchByID
	nameKeys []string
	logger   *zap.Logger
}

// NewResolver builds a resolver for one collection. nameKeys are the
// candidate display-name fields, in priority order.
func NewResolver(fetch FetchByID, logger *zap.Logger, nameKeys ...string) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{fetch: fetch, nameKeys: nameKeys, logger: logger}
}

// Resolve produces a reference descriptor from record. When the backend
// expanded the reference under populatedKey no network call is made. When
// only a bare id is present, exactly one fetch-by-id is attempted; if it
// fails the descriptor keeps the id with an empty name so callers can
// degrade instead of erroring.
func (r *Resolver) Resolve(ctx context.Context, record map[string]any, populatedKey string, idKeys ...string) types.Ref {
	if embedded := normalize.Map(record, populatedKey); embedded != nil {
		id := normalize.String(embedded, normalize.String(record, "", idKeys...), "_id", "id")
		return types.Ref{ID: id, Name: normalize.String(embedded, "", r.nameKeys...)}
	}

	id := normalize.String(record, "", idKeys...)
	if id == "" {
		return types.Ref{}
	}

	fetched, err := r.fetch(ctx, id)
	if err != nil || fetched == nil {
		r.logger.Debug("reference fetch failed", zap.String("id", id), zap.Error(err))
		return types.Ref{ID: id}
	}
	return types.Ref{ID: id, Name: normalize.String(fetched, "", r.nameKeys...)}
}
