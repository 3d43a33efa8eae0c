package location

import (
	"context"

	"go.uber.org/zap"

	"github.com/gofloaters/spacefinder/api/internal/entity"
)

// Source names where a resolved reference point came from.
type Source string

// Resolution sources, in precedence order.
const (
	SourcePicked    Source = "picked"
	SourceDevice    Source = "device"
	SourceLastKnown Source = "last_known"
	SourceDefault   Source = "default"
)

// LastKnownStore persists the latest reference point per client.
type LastKnownStore interface {
	Last(ctx context.Context, clientID string) (entity.Place, error)
	Save(ctx context.Context, clientID string, place entity.Place) error
}

// ResolveInput gathers everything the client knows about where to search from.
type ResolveInput struct {
	ClientID string
	Picked   *entity.Place
	Device   *DeviceFix
}

// Resolution is the chosen reference point plus any user-facing warning.
type Resolution struct {
	Place   entity.Place `json:"place"`
	Source  Source       `json:"source"`
	Warning string       `json:"warning,omitempty"`
}

// Resolver picks the search origin.
type Resolver struct {
	store    LastKnownStore
	fallback entity.Place
	logger   *zap.Logger
}

// NewResolver builds a resolver. store may be nil; fallback defaults to DefaultPlace
// when its coordinate is invalid.
func NewResolver(store LastKnownStore, fallback entity.Place, logger *zap.Logger) *Resolver {
	if !fallback.Coordinate.Valid() || fallback.Name == "" {
		fallback = DefaultPlace
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, fallback: fallback, logger: logger}
}

// Fallback returns the configured default origin.
func (r *Resolver) Fallback() entity.Place {
	return r.fallback
}

// Resolve applies picked place > device fix > last known > default. A failed device
// fix does not fail the call; its message is returned as a warning.
func (r *Resolver) Resolve(ctx context.Context, in ResolveInput) Resolution {
	res := r.resolve(ctx, in)
	if r.store != nil && in.ClientID != "" && res.Source != SourceDefault && res.Source != SourceLastKnown {
		if err := r.store.Save(ctx, in.ClientID, res.Place); err != nil {
			r.logger.Warn("save last known location failed", zap.String("client_id", in.ClientID), zap.Error(err))
		}
	}
	return res
}

func (r *Resolver) resolve(ctx context.Context, in ResolveInput) Resolution {
	if in.Picked != nil && in.Picked.Coordinate.Valid() {
		return Resolution{Place: *in.Picked, Source: SourcePicked}
	}

	var warning string
	if in.Device != nil {
		if in.Device.Err == "" && in.Device.Coordinate != nil && in.Device.Coordinate.Valid() {
			return Resolution{
				Place:  entity.Place{Name: "Your location", Coordinate: *in.Device.Coordinate},
				Source: SourceDevice,
			}
		}
		errCode := in.Device.Err
		if errCode == "" {
			errCode = PositionUnavailable
		}
		warning = errCode.Message()
	}

	if r.store != nil && in.ClientID != "" {
		place, err := r.store.Last(ctx, in.ClientID)
		if err == nil {
			return Resolution{Place: place, Source: SourceLastKnown, Warning: warning}
		}
		r.logger.Debug("no last known location", zap.String("client_id", in.ClientID), zap.Error(err))
	}

	return Resolution{Place: r.fallback, Source: SourceDefault, Warning: warning}
}
