package router

import "github.com/orthonet/gridrouter/pkg/geometry"

// DistanceFunc is an admissible heuristic, also used to sort routes by
// endpoint distance before a routing pass.
type DistanceFunc func(p, q geometry.Point) float64

// Options configures a Router. Unlike path.OrderOptions in the teacher
// lineage (a read-only bitmask fixed at construction), Options stays a
// plain exported struct: spec.md §4.8 requires Diagonal and Bus to be
// mutable by the caller between Route() passes.
type Options struct {
	GridStep      float64
	Diagonal      bool
	Bus           bool
	Distance      DistanceFunc
	Margin        float64
	TurnCost      float64
	BusGain       float64
	CrossCost     float64
	ProximityCost float64
}

// DefaultOptions fills every field from spec.md §6's default table for
// the given grid spacing.
func DefaultOptions(gridStep float64) Options {
	return Options{
		GridStep:      gridStep,
		Diagonal:      false,
		Bus:           false,
		Distance:      geometry.Manhattan,
		Margin:        2 * gridStep,
		TurnCost:      1.5 * gridStep,
		BusGain:       0.5 * gridStep,
		CrossCost:     3 * gridStep,
		ProximityCost: 2 * gridStep,
	}
}

// Validate rejects misconfiguration at construction time (spec.md §7).
func (o Options) Validate() error {
	if o.GridStep <= 0 {
		return errGridStep
	}
	if o.Distance == nil {
		return errDistance
	}
	return nil
}

// resolvedDistance returns the distance heuristic to use: the caller's
// override if set, otherwise Manhattan or Diagonal depending on Diagonal.
func (o Options) resolvedDistance() DistanceFunc {
	if o.Distance != nil {
		return o.Distance
	}
	if o.Diagonal {
		return geometry.Diagonal
	}
	return geometry.Manhattan
}
