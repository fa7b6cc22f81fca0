package router

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/orthonet/gridrouter/pkg/geometry"
)

// DefaultOptions fills every numeric/boolean field from spec.md §6's
// default table. Distance is compared separately since cmp can't diff
// func values.
func TestDefaultOptionsValues(t *testing.T) {
	got := DefaultOptions(10)
	want := Options{
		GridStep:      10,
		Diagonal:      false,
		Bus:           false,
		Margin:        20,
		TurnCost:      15,
		BusGain:       5,
		CrossCost:     30,
		ProximityCost: 20,
	}

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Options{}, "Distance")); diff != "" {
		t.Errorf("DefaultOptions(10) mismatch (-want +got):\n%s", diff)
	}

	if got.Distance == nil {
		t.Fatal("DefaultOptions left Distance nil")
	}
	if d := got.Distance(geometry.Point{}, geometry.Point{X: 3, Y: 4}); d != 7 {
		t.Errorf("default Distance(0,0 -> 3,4) = %v, want 7 (Manhattan)", d)
	}
}

func TestValidateRejectsNilDistance(t *testing.T) {
	opts := DefaultOptions(10)
	opts.Distance = nil
	if err := opts.Validate(); err == nil {
		t.Fatal("expected an error for a nil Distance function")
	}
}
