package ranking

import (
	"testing"

	"nexus_recycle/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coords(lat, lng float64) *entities.Coordinates {
	return &entities.Coordinates{Lat: lat, Lng: lng}
}

func ids(qs []entities.BuyerQuote) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeHighest, "highest": ModeHighest, "Closest": ModeClosest, " material ": ModeMaterial} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("cheapest")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestRank_Empty(t *testing.T) {
	for _, m := range []Mode{ModeHighest, ModeClosest, ModeMaterial} {
		out := Rank(nil, m, coords(0, 0))
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestRank_HighestIsStable(t *testing.T) {
	in := []entities.BuyerQuote{
		{ID: "a", RatePerKg: 1},
		{ID: "b", RatePerKg: 5},
		{ID: "c", RatePerKg: 1},
		{ID: "d", RatePerKg: 5},
		{ID: "e", RatePerKg: 3},
	}
	out := Rank(in, ModeHighest, nil)
	assert.Equal(t, []string{"b", "d", "e", "a", "c"}, ids(out))
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []entities.BuyerQuote{{ID: "a", RatePerKg: 1}, {ID: "b", RatePerKg: 2}}
	_ = Rank(in, ModeHighest, nil)
	assert.Equal(t, []string{"a", "b"}, ids(in))
}

func TestRank_ClosestMissingCoordsLast(t *testing.T) {
	ref := coords(37.7749, -122.4194)
	in := []entities.BuyerQuote{
		{ID: "none-1"},
		{ID: "far", Coords: coords(37.8049, -122.4094)},
		{ID: "here", Coords: coords(37.7749, -122.4194)},
		{ID: "none-2"},
		{ID: "near", Coords: coords(37.7858, -122.4064)},
	}
	out := Rank(in, ModeClosest, ref)
	assert.Equal(t, []string{"here", "near", "far", "none-1", "none-2"}, ids(out))
}

func TestRank_ClosestWithoutReferenceKeepsOrder(t *testing.T) {
	in := []entities.BuyerQuote{
		{ID: "x", Coords: coords(10, 10)},
		{ID: "y", Coords: coords(0, 0)},
	}
	assert.Equal(t, []string{"x", "y"}, ids(Rank(in, ModeClosest, nil)))
}

func TestRank_Material(t *testing.T) {
	in := []entities.BuyerQuote{
		{ID: "1", Material: "Plastic"},
		{ID: "2", Material: "Aluminium"},
		{ID: "3", Material: "copper"},
		{ID: "4", Material: "Aluminium"},
	}
	out := Rank(in, ModeMaterial, nil)
	assert.Equal(t, []string{"2", "4", "3", "1"}, ids(out))
}

func TestDistanceFrom(t *testing.T) {
	_, ok := DistanceFrom(nil, entities.BuyerQuote{Coords: coords(0, 0)})
	assert.False(t, ok)
	_, ok = DistanceFrom(coords(0, 0), entities.BuyerQuote{})
	assert.False(t, ok)

	d, ok := DistanceFrom(coords(0, 0), entities.BuyerQuote{Coords: coords(1, 0)})
	assert.True(t, ok)
	assert.InDelta(t, 111.195, d, 0.001)
}
