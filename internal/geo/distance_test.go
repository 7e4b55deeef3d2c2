package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMiles(t *testing.T) {
	// Downtown Saint Louis to downtown Chicago, roughly 260 road-free miles.
	stlLat, stlLng := 38.6270, -90.1994
	chiLat, chiLng := 41.8781, -87.6298

	d := HaversineMiles(stlLat, stlLng, chiLat, chiLng)
	assert.InDelta(t, 259, d, 5)
}

func TestHaversineMiles_Symmetric(t *testing.T) {
	a := HaversineMiles(38.6270, -90.1994, 41.8781, -87.6298)
	b := HaversineMiles(41.8781, -87.6298, 38.6270, -90.1994)

	assert.InDelta(t, a, b, 1e-9)
}

func TestHaversineMiles_SamePointIsZero(t *testing.T) {
	assert.InDelta(t, 0, HaversineMiles(38.6270, -90.1994, 38.6270, -90.1994), 1e-9)
}

func TestHaversineMiles_ShortDistance(t *testing.T) {
	// Saint Louis Arch to Clayton, about 8 miles.
	d := HaversineMiles(38.6247, -90.1848, 38.6426, -90.3237)
	assert.InDelta(t, 7.6, d, 1)
}
