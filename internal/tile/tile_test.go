package tile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTile_AssetKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tile     Tile
		expected string
	}{
		{"cloud three", New(Cloud, 3), "cloud_3"},
		{"sun fifteen", New(Sun, 15), "sun_15"},
		{"unknown suit kept verbatim", New("comet", 2), "comet_2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.tile.AssetKey())
		})
	}
}

func TestTile_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, New(Moon, 1).Valid())
	assert.True(t, New(Star, 15).Valid())
	assert.False(t, New(Moon, 0).Valid())
	assert.False(t, New(Moon, 16).Valid())
	assert.False(t, New("comet", 3).Valid())
}

func TestSuit_Symbol(t *testing.T) {
	t.Parallel()

	for _, s := range []Suit{Cloud, Star, Moon, Sun} {
		assert.True(t, s.Known())
		assert.NotEqual(t, string(s), s.Symbol())
	}
	assert.Equal(t, "comet", Suit("comet").Symbol())
}

func TestTile_JSONShape(t *testing.T) {
	t.Parallel()

	var got Tile
	require.NoError(t, json.Unmarshal([]byte(`{"suit":"star","rank":7}`), &got))
	assert.Equal(t, New(Star, 7), got)
}
