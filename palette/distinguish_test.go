package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSS(t *testing.T) {
	p := CSS()
	require.NotEmpty(t, p)
	assert.Equal(t, "aliceblue", p[0].Name)
	assert.Equal(t, "#f0f8ff", p[0].Hex)
}

func TestNearest(t *testing.T) {
	p := CSS()

	for _, tt := range []struct {
		rgb  [3]float64
		name string
	}{
		{[3]float64{1, 0, 0}, "red"},
		{[3]float64{1, 1, 1}, "white"},
		{[3]float64{0, 0, 0}, "black"},
	} {
		m, e := p.Nearest(tt.rgb)
		require.NoError(t, e)
		assert.Equal(t, tt.name, m.Name)
		assert.InDelta(t, 0, m.DeltaE, 1e-6)
	}
}

func TestNearestKeepsPaletteOrder(t *testing.T) {
	// aqua and cyan are the same color
	m, e := CSS().Nearest([3]float64{0, 1, 1})
	require.NoError(t, e)
	assert.Equal(t, "aqua", m.Name)
	assert.Equal(t, []interface{}{"aqua", "#00ffff", m.DeltaE}, m.Slice())
}

func TestRank(t *testing.T) {
	ms := CSS().Rank([3]float64{0.5, 0.5, 0.5})
	require.Len(t, ms, len(CSS()))
	for i := 1; i < len(ms); i++ {
		assert.LessOrEqual(t, ms[i-1].DeltaE, ms[i].DeltaE)
	}
	assert.Equal(t, "gray", ms[0].Name)
}

func TestNearestEmpty(t *testing.T) {
	_, e := Palette{}.Nearest([3]float64{0, 0, 0})
	assert.Error(t, e)
}
