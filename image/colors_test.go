package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{255, 0, 0, 255}
	red2 = color.NRGBA{250, 5, 5, 255}
	blue = color.NRGBA{0, 0, 255, 255}
)

// twoTone returns a 10x10 image, its first n pixels c1 and the rest c2.
func twoTone(n int, c1, c2 color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for i := 0; i < 100; i++ {
		c := c2
		if i < n {
			c = c1
		}
		img.Set(i%10, i/10, c)
	}
	return img
}

func TestGetColors(t *testing.T) {
	img := twoTone(70, red, blue)
	img.Set(9, 9, color.NRGBA{0, 0, 0, 0})

	m := GetColors(img, 1)
	assert.Len(t, m, 2)
	assert.Equal(t, 70, m[red])
	assert.Equal(t, 29, m[blue])
}

func TestRankColors(t *testing.T) {
	cvl := RankColors(GetColors(twoTone(30, red, blue), 1))
	require.Len(t, cvl, 2)
	assert.Equal(t, 70, cvl[0].Count)
	assert.Equal(t, [3]float64{0, 0, 255}, cvl[0].RGB8())
}

func TestGroup(t *testing.T) {
	cvl := RankColors(map[color.Color]int{red: 5, red2: 3, blue: 4})
	groups := Group(cvl, GroupDeltaE)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 1)
	assert.Equal(t, 4, groups[1][0].Count)

	assert.Len(t, Group(cvl, 0), 3)
}

func TestAverage(t *testing.T) {
	cvl := RankColors(map[color.Color]int{red: 1, color.NRGBA{0, 0, 0, 255}: 1})
	cv := cvl.Average()
	assert.Equal(t, 2, cv.Count)
	// root mean square of 255 and 0
	assert.Equal(t, [3]float64{180, 0, 0}, cv.RGB8())

	assert.Equal(t, ColorVol{}, ColorVolList{}.Average())
}

func TestSpread(t *testing.T) {
	assert.Zero(t, ColorVolList{}.Spread())
	cvl := RankColors(map[color.Color]int{red: 1, blue: 1})
	assert.Greater(t, cvl.Spread(), GroupDeltaE*1.0)
}

func TestDominant(t *testing.T) {
	cvl, e := Dominant(twoTone(70, red, blue), 8)
	require.NoError(t, e)
	require.NotEmpty(t, cvl)

	rgb := cvl[0].RGB8()
	assert.Greater(t, rgb[0], 200.0)
	assert.Less(t, rgb[2], 50.0)
	assert.Equal(t, 70, cvl[0].Count)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	f, e := os.Create(path)
	require.NoError(t, e)
	require.NoError(t, png.Encode(f, twoTone(50, red, blue)))
	require.NoError(t, f.Close())

	img, e := Load(path)
	require.NoError(t, e)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())

	_, e = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, e)
}
