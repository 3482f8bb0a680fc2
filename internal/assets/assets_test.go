package assets

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSolid(t *testing.T, dir, name string, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	require.NoError(t, imgio.Save(path, img, imgio.PNGEncoder()))
	return path
}

func TestLoadFaceResizes(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	path := writeSolid(t, t.TempDir(), "red.png", 40, 20, red)

	img, err := LoadFace(path, 16)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	px := img.RGBAAt(8, 8)
	assert.Greater(t, px.R, uint8(250))
	assert.Equal(t, uint8(0), px.G)
	assert.Equal(t, uint8(0), px.B)

	_, err = LoadFace(path, 0)
	assert.Error(t, err)
}

func TestLoadFallsBackToPlaceholder(t *testing.T) {
	dir := t.TempDir()
	blue := color.RGBA{B: 255, A: 255}
	files := map[string]string{
		"stars":  writeSolid(t, dir, "stars.png", 8, 8, blue),
		"nebula": filepath.Join(dir, "missing.jpg"),
	}
	var warnings []error
	tex := Load(files, []string{"nebula", "stars", "unset"}, 8, func(err error) {
		warnings = append(warnings, err)
	})

	require.Len(t, tex, 3)
	assert.Greater(t, tex["stars"].RGBAAt(3, 3).B, uint8(250))
	assert.Equal(t, placeholderColor, tex["nebula"].RGBAAt(3, 3))
	assert.Equal(t, placeholderColor, tex["unset"].RGBAAt(0, 0))
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0].Error(), "nebula")
	assert.Contains(t, warnings[1].Error(), "no file configured")

	assert.Equal(t, placeholderColor, tex.Face("other", 8).RGBAAt(1, 1))
}
