package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// placeholderColor fills faces whose image could not be loaded.
var placeholderColor = color.RGBA{R: 40, G: 40, B: 48, A: 255}

// LoadFace decodes the image at path and resizes it to size x size.
func LoadFace(path string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("load %s: bad face size %d", path, size)
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return transform.Resize(img, size, size, transform.Linear), nil
}

// Placeholder returns a solid size x size face.
func Placeholder(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderColor}, image.Point{}, draw.Src)
	return img
}

// Textures holds decoded faces by texture key.
type Textures map[string]*image.RGBA

// Load decodes every key in keys using the file paths in files. A key with no path or a file that
// fails to load gets a placeholder; each failure is reported through warn (which may be nil).
func Load(files map[string]string, keys []string, size int, warn func(error)) Textures {
	out := make(Textures, len(keys))
	for _, k := range keys {
		path, ok := files[k]
		if !ok || path == "" {
			if warn != nil {
				warn(fmt.Errorf("texture %q: no file configured", k))
			}
			out[k] = Placeholder(size)
			continue
		}
		img, err := LoadFace(path, size)
		if err != nil {
			if warn != nil {
				warn(fmt.Errorf("texture %q: %w", k, err))
			}
			out[k] = Placeholder(size)
			continue
		}
		out[k] = img
	}
	return out
}

// Face returns the image for key, or a placeholder sized like the other faces if it is unknown.
func (t Textures) Face(key string, size int) *image.RGBA {
	if img, ok := t[key]; ok {
		return img
	}
	return Placeholder(size)
}
