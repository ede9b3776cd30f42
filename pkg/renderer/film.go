package renderer

import (
	"image"
	"image/color"

	"github.com/lumen-render/lumen/pkg/core"
)

// Film is a two-dimensional grid of linear RGB radiance values. Rows are
// written by independent workers; each row is disjoint memory, so no
// synchronization is needed while rendering.
type Film struct {
	Width, Height int
	pixels        [][]core.Vec3
}

// NewFilm creates a film with the given dimensions. It panics on
// non-positive dimensions.
func NewFilm(width, height int) *Film {
	if width <= 0 || height <= 0 {
		panic("renderer: film dimensions must be positive")
	}
	pixels := make([][]core.Vec3, height)
	for row := range pixels {
		pixels[row] = make([]core.Vec3, width)
	}
	return &Film{Width: width, Height: height, pixels: pixels}
}

// Set stores a pixel's radiance
func (f *Film) Set(col, row int, radiance core.Vec3) {
	f.pixels[row][col] = radiance
}

// At returns a pixel's radiance
func (f *Film) At(col, row int) core.Vec3 {
	return f.pixels[row][col]
}

// Image converts the film to an 8-bit image with gamma 2 correction. Row 0 of
// the film is the bottom of the image.
func (f *Film) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			img.SetRGBA(col, f.Height-1-row, vec3ToColor(f.pixels[row][col]))
		}
	}
	return img
}

// vec3ToColor converts linear radiance to a display color with gamma
// correction and clamping
func vec3ToColor(radiance core.Vec3) color.RGBA {
	corrected := radiance.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * corrected.X),
		G: uint8(255 * corrected.Y),
		B: uint8(255 * corrected.Z),
		A: 255,
	}
}
