package render

import (
	"image"
	"image/color"

	"chosenoffset.com/corridor9/internal/world/grid"
)

// Frame is a software RGBA surface. It implements Canvas for the renderer
// and image.Image so it can be encoded (the web frontend streams frames as
// PNG) without copying.
type Frame struct {
	width  int
	height int
	pix    []byte
}

// NewFrame allocates an opaque black frame.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
		pix:    make([]byte, 4*width*height),
	}
	for i := 3; i < len(f.pix); i += 4 {
		f.pix[i] = 0xff
	}
	return f
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// SetPixel writes one opaque pixel. Writes outside the frame are dropped.
func (f *Frame) SetPixel(x, y int, c grid.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := 4 * (y*f.width + x)
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = 0xff
}

// Pix returns the backing RGBA bytes in row-major order, ready for an
// Image's WritePixels.
func (f *Frame) Pix() []byte { return f.pix }

// Dim scales every color channel by pct in [0, 1], leaving alpha opaque.
// Used by frontends for fades; pct 1 is a no-op, pct 0 is black.
func (f *Frame) Dim(pct float64) {
	if pct >= 1 {
		return
	}
	if pct < 0 {
		pct = 0
	}
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = uint8(float64(f.pix[i]) * pct)
		f.pix[i+1] = uint8(float64(f.pix[i+1]) * pct)
		f.pix[i+2] = uint8(float64(f.pix[i+2]) * pct)
	}
}

// ColorModel implements image.Image.
func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.width, f.height) }

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	i := 4 * (y*f.width + x)
	return color.RGBA{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}
