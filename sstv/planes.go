package sstv

import "image"

/*
 * Color Plane Conversion
 *
 * RGB to YCrCb using the BT.601 limited-range matrix, the color space
 * PD modes transmit. Plane values are kept as unrounded floats and are
 * deliberately not clamped: out-of-gamut source colors can land outside
 * the nominal 0-255 channel range and go on the air as-is.
 */

// Plane holds one color channel of an image, indexed [row][column].
type Plane [][]float64

// NewPlane allocates a zeroed plane of the given dimensions.
func NewPlane(width, height int) Plane {
	p := make(Plane, height)
	for i := range p {
		p[i] = make([]float64, width)
	}
	return p
}

// Width returns the number of columns, or 0 for an empty plane.
func (p Plane) Width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Height returns the number of rows.
func (p Plane) Height() int {
	return len(p)
}

// ConvertPlanes maps an RGB image to Y, Cr and Cb planes:
//
//	Y  =  16 + 0.256789*R + 0.504129*G + 0.097906*B
//	Cb = 128 - 0.148223*R - 0.290992*G + 0.439215*B
//	Cr = 128 + 0.439215*R - 0.367789*G - 0.071426*B
//
// The alpha channel is ignored.
func ConvertPlanes(img image.Image) (y, cr, cb Plane) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	y = NewPlane(width, height)
	cr = NewPlane(width, height)
	cb = NewPlane(width, height)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			r16, g16, b16, _ := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
			r := float64(r16 >> 8)
			g := float64(g16 >> 8)
			b := float64(b16 >> 8)

			y[row][col] = 16.0 + 0.256789*r + 0.504129*g + 0.097906*b
			cb[row][col] = 128.0 - 0.148223*r - 0.290992*g + 0.439215*b
			cr[row][col] = 128.0 + 0.439215*r - 0.367789*g - 0.071426*b
		}
	}

	return y, cr, cb
}
