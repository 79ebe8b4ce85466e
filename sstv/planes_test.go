package sstv

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func uniformImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestConvertPlanesDimensions(t *testing.T) {
	img := uniformImage(640, 496, color.RGBA{0, 0, 0, 255})
	y, cr, cb := ConvertPlanes(img)

	for _, p := range []Plane{y, cr, cb} {
		require.Equal(t, 640, p.Width())
		require.Equal(t, 496, p.Height())
	}
}

func TestConvertPlanesGray(t *testing.T) {
	// Both chroma coefficient rows sum to zero, so a neutral gray sits
	// exactly at the 128 chroma midpoint.
	img := uniformImage(4, 2, color.RGBA{128, 128, 128, 255})
	y, cr, cb := ConvertPlanes(img)

	wantY := 16.0 + (0.256789+0.504129+0.097906)*128.0
	require.InDelta(t, wantY, y[0][0], 1e-9)
	require.InDelta(t, 125.929472, y[0][0], 1e-6)
	require.InDelta(t, 128.0, cr[1][3], 1e-9)
	require.InDelta(t, 128.0, cb[1][3], 1e-9)
}

func TestConvertPlanesPrimaries(t *testing.T) {
	tests := []struct {
		name      string
		c         color.RGBA
		y, cr, cb float64
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 16.0, 128.0, 128.0},
		{"white", color.RGBA{255, 255, 255, 255}, 16.0 + 0.858824*255, 128.0, 128.0},
		{"red", color.RGBA{255, 0, 0, 255}, 16.0 + 0.256789*255, 128.0 + 0.439215*255, 128.0 - 0.148223*255},
		{"blue", color.RGBA{0, 0, 255, 255}, 16.0 + 0.097906*255, 128.0 - 0.071426*255, 128.0 + 0.439215*255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, cr, cb := ConvertPlanes(uniformImage(2, 2, tt.c))
			require.InDelta(t, tt.y, y[0][0], 1e-9)
			require.InDelta(t, tt.cr, cr[0][0], 1e-9)
			require.InDelta(t, tt.cb, cb[0][0], 1e-9)
		})
	}
}

func TestConvertPlanesIgnoresAlpha(t *testing.T) {
	// NRGBA keeps the stored channel values regardless of alpha.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{128, 128, 128, 255})

	y, _, _ := ConvertPlanes(img)
	require.InDelta(t, 125.929472, y[0][0], 1e-6)
}
