package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/cwsl/sstv_challenger/sstv"
)

// LoadImage decodes an image file and checks it against the mode's
// fixed dimensions. No scaling or cropping is done: PD120 transmits
// exactly 640x496 and anything else is a caller error, reported before
// any output file is created.
func LoadImage(path string, mode *sstv.ModeSpec) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != mode.ImgWidth || bounds.Dy() != mode.ImgHeight {
		return nil, fmt.Errorf("image %s is %dx%d, %s requires exactly %dx%d",
			path, bounds.Dx(), bounds.Dy(), mode.ShortName, mode.ImgWidth, mode.ImgHeight)
	}

	if DebugMode {
		log.Printf("[Image] Decoded %s (%s, %dx%d)", path, format, bounds.Dx(), bounds.Dy())
	}
	return img, nil
}
