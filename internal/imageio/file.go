// Package imageio decodes input images and encodes sorted results.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// DecodeTypes lists the values accepted for an explicit input type.
var DecodeTypes = []string{"jpeg", "jpg", "png", "bmp", "tiff", "tif", "webp"}

// ErrUnsupportedType is returned for an unknown explicit input type.
var ErrUnsupportedType = errors.New("unsupported image type")

// Load opens and decodes an image from the given file path. An empty
// imageType lets the format be detected from the file contents.
func Load(path string, imageType string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	var decodedImg image.Image
	switch strings.ToLower(imageType) {
	case "":
		decodedImg, _, err = image.Decode(file)
	case "jpeg", "jpg":
		decodedImg, err = jpeg.Decode(file)
	case "png":
		decodedImg, err = png.Decode(file)
	case "bmp":
		decodedImg, err = bmp.Decode(file)
	case "tiff", "tif":
		decodedImg, err = tiff.Decode(file)
	case "webp":
		decodedImg, err = webp.Decode(file)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, imageType)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	return decodedImg, nil
}

// Fit downscales img so that neither side exceeds maxDim, keeping the
// aspect ratio. Images already within bounds and maxDim <= 0 are returned
// unchanged.
func Fit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}

// CheckOutputFormat reports whether path has an extension Save can encode.
func CheckOutputFormat(path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// Save encodes img to path using the format implied by its extension.
// quality applies to JPEG output.
func Save(img image.Image, path string, quality int) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("could not save image %s: %w", path, err)
	}
	return nil
}
