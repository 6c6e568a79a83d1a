package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
)

const (
	// MaxDimension bounds the longer side of an uploaded listing image.
	MaxDimension = 800
	// JPEGQuality matches the lossy re-encode applied to every upload,
	// including images that are already small enough.
	JPEGQuality = 70
)

var ErrImageDecode = errors.New("failed to decode image")

type NormalizedImage struct {
	JPEG   []byte
	Width  int
	Height int
}

// Normalize decodes an arbitrary raster image and re-encodes it as a JPEG
// whose longer dimension does not exceed MaxDimension, preserving aspect
// ratio. Images already inside the bounding box keep their dimensions but are
// still recompressed.
func Normalize(r io.Reader) (*NormalizedImage, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, ErrImageDecode
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	newWidth, newHeight := FitBounds(width, height)

	out := src
	if newWidth != width || newHeight != height {
		dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, err
	}

	return &NormalizedImage{
		JPEG:   buf.Bytes(),
		Width:  newWidth,
		Height: newHeight,
	}, nil
}

// DataURI returns the normalized image as a self-contained string usable as a
// display source and embeddable in a JSON request body.
func (n *NormalizedImage) DataURI() string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(n.JPEG)
}

// FitBounds scales width and height to fit the MaxDimension bounding box,
// rounding to the nearest integer. Dimensions already inside the box are
// returned unchanged.
func FitBounds(width, height int) (int, int) {
	if width >= height && width > MaxDimension {
		return MaxDimension, int(math.Round(float64(height) * MaxDimension / float64(width)))
	}
	if height > MaxDimension {
		return int(math.Round(float64(width) * MaxDimension / float64(height))), MaxDimension
	}
	return width, height
}
