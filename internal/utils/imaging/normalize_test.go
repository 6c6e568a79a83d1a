package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestNormalizeScalesLandscapeDown(t *testing.T) {
	got, err := Normalize(pngFixture(t, 1600, 1200))
	require.NoError(t, err)

	assert.Equal(t, 800, got.Width)
	assert.Equal(t, 600, got.Height)

	decoded, format, err := image.Decode(bytes.NewReader(got.JPEG))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 800, decoded.Bounds().Dx())
	assert.Equal(t, 600, decoded.Bounds().Dy())
}

func TestNormalizeScalesPortraitDown(t *testing.T) {
	got, err := Normalize(pngFixture(t, 1200, 1600))
	require.NoError(t, err)

	assert.Equal(t, 600, got.Width)
	assert.Equal(t, 800, got.Height)
}

func TestNormalizeKeepsSmallImageDimensions(t *testing.T) {
	got, err := Normalize(pngFixture(t, 500, 400))
	require.NoError(t, err)

	// Dimensions survive but the bytes are re-encoded as JPEG regardless.
	assert.Equal(t, 500, got.Width)
	assert.Equal(t, 400, got.Height)
	_, format, err := image.Decode(bytes.NewReader(got.JPEG))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestNormalizeRejectsNonImage(t *testing.T) {
	_, err := Normalize(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestDataURIPrefix(t *testing.T) {
	got, err := Normalize(pngFixture(t, 10, 10))
	require.NoError(t, err)

	uri := got.DataURI()
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	assert.Greater(t, len(uri), len("data:image/jpeg;base64,"))
}

func TestFitBounds(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW      int
		wantHeight int
	}{
		{"landscape above limit", 1600, 1200, 800, 600},
		{"portrait above limit", 1200, 1600, 600, 800},
		{"square above limit", 1000, 1000, 800, 800},
		{"inside the box", 640, 480, 640, 480},
		{"exactly at the limit", 800, 800, 800, 800},
		{"rounding", 1000, 333, 800, 266},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := FitBounds(tt.w, tt.h)
			assert.Equal(t, tt.wantW, gotW)
			assert.Equal(t, tt.wantHeight, gotH)
		})
	}
}
