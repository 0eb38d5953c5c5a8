// Package imaging shrinks uploaded photos before they are sent to the media store.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"math"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPixels matches Pillow's decompression bomb threshold.
const DefaultMaxPixels = 89_478_485

// ErrTooManyPixels is returned before decoding when the declared dimensions
// exceed Options.MaxPixels.
var ErrTooManyPixels = errors.New("image dimensions exceed pixel limit")

type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
	// MaxPixels caps width*height of the source image. Zero disables the check.
	MaxPixels int64
}

func DefaultOptions() Options {
	return Options{MaxWidth: 1200, MaxHeight: 1200, Quality: 75, MaxPixels: DefaultMaxPixels}
}

type Result struct {
	Data            []byte
	Format          string
	Width           int
	Height          int
	OriginalBytes   int
	CompressedBytes int
}

// Compress decodes a JPEG, PNG or WebP image, flattens it onto an opaque RGB
// canvas, shrinks it to fit the bounding box and re-encodes it as JPEG.
// Images already inside the box keep their dimensions.
func Compress(data []byte, opts Options) (*Result, error) {
	if opts.MaxWidth <= 0 || opts.MaxHeight <= 0 {
		return nil, fmt.Errorf("invalid bounding box %dx%d", opts.MaxWidth, opts.MaxHeight)
	}
	if opts.Quality < 1 || opts.Quality > 100 {
		return nil, fmt.Errorf("invalid jpeg quality %d", opts.Quality)
	}
	if opts.MaxPixels < 0 {
		return nil, fmt.Errorf("invalid pixel limit %d", opts.MaxPixels)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("failed to decode image: empty dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if opts.MaxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > opts.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrTooManyPixels, cfg.Width, cfg.Height, opts.MaxPixels)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// scale straight from the source so only the output size is allocated twice
	bounds := src.Bounds()
	width, height := FitWithin(bounds.Dx(), bounds.Dy(), opts.MaxWidth, opts.MaxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if width != bounds.Dx() || height != bounds.Dy() {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	} else {
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	return &Result{
		Data:            buf.Bytes(),
		Format:          format,
		Width:           width,
		Height:          height,
		OriginalBytes:   len(data),
		CompressedBytes: buf.Len(),
	}, nil
}

// FitWithin scales w x h down, keeping the aspect ratio, until it fits maxW x maxH.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}

	ratio := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := clamp(int(math.Round(float64(w)*ratio)), 1, maxW)
	nh := clamp(int(math.Round(float64(h)*ratio)), 1, maxH)
	return nw, nh
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
