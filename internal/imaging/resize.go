// Package imaging decodes uploaded damage photos, downscales them to a bounded
// dimension, and re-encodes them for storage.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"

	// register the webp decoder; jpeg and png register via the imports above
	_ "golang.org/x/image/webp"
)

const jpegQuality = 85

// Processed is the normalized output of Process.
type Processed struct {
	Data     []byte
	MimeType string
	Width    int
	Height   int
}

// Process decodes raw image bytes, scales the image down so both dimensions fit
// within maxDim (never upscales), and re-encodes it. PNG input stays PNG;
// everything else (JPEG, WebP) becomes JPEG.
func Process(raw []byte, maxDim int) (*Processed, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	w, h := FitWithin(b.Dx(), b.Dy(), maxDim)
	if w != b.Dx() || h != b.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
	}

	var out bytes.Buffer
	mime := "image/jpeg"
	if format == "png" {
		mime = "image/png"
		if err := png.Encode(&out, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	} else {
		if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
	}

	return &Processed{Data: out.Bytes(), MimeType: mime, Width: w, Height: h}, nil
}

// FitWithin shrinks (w, h) proportionally so both sides are <= max.
// Dimensions already within bounds are returned unchanged.
func FitWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		nh := h * max / w
		if nh < 1 {
			nh = 1
		}
		return max, nh
	}
	nw := w * max / h
	if nw < 1 {
		nw = 1
	}
	return nw, max
}
