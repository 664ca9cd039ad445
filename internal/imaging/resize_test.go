package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestFitWithin(t *testing.T) {
	cases := []struct {
		w, h, max      int
		wantW, wantH   int
	}{
		{100, 50, 200, 100, 50},    // already fits, untouched
		{2000, 1000, 1000, 1000, 500}, // landscape shrink
		{1000, 2000, 1000, 500, 1000}, // portrait shrink
		{3000, 3000, 1280, 1280, 1280},
		{5000, 1, 100, 100, 1}, // degenerate aspect never hits zero
	}
	for _, c := range cases {
		gw, gh := FitWithin(c.w, c.h, c.max)
		if gw != c.wantW || gh != c.wantH {
			t.Fatalf("FitWithin(%d,%d,%d) = (%d,%d), want (%d,%d)",
				c.w, c.h, c.max, gw, gh, c.wantW, c.wantH)
		}
	}
}

func TestProcess_DownscalesOversized(t *testing.T) {
	raw := encodeJPEG(t, 2000, 1000)
	p, err := Process(raw, 500)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p.Width != 500 || p.Height != 250 {
		t.Fatalf("dims = %dx%d, want 500x250", p.Width, p.Height)
	}
	if p.MimeType != "image/jpeg" {
		t.Fatalf("mime = %q, want image/jpeg", p.MimeType)
	}
	// output must decode back to the reported dimensions
	img, _, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 500 || img.Bounds().Dy() != 250 {
		t.Fatalf("decoded dims = %v", img.Bounds())
	}
}

func TestProcess_NeverUpscales(t *testing.T) {
	raw := encodeJPEG(t, 100, 80)
	p, err := Process(raw, 1280)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p.Width != 100 || p.Height != 80 {
		t.Fatalf("dims = %dx%d, want 100x80", p.Width, p.Height)
	}
}

func TestProcess_PNGStaysPNG(t *testing.T) {
	raw := encodePNG(t, 300, 300)
	p, err := Process(raw, 1280)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p.MimeType != "image/png" {
		t.Fatalf("mime = %q, want image/png", p.MimeType)
	}
	if _, format, err := image.Decode(bytes.NewReader(p.Data)); err != nil || format != "png" {
		t.Fatalf("output not png (format=%q err=%v)", format, err)
	}
}

func TestProcess_RejectsGarbage(t *testing.T) {
	if _, err := Process([]byte("not an image"), 1280); err == nil {
		t.Fatal("expected decode error, got nil")
	}
}
