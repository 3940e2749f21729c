package render

import (
	"errors"
	"testing"

	"github.com/tsawler/verso/engine"
)

func TestToRGBAChannelSwapAndFlip(t *testing.T) {
	// 2x2 pixmap, 3 channels, BGR. Top row: blue, green. Bottom row:
	// red, white.
	px := &engine.Pixmap{
		Width:    2,
		Height:   2,
		Channels: 3,
		Samples: []byte{
			0xFF, 0x00, 0x00, 0x00, 0xFF, 0x00,
			0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF,
		},
	}

	img, err := ToRGBA(px)
	if err != nil {
		t.Fatalf("ToRGBA failed: %v", err)
	}

	// Rows are flipped: the pixmap's bottom row lands on top.
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0xFF || g>>8 != 0 || b>>8 != 0 || a>>8 != 0xFF {
		t.Errorf("(0,0) = %v,%v,%v,%v, want opaque red", r>>8, g>>8, b>>8, a>>8)
	}

	r, g, b, _ = img.At(0, 1).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 0xFF {
		t.Errorf("(0,1) = %v,%v,%v, want blue", r>>8, g>>8, b>>8)
	}

	r, g, b, _ = img.At(1, 1).RGBA()
	if r>>8 != 0 || g>>8 != 0xFF || b>>8 != 0 {
		t.Errorf("(1,1) = %v,%v,%v, want green", r>>8, g>>8, b>>8)
	}
}

func TestToRGBAFourChannels(t *testing.T) {
	px := &engine.Pixmap{
		Width:    1,
		Height:   1,
		Channels: 4,
		Samples:  []byte{0x10, 0x20, 0x30, 0xFF},
	}

	img, err := ToRGBA(px)
	if err != nil {
		t.Fatalf("ToRGBA failed: %v", err)
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 0x30 || g>>8 != 0x20 || b>>8 != 0x10 {
		t.Errorf("pixel = %v,%v,%v", r>>8, g>>8, b>>8)
	}
}

func TestToRGBAShortBuffer(t *testing.T) {
	px := &engine.Pixmap{Width: 4, Height: 4, Channels: 3, Samples: []byte{1, 2, 3}}

	if _, err := ToRGBA(px); !errors.Is(err, ErrBadPixmap) {
		t.Errorf("expected ErrBadPixmap, got %v", err)
	}
}

func TestToRGBANil(t *testing.T) {
	if _, err := ToRGBA(nil); err == nil {
		t.Error("expected error for nil pixmap")
	}
}

func TestScale(t *testing.T) {
	px := &engine.Pixmap{
		Width:    2,
		Height:   2,
		Channels: 3,
		Samples:  make([]byte, 12),
	}
	img, err := ToRGBA(px)
	if err != nil {
		t.Fatalf("ToRGBA failed: %v", err)
	}

	scaled, err := Scale(img, 4, 8)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}

	if scaled.Bounds().Dx() != 4 || scaled.Bounds().Dy() != 8 {
		t.Errorf("scaled size = %v", scaled.Bounds())
	}

	if _, err := Scale(img, 0, 8); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestThumbnailAspectRatio(t *testing.T) {
	px := &engine.Pixmap{
		Width:    4,
		Height:   2,
		Channels: 3,
		Samples:  make([]byte, 24),
	}
	img, err := ToRGBA(px)
	if err != nil {
		t.Fatalf("ToRGBA failed: %v", err)
	}

	thumb, err := Thumbnail(img, 100)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	if thumb.Bounds().Dx() != 100 || thumb.Bounds().Dy() != 50 {
		t.Errorf("thumbnail size = %v, want 100x50", thumb.Bounds())
	}
}
