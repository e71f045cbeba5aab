// Package testutil provides shared fixtures for backend tests.
package testutil

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math/rand"
)

// MP3Bytes returns a payload of exactly n bytes that sniffs as audio/mpeg
// (MPEG frame sync in the first two bytes).
func MP3Bytes(n int) []byte {
	b := make([]byte, n)
	if n >= 2 {
		b[0] = 0xFF
		b[1] = 0xFB
	}
	return b
}

// WAVBytes returns a payload of exactly n bytes with a RIFF/WAVE header.
func WAVBytes(n int) []byte {
	b := make([]byte, n)
	copy(b, "RIFF")
	if n >= 12 {
		copy(b[8:], "WAVE")
	}
	return b
}

// NoisePNG encodes a deterministic random-noise image. Noise defeats PNG
// compression, so a few hundred pixels a side comfortably exceeds 1 MiB.
func NoisePNG(t interface {
	Helper()
	Fatalf(string, ...any)
}, w, h int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// DataURL wraps raw bytes into a base64 data URL with the given MIME label.
// The label is advisory only; the server sniffs the real type from the bytes.
func DataURL(mime string, content []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(content)
}
