// Package imaging normaliza logos enviados pelos usuários para WebP.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxLogoBytes = 5 << 20
	// limite de pixels antes de decodificar: arquivos pequenos podem
	// declarar dimensões enormes
	MaxLogoPixels = 25_000_000
	MaxLogoSide   = 512
	LogoQuality   = 85

	ContentTypeWebP = "image/webp"
)

var (
	ErrTooLarge          = errors.New("logo_too_large")
	ErrUnsupportedFormat = errors.New("unsupported_image_format")
)

var allowedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// NormalizeLogo decodifica jpeg/png/webp, reduz para caber em
// MaxLogoSide x MaxLogoSide mantendo a proporção e recodifica em WebP.
func NormalizeLogo(raw []byte) ([]byte, error) {
	if len(raw) > MaxLogoBytes {
		return nil, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || !allowedFormats[format] {
		return nil, ErrUnsupportedFormat
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrUnsupportedFormat
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxLogoPixels {
		return nil, ErrTooLarge
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil || !allowedFormats[format] {
		return nil, ErrUnsupportedFormat
	}

	img := fit(src, MaxLogoSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: LogoQuality}); err != nil {
		return nil, fmt.Errorf("encoding webp: %w", err)
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, limit int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= limit && h <= limit {
		return src
	}

	if w >= h {
		h = h * limit / w
		w = limit
	} else {
		w = w * limit / h
		h = limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
