package imagepkg

import (
	"bytes"
	"image"
	"image/png"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 400
	MaxQRSize     = 2048
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text. Sizes
// outside 1..MaxQRSize fall back to DefaultQRSize.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	if size <= 0 || size > MaxQRSize {
		size = DefaultQRSize
	}
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, errors.Wrap(err, "qr encode")
	}
	return pngBytes, nil
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	return img, errors.Wrap(err, "qr decode")
}
