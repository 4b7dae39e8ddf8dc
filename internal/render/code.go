package render

import (
	"encoding/base64"
	"errors"
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// Size limits for rendered codes in pixels
const (
	MinSize = 21
	MaxSize = 4096
)

// RecoveryLevel is the error correction used for every code
const RecoveryLevel = qrcode.Medium

// ErrEmptyContent is returned when asked to encode an empty string
var ErrEmptyContent = errors.New("content cannot be empty")

// Code is a rendered QR code of fixed pixel size
type Code struct {
	content string
	size    int
	qr      *qrcode.QRCode
}

// New encodes content into a QR code rendered at size x size pixels
func New(content string, size int) (*Code, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("invalid size %d: must be between %d and %d", size, MinSize, MaxSize)
	}

	qr, err := qrcode.New(content, RecoveryLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return &Code{content: content, size: size, qr: qr}, nil
}

// Content returns the encoded text
func (c *Code) Content() string {
	return c.content
}

// Size returns the edge length in pixels
func (c *Code) Size() int {
	return c.size
}

// Image returns the code as an image for on-screen display
func (c *Code) Image() image.Image {
	return c.qr.Image(c.size)
}

// PNG returns the code encoded as PNG
func (c *Code) PNG() ([]byte, error) {
	return c.qr.PNG(c.size)
}

// Base64 returns the PNG encoding as standard base64 without a data URL prefix
func (c *Code) Base64() (string, error) {
	png, err := c.PNG()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
