package render

// Package render turns text into QR code images using go-qrcode and exposes
// the mounted code as a one-shot base64 PNG source for the export pipeline.
