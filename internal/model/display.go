package model

import "sync"

// FallbackText is encoded whenever the input field is empty
const FallbackText = "Hello World!"

// DefaultDisplaySize is the edge length of the rendered code in pixels
const DefaultDisplaySize = 128

// DisplayState holds the text and size currently shown by the QR preview.
// The text is never empty: empty input is replaced with FallbackText.
type DisplayState struct {
	mu   sync.RWMutex
	text string
	size int
}

// NewDisplayState creates a display state showing FallbackText at the given size
func NewDisplayState(size int) *DisplayState {
	if size <= 0 {
		size = DefaultDisplaySize
	}
	return &DisplayState{text: FallbackText, size: size}
}

// ResolveText returns the text to encode for the given input
func ResolveText(input string) string {
	if input == "" {
		return FallbackText
	}
	return input
}

// SetText stores the input verbatim, or FallbackText when it is empty.
// It returns the stored value.
func (ds *DisplayState) SetText(input string) string {
	text := ResolveText(input)

	ds.mu.Lock()
	ds.text = text
	ds.mu.Unlock()

	return text
}

// Text returns the string currently encoded into the code
func (ds *DisplayState) Text() string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.text
}

// Size returns the rendered code dimensions in pixels
func (ds *DisplayState) Size() int {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.size
}

// SetSize changes the rendered code dimensions; non-positive values are ignored
func (ds *DisplayState) SetSize(size int) {
	if size <= 0 {
		return
	}
	ds.mu.Lock()
	ds.size = size
	ds.mu.Unlock()
}

// Export defaults shared by configuration and the export pipeline
const (
	DefaultAlbumName      = "QR Codes"
	DefaultExportFileName = "qrcode.png"
)
