package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrTimeout is returned when the source did not deliver data in time
	ErrTimeout = errors.New("timed out waiting for image data")

	// ErrEmptyPayload is returned when the source delivered no data
	ErrEmptyPayload = errors.New("renderer returned empty image data")
)

// DataURLSource delivers base64 PNG data through a callback that is invoked
// exactly once per request.
type DataURLSource interface {
	ToDataURL(callback func(data string))
}

// Freezer is a source whose current content can be captured, so that later
// edits do not change what is encoded
type Freezer interface {
	Freeze() DataURLSource
}

// ContentFunc reports the text and size to render at request time
type ContentFunc func() (content string, size int)

// Handle is the mounted renderer. It renders whatever ContentFunc reports at
// the moment image data is requested.
type Handle struct {
	content ContentFunc

	mu      sync.Mutex
	lastErr error
}

// NewHandle creates a handle rendering the content reported by fn
func NewHandle(fn ContentFunc) *Handle {
	return &Handle{content: fn}
}

// Text returns the content that would be rendered now
func (h *Handle) Text() string {
	content, _ := h.content()
	return content
}

// Freeze returns a handle fixed to the content reported now
func (h *Handle) Freeze() DataURLSource {
	content, size := h.content()
	return NewHandle(func() (string, int) {
		return content, size
	})
}

// Render encodes the current content
func (h *Handle) Render() (*Code, error) {
	content, size := h.content()
	return New(content, size)
}

// ToDataURL renders the current content in the background and invokes
// callback once with the base64 PNG. On failure the callback receives an
// empty string and Err reports the cause.
func (h *Handle) ToDataURL(callback func(data string)) {
	content, size := h.content()

	go func() {
		data, err := encodeBase64(content, size)

		h.mu.Lock()
		h.lastErr = err
		h.mu.Unlock()

		callback(data)
	}()
}

// Err returns the error of the most recent ToDataURL request
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastErr
}

func encodeBase64(content string, size int) (string, error) {
	code, err := New(content, size)
	if err != nil {
		return "", err
	}
	return code.Base64()
}

// Await requests data from src and waits for the single callback. A positive
// timeout bounds the wait; ctx cancellation ends it early either way.
func Await(ctx context.Context, src DataURLSource, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// Buffered so a late callback never blocks the renderer
	result := make(chan string, 1)
	var once sync.Once
	src.ToDataURL(func(data string) {
		once.Do(func() { result <- data })
	})

	select {
	case data := <-result:
		if data == "" {
			if h, ok := src.(*Handle); ok && h.Err() != nil {
				return "", fmt.Errorf("%w: %v", ErrEmptyPayload, h.Err())
			}
			return "", ErrEmptyPayload
		}
		return data, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			if timeout > 0 {
				return "", fmt.Errorf("%w after %s", ErrTimeout, timeout)
			}
			return "", ErrTimeout
		}
		return "", ctx.Err()
	}
}
