package render

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// silentSource never invokes its callback
type silentSource struct{}

func (silentSource) ToDataURL(func(string)) {}

// chattySource invokes its callback more than once
type chattySource struct{ calls int32 }

func (s *chattySource) ToDataURL(callback func(string)) {
	for i := 0; i < 3; i++ {
		atomic.AddInt32(&s.calls, 1)
		callback("payload")
	}
}

func TestHandle_ToDataURL(t *testing.T) {
	handle := NewHandle(func() (string, int) { return "Hello World!", 128 })

	done := make(chan string, 1)
	handle.ToDataURL(func(data string) { done <- data })

	select {
	case data := <-done:
		if data == "" {
			t.Fatalf("Expected image data, got empty string (err: %v)", handle.Err())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Callback was never invoked")
	}

	if handle.Err() != nil {
		t.Errorf("Expected no error, got %v", handle.Err())
	}
}

func TestHandle_ToDataURL_EncodeFailure(t *testing.T) {
	handle := NewHandle(func() (string, int) { return "Hello World!", 0 })

	done := make(chan string, 1)
	handle.ToDataURL(func(data string) { done <- data })

	if data := <-done; data != "" {
		t.Errorf("Expected empty data on failure, got %d bytes", len(data))
	}
	if handle.Err() == nil {
		t.Error("Expected encode error to be recorded")
	}
}

func TestHandle_RendersContentAtRequestTime(t *testing.T) {
	content := "first"
	handle := NewHandle(func() (string, int) { return content, 128 })

	content = "second"
	code, err := handle.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if code.Content() != "second" {
		t.Errorf("Expected current content 'second', got %q", code.Content())
	}
}

func TestAwait(t *testing.T) {
	handle := NewHandle(func() (string, int) { return "https://example.com", 128 })

	data, err := Await(context.Background(), handle, 5*time.Second)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if data == "" {
		t.Error("Expected image data")
	}
}

func TestAwait_Timeout(t *testing.T) {
	start := time.Now()
	_, err := Await(context.Background(), silentSource{}, 50*time.Millisecond)

	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Expected ErrTimeout, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("Await should return shortly after the timeout")
	}
}

func TestAwait_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Await(ctx, silentSource{}, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestAwait_EmptyPayload(t *testing.T) {
	handle := NewHandle(func() (string, int) { return "", 128 })

	_, err := Await(context.Background(), handle, time.Second)
	if !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("Expected ErrEmptyPayload, got %v", err)
	}
}

func TestAwait_ExtraCallbacksIgnored(t *testing.T) {
	src := &chattySource{}

	data, err := Await(context.Background(), src, time.Second)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if data != "payload" {
		t.Errorf("Expected first payload, got %q", data)
	}
	if atomic.LoadInt32(&src.calls) != 3 {
		t.Errorf("Source should not block on repeated callbacks, made %d calls", src.calls)
	}
}

func TestHandle_FreezeKeepsContent(t *testing.T) {
	text := "before"
	handle := NewHandle(func() (string, int) { return text, 128 })

	frozen := handle.Freeze()
	text = "after"

	if got := frozen.(*Handle).Text(); got != "before" {
		t.Errorf("Frozen handle should keep 'before', got %q", got)
	}
	if handle.Text() != "after" {
		t.Errorf("Original handle should follow its content, got %q", handle.Text())
	}

	data, err := Await(context.Background(), frozen, 5*time.Second)
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}

	code, err := New("before", 128)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	expected, err := code.Base64()
	if err != nil {
		t.Fatalf("Base64 failed: %v", err)
	}
	if data != expected {
		t.Error("Frozen handle should encode the content captured at Freeze")
	}
}
