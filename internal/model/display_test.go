package model

import (
	"sync"
	"testing"
)

func TestResolveText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", FallbackText},
		{"https://example.com", "https://example.com"},
		{" ", " "},
		{"Hello World!", "Hello World!"},
		{"line one\nline two", "line one\nline two"},
		{"Grüße 🚀", "Grüße 🚀"},
	}

	for _, test := range tests {
		if got := ResolveText(test.input); got != test.expected {
			t.Errorf("ResolveText(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestNewDisplayState(t *testing.T) {
	state := NewDisplayState(0)

	if state.Text() != FallbackText {
		t.Errorf("Expected initial text %q, got %q", FallbackText, state.Text())
	}

	if state.Size() != DefaultDisplaySize {
		t.Errorf("Expected default size %d, got %d", DefaultDisplaySize, state.Size())
	}

	if NewDisplayState(256).Size() != 256 {
		t.Error("Expected explicit size to be kept")
	}
}

func TestDisplayState_SetText(t *testing.T) {
	state := NewDisplayState(DefaultDisplaySize)

	if got := state.SetText("https://example.com"); got != "https://example.com" {
		t.Errorf("SetText returned %q", got)
	}
	if state.Text() != "https://example.com" {
		t.Errorf("Expected text to be stored verbatim, got %q", state.Text())
	}

	// Clearing the field falls back instead of leaving the code empty
	state.SetText("")
	if state.Text() != FallbackText {
		t.Errorf("Expected fallback text after empty input, got %q", state.Text())
	}
}

func TestDisplayState_SetSize(t *testing.T) {
	state := NewDisplayState(DefaultDisplaySize)

	state.SetSize(512)
	if state.Size() != 512 {
		t.Errorf("Expected size 512, got %d", state.Size())
	}

	state.SetSize(-1)
	if state.Size() != 512 {
		t.Errorf("Negative size should be ignored, got %d", state.Size())
	}
}

func TestDisplayState_ConcurrentAccess(t *testing.T) {
	state := NewDisplayState(DefaultDisplaySize)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			state.SetText("")
		}()
		go func() {
			defer wg.Done()
			if state.Text() == "" {
				t.Error("Text must never be empty")
			}
		}()
	}
	wg.Wait()
}
