package ui

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Layout sizing
const (
	// White card behind the QR code
	CodeCardRadius float32 = 8

	// Bottom toolbar
	ToolbarHeight float32 = 48

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)
