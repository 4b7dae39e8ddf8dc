package ui

// Package ui contains the Fyne-based user interface of the application. It
// binds the text entry to the QR preview, mounts the preview as the export
// pipeline's renderer and shows export notices as dialogs. All UI strings are
// localized via Localization.
