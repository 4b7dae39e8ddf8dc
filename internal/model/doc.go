package model

// Package model defines domain data structures used across the app: the
// display state bound to the QR preview, export task records, gallery assets
// and albums, and the status enums driving explicit state transitions.
