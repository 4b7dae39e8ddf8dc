package logger

// Package logger configures the zerolog loggers shared by the app. The level
// can be overridden at runtime with the QR_GALLERY_LOG_LEVEL variable.
