package platform

// Package platform contains OS/platform integration: standard media
// directories, base64 file persistence, media scanner notification, storage
// permission probing and OS open/reveal.
