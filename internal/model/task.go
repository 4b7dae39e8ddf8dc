package model

import (
	"path/filepath"
	"time"
)

// ExportTask records a single run of the export pipeline
type ExportTask struct {
	ID         string
	Text       string // text encoded into the exported code
	Status     ExportStatus
	FilePath   string // temporary PNG written before gallery registration
	Asset      *Asset // gallery asset, set once registration succeeded
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the export ran, or zero while it is still running
func (et *ExportTask) Duration() time.Duration {
	if et.FinishedAt.IsZero() || et.StartedAt.IsZero() {
		return 0
	}
	return et.FinishedAt.Sub(et.StartedAt)
}

// Asset is a media file registered with the gallery
type Asset struct {
	ID        string
	Filename  string
	Path      string // absolute location of the media file
	AlbumName string // empty until the asset is placed in an album
	Size      int64
	CreatedAt time.Time
}

// URI returns the file URI of the asset
func (a *Asset) URI() string {
	return "file://" + filepath.ToSlash(a.Path)
}

// Album is a named collection of gallery assets
type Album struct {
	ID         string
	Title      string
	Path       string
	AssetCount int
}
