package export

import (
	"context"

	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/render"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetSource(src render.DataURLSource)
	Source() render.DataURLSource
	SetUpdateCallback(func(*model.ExportTask))
	Export(ctx context.Context) (*model.ExportTask, error)
}

// PermissionAuthority grants or denies write access to the media library
type PermissionAuthority interface {
	Request(ctx context.Context) (model.PermissionStatus, error)
}

// FileWriter persists a base64 payload at path, replacing existing files
type FileWriter interface {
	WriteBase64(path, payload string) error
}

// FileWriterFunc adapts a function to FileWriter
type FileWriterFunc func(path, payload string) error

// WriteBase64 calls f(path, payload)
func (f FileWriterFunc) WriteBase64(path, payload string) error {
	return f(path, payload)
}

// Gallery registers media files and groups them in albums
type Gallery interface {
	CreateAsset(ctx context.Context, filePath string) (*model.Asset, error)
	CreateAlbum(ctx context.Context, title string, asset *model.Asset, copyAsset bool) (*model.Album, error)
}

// Notice is the user-facing outcome of one export attempt
type Notice struct {
	Kind  model.NoticeKind
	Asset *model.Asset // set for NoticeSuccess
	Err   error        // cause, for diagnostics only
}

// Notifier shows notices to the user
type Notifier interface {
	Notify(notice Notice)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(notice Notice)

// Notify calls f(notice)
func (f NotifierFunc) Notify(notice Notice) {
	f(notice)
}
