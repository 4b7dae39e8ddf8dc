package config

import (
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyDisplaySize     = "display_size"
	KeyAlbumName       = "album_name"
	KeyExportFileName  = "export_file_name"
	KeyDocumentsDir    = "documents_directory"
	KeyGalleryDir      = "gallery_directory"
	KeyExportTimeout   = "export_timeout_seconds"
	KeyMediaPermission = "media_permission"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultDisplaySize   = model.DefaultDisplaySize
	DefaultAlbumName     = model.DefaultAlbumName
	DefaultFileName      = model.DefaultExportFileName
	DefaultExportTimeout = 10
)

// Limits
const (
	MinDisplaySize   = 64
	MaxDisplaySize   = 1024
	MinExportTimeout = 1
	MaxExportTimeout = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"de":     "Deutsch",
	}
}

// GetDisplaySize returns the rendered code size in pixels
func (s *Settings) GetDisplaySize() int {
	value := s.app.Preferences().Int(KeyDisplaySize)
	if value <= 0 {
		s.SetDisplaySize(DefaultDisplaySize)
		return DefaultDisplaySize
	}
	return value
}

// SetDisplaySize sets the rendered code size in pixels
func (s *Settings) SetDisplaySize(size int) {
	if size < MinDisplaySize {
		size = MinDisplaySize
	}
	if size > MaxDisplaySize {
		size = MaxDisplaySize
	}
	s.app.Preferences().SetInt(KeyDisplaySize, size)
}

// GetAlbumName returns the gallery album receiving exports
func (s *Settings) GetAlbumName() string {
	name := s.app.Preferences().String(KeyAlbumName)
	if name == "" {
		s.SetAlbumName(DefaultAlbumName)
		return DefaultAlbumName
	}
	return name
}

// SetAlbumName sets the gallery album name
func (s *Settings) SetAlbumName(name string) {
	if name == "" {
		name = DefaultAlbumName
	}
	s.app.Preferences().SetString(KeyAlbumName, name)
}

// GetExportFileName returns the name of the temporary export file
func (s *Settings) GetExportFileName() string {
	name := s.app.Preferences().String(KeyExportFileName)
	if name == "" {
		s.SetExportFileName(DefaultFileName)
		return DefaultFileName
	}
	return name
}

// SetExportFileName sets the name of the temporary export file
func (s *Settings) SetExportFileName(name string) {
	name = filepath.Base(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = DefaultFileName
	}
	s.app.Preferences().SetString(KeyExportFileName, name)
}

// GetDocumentsDirectory returns the directory receiving the temporary PNG.
// It defaults to the app's private storage unless the documents_directory
// preference is set.
func (s *Settings) GetDocumentsDirectory() string {
	dir := s.app.Preferences().String(KeyDocumentsDir)
	if dir != "" {
		return dir
	}

	if storage := s.app.Storage(); storage != nil {
		if root := storage.RootURI(); root != nil && root.Path() != "" {
			return root.Path()
		}
	}
	return filepath.Join(os.TempDir(), "qr-gallery")
}

// GetGalleryDirectory returns the media library root
func (s *Settings) GetGalleryDirectory() string {
	dir := s.app.Preferences().String(KeyGalleryDir)
	if dir == "" {
		// Use system default Pictures directory
		defaultDir, err := platform.GetPicturesDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), "Pictures")
		}
		s.SetGalleryDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetGalleryDirectory sets the media library root
func (s *Settings) SetGalleryDirectory(dir string) {
	s.app.Preferences().SetString(KeyGalleryDir, dir)
}

// GetExportTimeout returns how long an export waits for the rendered image
func (s *Settings) GetExportTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyExportTimeout)
	if value <= 0 {
		s.SetExportTimeout(DefaultExportTimeout)
		value = DefaultExportTimeout
	}
	return time.Duration(value) * time.Second
}

// SetExportTimeout sets the export wait in seconds
func (s *Settings) SetExportTimeout(seconds int) {
	if seconds < MinExportTimeout {
		seconds = MinExportTimeout
	}
	if seconds > MaxExportTimeout {
		seconds = MaxExportTimeout
	}
	s.app.Preferences().SetInt(KeyExportTimeout, seconds)
}

// GetMediaPermission returns the remembered answer to the media access prompt
func (s *Settings) GetMediaPermission() model.PermissionStatus {
	switch status := model.PermissionStatus(s.app.Preferences().String(KeyMediaPermission)); status {
	case model.PermissionGranted, model.PermissionDenied:
		return status
	default:
		return model.PermissionUndetermined
	}
}

// SetMediaPermission remembers the answer to the media access prompt
func (s *Settings) SetMediaPermission(status model.PermissionStatus) {
	s.app.Preferences().SetString(KeyMediaPermission, string(status))
}
