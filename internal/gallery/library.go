package gallery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/platform"
)

// AssetPrefix starts the file name of every asset created by the library
const AssetPrefix = "QR_"

var (
	// ErrInvalidAlbumName is returned for empty names or names containing path separators
	ErrInvalidAlbumName = errors.New("invalid album name")

	// ErrAssetMissing is returned when the asset file no longer exists
	ErrAssetMissing = errors.New("asset file missing")
)

// Library stores assets below a root directory indexed by the system gallery
type Library struct {
	root string
	log  zerolog.Logger

	mu sync.Mutex
	// notify is swapped in tests
	notify func(path string) error
}

// NewLibrary creates a library rooted at root
func NewLibrary(root string, log zerolog.Logger) *Library {
	return &Library{
		root:   root,
		log:    log,
		notify: platform.NotifyMediaScanner,
	}
}

// Root returns the library directory
func (l *Library) Root() string {
	return l.root
}

// CreateAsset copies the file at filePath into the library under a new
// unique name and returns the asset record.
func (l *Library) CreateAsset(ctx context.Context, filePath string) (*model.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("source is a directory: %s", filePath)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := platform.CreateDirectoryIfNotExists(l.root); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}

	id := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == "" {
		ext = ".png"
	}
	filename := AssetPrefix + id + ext
	dst := filepath.Join(l.root, filename)

	if err := platform.CopyFile(filePath, dst); err != nil {
		return nil, err
	}

	asset := &model.Asset{
		ID:        id,
		Filename:  filename,
		Path:      dst,
		Size:      info.Size(),
		CreatedAt: time.Now(),
	}

	l.scan(dst)
	l.log.Debug().Str("asset", asset.ID).Str("path", dst).Msg("asset created")

	return asset, nil
}

// CreateAlbum places asset into the album named title, creating the album
// when no album with that title exists. With copyAsset false the asset is
// moved out of its current location, otherwise a copy is placed in the album.
func (l *Library) CreateAlbum(ctx context.Context, title string, asset *model.Asset, copyAsset bool) (*model.Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateAlbumName(title); err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, errors.New("asset is nil")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	albumDir := filepath.Join(l.root, title)
	created := false
	if _, err := os.Stat(albumDir); os.IsNotExist(err) {
		created = true
	}
	if err := platform.CreateDirectoryIfNotExists(albumDir); err != nil {
		return nil, fmt.Errorf("failed to create album %q: %w", title, err)
	}

	if _, err := os.Stat(asset.Path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, asset.Path)
	}

	dst := filepath.Join(albumDir, asset.Filename)
	if dst != asset.Path {
		var err error
		if copyAsset {
			err = platform.CopyFile(asset.Path, dst)
		} else {
			err = platform.MoveFile(asset.Path, dst)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to add asset to album %q: %w", title, err)
		}
		asset.Path = dst
	}
	asset.AlbumName = title

	l.scan(dst)
	l.log.Debug().Str("album", title).Bool("created", created).Str("asset", asset.ID).Msg("asset added to album")

	return l.album(title)
}

// GetAlbum looks up an album by title
func (l *Library) GetAlbum(title string) (*model.Album, bool) {
	if validateAlbumName(title) != nil {
		return nil, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	album, err := l.album(title)
	if err != nil {
		return nil, false
	}
	return album, true
}

// Albums lists all albums sorted by title
func (l *Library) Albums() ([]*model.Album, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := os.ReadDir(l.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}

	var albums []*model.Album
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		album, err := l.album(entry.Name())
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}

	sort.Slice(albums, func(i, j int) bool { return albums[i].Title < albums[j].Title })
	return albums, nil
}

// Assets lists the asset files of an album, oldest first
func (l *Library) Assets(title string) ([]*model.Asset, error) {
	if err := validateAlbumName(title); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	albumDir := filepath.Join(l.root, title)
	entries, err := os.ReadDir(albumDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read album %q: %w", title, err)
	}

	var assets []*model.Asset
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), AssetPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		name := entry.Name()
		assets = append(assets, &model.Asset{
			ID:        strings.TrimSuffix(strings.TrimPrefix(name, AssetPrefix), filepath.Ext(name)),
			Filename:  name,
			Path:      filepath.Join(albumDir, name),
			AlbumName: title,
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.SliceStable(assets, func(i, j int) bool { return assets[i].CreatedAt.Before(assets[j].CreatedAt) })
	return assets, nil
}

// album builds the album record; callers hold l.mu
func (l *Library) album(title string) (*model.Album, error) {
	albumDir := filepath.Join(l.root, title)
	entries, err := os.ReadDir(albumDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read album %q: %w", title, err)
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), AssetPrefix) {
			count++
		}
	}

	return &model.Album{
		ID:         title,
		Title:      title,
		Path:       albumDir,
		AssetCount: count,
	}, nil
}

// scan tells the media scanner about path; failures only delay indexing
func (l *Library) scan(path string) {
	if l.notify == nil {
		return
	}
	if err := l.notify(path); err != nil {
		l.log.Warn().Err(err).Str("path", path).Msg("media scanner notification failed")
	}
}

func validateAlbumName(title string) error {
	if strings.TrimSpace(title) == "" || title == "." || title == ".." ||
		strings.ContainsAny(title, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidAlbumName, title)
	}
	return nil
}
