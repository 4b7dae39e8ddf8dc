package export

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/qr-gallery/internal/gallery"
	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/platform"
	"github.com/ytget/qr-gallery/internal/render"
)

// newPipeline wires the service to the real filesystem components
func newPipeline(t *testing.T) (*Service, *model.DisplayState, *gallery.Library, string) {
	t.Helper()

	root := t.TempDir()
	docs := filepath.Join(root, "Documents")
	lib := gallery.NewLibrary(filepath.Join(root, "Pictures"), zerolog.Nop())

	state := model.NewDisplayState(model.DefaultDisplaySize)
	opts := DefaultOptions(docs)
	opts.DataTimeout = 5 * time.Second

	service := NewService(
		platform.NewStoragePermission(lib.Root()),
		FileWriterFunc(platform.WriteBase64File),
		lib,
		nil,
		opts,
		zerolog.Nop(),
	)
	service.SetSource(render.NewHandle(func() (string, int) { return state.Text(), state.Size() }))

	return service, state, lib, docs
}

func TestPipeline_EmptyInputExportsFallback(t *testing.T) {
	service, state, lib, docs := newPipeline(t)
	state.SetText("")

	task, err := service.Export(context.Background())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if task.Text != model.FallbackText {
		t.Errorf("Expected %q to be encoded, got %q", model.FallbackText, task.Text)
	}

	// Temp file holds a valid PNG
	raw, err := os.ReadFile(filepath.Join(docs, model.DefaultExportFileName))
	if err != nil {
		t.Fatalf("Expected temp file: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Temp file is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != model.DefaultDisplaySize {
		t.Errorf("Expected %dpx image, got %d", model.DefaultDisplaySize, img.Bounds().Dx())
	}

	album, ok := lib.GetAlbum(model.DefaultAlbumName)
	if !ok || album.AssetCount != 1 {
		t.Fatalf("Expected one asset in %q, got %+v", model.DefaultAlbumName, album)
	}
}

func TestPipeline_ExactInputIsEncoded(t *testing.T) {
	service, state, lib, _ := newPipeline(t)
	state.SetText("https://example.com")

	task, err := service.Export(context.Background())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if task.Text != "https://example.com" {
		t.Errorf("Expected exact input to be encoded, got %q", task.Text)
	}

	assets, err := lib.Assets(model.DefaultAlbumName)
	if err != nil {
		t.Fatalf("Assets failed: %v", err)
	}
	if len(assets) != 1 || assets[0].Path != task.Asset.Path {
		t.Errorf("Expected the exported asset in the album, got %v", assets)
	}
}

func TestPipeline_TempFileOverwrittenAssetsAccumulate(t *testing.T) {
	service, state, lib, docs := newPipeline(t)

	for _, text := range []string{"first", "second"} {
		state.SetText(text)
		if _, err := service.Export(context.Background()); err != nil {
			t.Fatalf("Export %q failed: %v", text, err)
		}
	}

	entries, err := os.ReadDir(docs)
	if err != nil {
		t.Fatalf("Failed to read documents dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != model.DefaultExportFileName {
		t.Errorf("Expected only %s in documents, got %d entries", model.DefaultExportFileName, len(entries))
	}

	album, ok := lib.GetAlbum(model.DefaultAlbumName)
	if !ok || album.AssetCount != 2 {
		t.Errorf("Expected two accumulated assets, got %+v", album)
	}
}
