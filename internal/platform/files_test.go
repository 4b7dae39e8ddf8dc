package platform

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/qr-gallery/internal/model"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetPicturesDir(t *testing.T) {
	picturesDir, err := GetPicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}

	if picturesDir == "" {
		t.Fatal("Pictures directory is empty")
	}

	// Should end with "Pictures"
	if filepath.Base(picturesDir) != "Pictures" {
		t.Errorf("Expected directory to end with 'Pictures', got: %s", picturesDir)
	}
}

func TestDecodeBase64Payload(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"plain", encoded, false},
		{"data url", "data:image/png;base64," + encoded, false},
		{"whitespace", "\n" + encoded + " \n", false},
		{"empty", "", true},
		{"empty data url", "data:image/png;base64,", true},
		{"invalid", "not base64!", true},
	}

	for _, test := range tests {
		data, err := DecodeBase64Payload(test.payload)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got nil", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if string(data) != string(raw) {
			t.Errorf("%s: decoded bytes differ: %v", test.name, data)
		}
	}
}

func TestWriteBase64File_Overwrites(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "docs", "qrcode.png")

	first := base64.StdEncoding.EncodeToString([]byte("first export"))
	if err := WriteBase64File(target, first); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	second := base64.StdEncoding.EncodeToString([]byte("second"))
	if err := WriteBase64File(target, second); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(content) != "second" {
		t.Errorf("Expected file to be overwritten, got %q", content)
	}

	entries, _ := os.ReadDir(filepath.Dir(target))
	if len(entries) != 1 {
		t.Errorf("Expected exactly one file, got %d", len(entries))
	}
}

func TestWriteBase64File_InvalidPayload(t *testing.T) {
	target := filepath.Join(t.TempDir(), "qrcode.png")

	if err := WriteBase64File(target, "%%%"); err == nil {
		t.Fatal("Expected error for invalid payload")
	}

	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("No file should be written for an invalid payload")
	}
}

func TestMoveFile(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src.png")
	dst := filepath.Join(tempDir, "album", "dst.png")

	if err := os.WriteFile(src, []byte("png"), DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}
	if err := CreateDirectoryIfNotExists(filepath.Dir(dst)); err != nil {
		t.Fatalf("Failed to create album dir: %v", err)
	}

	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile failed: %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("Source should be gone after move")
	}
	content, err := os.ReadFile(dst)
	if err != nil || string(content) != "png" {
		t.Errorf("Destination content mismatch: %q, %v", content, err)
	}
}

func TestCopyFile(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src.png")
	dst := filepath.Join(tempDir, "dst.png")

	if err := os.WriteFile(src, []byte("png"), DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	if _, err := os.Stat(src); err != nil {
		t.Error("Source should be kept after copy")
	}
	if err := CopyFile(filepath.Join(tempDir, "missing.png"), dst); err == nil {
		t.Error("Expected error for missing source")
	}
}

func TestOpenAsset_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	asset := &model.Asset{ID: "missing", Path: filepath.Join(tempDir, "nonexistent.png")}

	err := OpenAsset(asset)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}

	if err := OpenAsset(&model.Asset{}); err == nil {
		t.Error("Expected error for empty path")
	}
	if err := OpenAsset(nil); err == nil {
		t.Error("Expected error for nil asset")
	}
}

func TestNotifyMediaScanner_Desktop(t *testing.T) {
	if IsAndroid() {
		t.Skip("media scanner is only a no-op off Android")
	}

	if err := NotifyMediaScanner("/tmp/qrcode.png"); err != nil {
		t.Errorf("Expected no-op on desktop, got %v", err)
	}
}
