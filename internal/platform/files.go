package platform

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ytget/qr-gallery/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand      = "open"
	XDGOpenCommand   = "xdg-open"
	CmdCommand       = "cmd"
	StartCommand     = "start"
	AndroidAMCommand = "am"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// Android storage locations and intents
const (
	AndroidPicturesDir     = "/sdcard/Pictures"
	AndroidMediaScanIntent = "android.intent.action.MEDIA_SCANNER_SCAN_FILE"
	AndroidViewIntent      = "android.intent.action.VIEW"
	PNGMimeType            = "image/png"
)

// DataURLSeparator ends the header of a data URL ("data:image/png;base64,")
const DataURLSeparator = ";base64,"

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetPicturesDir returns the directory the system gallery indexes
func GetPicturesDir() (string, error) {
	if IsAndroid() {
		// External storage Pictures is picked up by the Gallery app
		return AndroidPicturesDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Pictures"), nil
}

// DecodeBase64Payload decodes a base64 payload, accepting an optional data
// URL header and surrounding whitespace.
func DecodeBase64Payload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if idx := strings.Index(payload, DataURLSeparator); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+len(DataURLSeparator):]
	}
	if payload == "" {
		return nil, errors.New("payload is empty")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return data, nil
}

// WriteBase64File decodes payload and writes it to filePath, replacing any
// existing file. The parent directory is created when missing.
func WriteBase64File(filePath, payload string) error {
	data, err := DecodeBase64Payload(payload)
	if err != nil {
		return err
	}

	if err := CreateDirectoryIfNotExists(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filePath, err)
	}

	if err := os.WriteFile(filePath, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}

// CopyFile copies src to dst, replacing dst
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// MoveFile renames src to dst, copying across filesystems when rename fails
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	// Rename fails between mount points (app storage vs. /sdcard)
	if err := CopyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove %s after copy: %w", src, err)
	}
	return nil
}

// OpenAsset opens a gallery asset with the default system application
func OpenAsset(asset *model.Asset) error {
	if asset == nil || asset.Path == "" {
		return fmt.Errorf("asset path is empty")
	}

	if _, err := os.Stat(asset.Path); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	if IsAndroid() {
		return openURIAndroid(asset.URI())
	}

	absPath, err := filepath.Abs(asset.Path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openURIAndroid opens an image URI with the gallery or any viewer
func openURIAndroid(uri string) error {
	attempts := [][]string{
		{"start", "-n", "com.android.gallery3d/.app.GalleryActivity", "-d", uri},
		{"start", "-a", AndroidViewIntent, "-d", uri, "-t", PNGMimeType},
		{"start", "-a", AndroidViewIntent, "-d", uri, "-t", "image/*"},
		{"start", "-a", AndroidViewIntent, "-d", uri},
	}

	for _, args := range attempts {
		if err := exec.Command(AndroidAMCommand, args...).Run(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to open %s with any method: no suitable app found", uri)
}

// NotifyMediaScanner notifies the Android media scanner about a new file so
// that it shows up in the Gallery app. It is a no-op on other platforms.
func NotifyMediaScanner(filePath string) error {
	if !IsAndroid() {
		return nil
	}

	cmd := exec.Command(AndroidAMCommand, "broadcast", "-a", AndroidMediaScanIntent, "-d", "file://"+filePath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to notify media scanner about %s: %w", filePath, err)
	}

	// Reap in the background; the broadcast result does not affect the export
	go func() { _ = cmd.Wait() }()

	return nil
}
