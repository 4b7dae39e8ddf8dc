package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ytget/qr-gallery/internal/export"
	"github.com/ytget/qr-gallery/internal/gallery"
	"github.com/ytget/qr-gallery/internal/logger"
	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/platform"
	"github.com/ytget/qr-gallery/internal/render"
	"github.com/ytget/qr-gallery/internal/ui"
)

func main() {
	// Command line flags
	var (
		textFlag     = flag.String("text", "", "Text to encode (defaults to the first argument)")
		sizeFlag     = flag.Int("size", model.DefaultDisplaySize, "Image size in pixels")
		galleryFlag  = flag.String("gallery", "", "Gallery directory (defaults to the pictures directory)")
		albumFlag    = flag.String("album", model.DefaultAlbumName, "Album receiving the QR code")
		documentsDir = flag.String("documents", filepath.Join(os.TempDir(), "qr-gallery"), "Directory for the temporary PNG")
		timeoutFlag  = flag.Duration("timeout", export.DefaultDataTimeout, "Time to wait for the encoded image")
		langFlag     = flag.String("lang", "en", "Language of the printed notices (en, de)")
		yesFlag      = flag.Bool("yes", false, "Grant gallery access without asking")
		listFlag     = flag.Bool("list", false, "List gallery albums and their QR codes, then exit")
	)

	flag.Parse()

	text := *textFlag
	if text == "" && flag.NArg() > 0 {
		text = flag.Arg(0)
	}

	state := model.NewDisplayState(model.DefaultDisplaySize)
	state.SetSize(*sizeFlag)
	state.SetText(text)

	log := logger.NewConsole(logger.LevelFromEnv())

	galleryDir := *galleryFlag
	if galleryDir == "" {
		dir, err := platform.GetPicturesDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error locating pictures directory: %v\n", err)
			os.Exit(1)
		}
		galleryDir = dir
	}

	library := gallery.NewLibrary(galleryDir, logger.Component(log, "gallery"))

	if *listFlag {
		if err := listGallery(os.Stdout, library); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing gallery: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := platform.CreateDirectoryIfNotExists(*documentsDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *documentsDir, err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	localization := ui.NewLocalization()
	localization.SetLanguage(*langFlag)

	permission := newTerminalPermission(os.Stdin, os.Stdout, galleryDir, *yesFlag, platform.NewStoragePermission(galleryDir))
	notifier := newPrintNotifier(os.Stdout, os.Stderr, localization)

	svc := export.NewService(
		permission,
		export.FileWriterFunc(platform.WriteBase64File),
		library,
		notifier,
		export.Options{
			DocumentsDir: *documentsDir,
			FileName:     model.DefaultExportFileName,
			AlbumName:    *albumFlag,
			DataTimeout:  *timeoutFlag,
		},
		logger.Component(log, "export"),
	)

	svc.SetSource(render.NewHandle(func() (string, int) {
		return state.Text(), state.Size()
	}))

	task, err := svc.Export(ctx)
	log.Debug().Str("export", task.ID).Dur("duration", task.Duration()).Msg("export finished")
	os.Exit(exitCode(err))
}

// exitCode maps the export outcome to the process status
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case export.IsUserError(err):
		return 2
	default:
		return 1
	}
}
