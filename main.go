package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/qr-gallery/internal/config"
	"github.com/ytget/qr-gallery/internal/export"
	"github.com/ytget/qr-gallery/internal/gallery"
	"github.com/ytget/qr-gallery/internal/logger"
	"github.com/ytget/qr-gallery/internal/platform"
	"github.com/ytget/qr-gallery/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.qr-gallery"
	AppName = "QR Gallery"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	log := logger.NewConsole(logger.LevelFromEnv())
	log.Info().Str("version", version).Msg("QR Gallery starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	documentsDir := settings.GetDocumentsDirectory()
	if err := platform.CreateDirectoryIfNotExists(documentsDir); err != nil {
		log.Warn().Err(err).Str("dir", documentsDir).Msg("failed to ensure documents dir")
	}
	galleryDir := settings.GetGalleryDirectory()

	// Initialize services
	library := gallery.NewLibrary(galleryDir, logger.Component(log, "gallery"))
	permission := ui.NewPromptPermission(myWindow, settings, localization, platform.NewStoragePermission(galleryDir))
	notifier := ui.NewDialogNotifier(myWindow, localization, logger.Component(log, "notifier"))

	exportSvc := export.NewService(
		permission,
		export.FileWriterFunc(platform.WriteBase64File),
		library,
		notifier,
		export.Options{
			DocumentsDir: documentsDir,
			FileName:     settings.GetExportFileName(),
			AlbumName:    settings.GetAlbumName(),
			DataTimeout:  settings.GetExportTimeout(),
		},
		logger.Component(log, "export"),
	)

	// Create and setup UI
	uiLog := logger.Component(log, "ui")
	ui.NewRootUI(myWindow, myApp, settings, localization, exportSvc, ui.NewCommandSlots(uiLog), uiLog)

	// Show and run
	myWindow.ShowAndRun()
}
