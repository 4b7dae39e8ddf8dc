package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/qr-gallery/internal/config"
	"github.com/ytget/qr-gallery/internal/export"
	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/render"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	exportSvc    export.Exporter
	settings     *config.Settings
	localization *Localization
	commands     *CommandSlots
	mobile       *MobileUI
	log          zerolog.Logger

	state  *model.DisplayState
	qrView *QRView

	textEntry    *widget.Entry
	exportHeader *canvas.Text
	saveBtn      *widget.Button
	settingsBtn  *widget.Button
	infoBtn      *widget.Button

	// Export progress panel
	statusContainer *fyne.Container
	statusLabel     *widget.Label
	statusSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI and mounts the QR preview as
// the export renderer
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, localization *Localization, exportSvc export.Exporter, commands *CommandSlots, log zerolog.Logger) *RootUI {
	ui := &RootUI{
		window:       window,
		exportSvc:    exportSvc,
		settings:     settings,
		localization: localization,
		commands:     commands,
		mobile:       NewMobileUI(app),
		log:          log,
		state:        model.NewDisplayState(settings.GetDisplaySize()),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.qrView = NewQRView(ui.state, log)
	ui.exportSvc.SetSource(ui.qrView.Handle())
	ui.exportSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()

	log.Debug().Int("size", ui.state.Size()).Msg("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.textEntry = ui.mobile.CreateTextEntry(ui.localization.GetText(KeyEnterText))
	ui.textEntry.Validator = ui.validateText
	ui.textEntry.OnChanged = ui.onTextChanged

	ui.exportHeader = canvas.NewText(ui.localization.GetText(KeyExportHeader), theme.Color(theme.ColorNameForeground))
	ui.exportHeader.TextSize = theme.Size(theme.SizeNameHeadingText)
	ui.exportHeader.Alignment = fyne.TextAlignCenter

	ui.saveBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeySave), theme.DownloadIcon(), ui.onSaveClick)
	ui.saveBtn.Importance = widget.HighImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusSpinner = widget.NewProgressBarInfinite()
	ui.statusContainer = container.NewVBox(ui.statusSpinner, ui.statusLabel)
	ui.statusContainer.Hide()

	content := container.NewVBox(
		container.NewCenter(ui.qrView.CanvasObject()),
		ui.textEntry,
		ui.exportHeader,
		ui.saveBtn,
		ui.statusContainer,
	)

	padding := ui.mobile.GetMobilePadding()
	padded := container.New(&paddedLayout{padding: padding}, container.NewVScroll(content))

	ui.window.SetContent(container.NewBorder(nil, ui.createToolbar(), nil, nil, padded))
}

// createToolbar builds the bottom bar with the settings and info commands
func (ui *RootUI) createToolbar() fyne.CanvasObject {
	ui.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		ui.commands.Run(CommandSettings)
	})
	ui.settingsBtn.Importance = widget.LowImportance

	ui.infoBtn = widget.NewButtonWithIcon("", theme.InfoIcon(), func() {
		ui.commands.Run(CommandInfo)
	})
	ui.infoBtn.Importance = widget.LowImportance

	background := canvas.NewRectangle(ColorToolbar)
	background.SetMinSize(fyne.NewSize(0, ToolbarHeight))

	return container.NewStack(background, container.NewGridWithColumns(2, ui.settingsBtn, ui.infoBtn))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	saveItem := fyne.NewMenuItem(ui.localization.GetText(KeySave), ui.onSaveClick)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), saveItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.textEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterText))
	ui.exportHeader.Text = ui.localization.GetText(KeyExportHeader)
	ui.exportHeader.Refresh()
	ui.saveBtn.SetText(ui.localization.GetText(KeySave))
	ui.statusLabel.SetText(ui.localization.GetText(KeyExporting))
}

// onTextChanged stores the entered text and re-renders the preview
func (ui *RootUI) onTextChanged(text string) {
	ui.state.SetText(text)
	ui.qrView.Refresh()
}

// validateText rejects text that does not fit into a QR code
func (ui *RootUI) validateText(text string) error {
	if _, err := render.New(model.ResolveText(text), ui.state.Size()); err != nil {
		return errors.New(ui.localization.GetText(KeyTextTooLong))
	}
	return nil
}

// onSaveClick runs one export off the UI goroutine; it is ignored while an
// export started here is still running
func (ui *RootUI) onSaveClick() {
	if ui.saveBtn.Disabled() {
		return
	}
	ui.saveBtn.Disable()

	go func() {
		defer fyne.Do(ui.saveBtn.Enable)
		ui.exportSvc.Export(context.Background())
	}()
}

// onTaskUpdate shows the progress panel while an export is active
func (ui *RootUI) onTaskUpdate(task *model.ExportTask) {
	active := task.Status.IsActive()

	fyne.Do(func() {
		if !active {
			ui.statusContainer.Hide()
			return
		}
		ui.statusLabel.SetText(ui.localization.GetText(KeyExporting))
		ui.statusContainer.Show()
	})
}

// paddedLayout insets its single child by a fixed padding on every side
type paddedLayout struct {
	padding float32
}

func (l *paddedLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pos := fyne.NewPos(l.padding, l.padding)
	inner := size.SubtractWidthHeight(2*l.padding, 2*l.padding)
	for _, o := range objects {
		o.Move(pos)
		o.Resize(inner)
	}
}

func (l *paddedLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize.AddWidthHeight(2*l.padding, 2*l.padding)
}
