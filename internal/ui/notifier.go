package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/rs/zerolog"

	"github.com/ytget/qr-gallery/internal/export"
	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/platform"
)

// DialogNotifier shows export notices as modal dialogs on window
type DialogNotifier struct {
	window       fyne.Window
	localization *Localization
	log          zerolog.Logger

	// open shows a saved asset; nil hides the Open action
	open func(asset *model.Asset) error
	// show displays one notice; replaced in tests
	show func(title, message string, onOpen func())
}

// NewDialogNotifier creates a notifier bound to window
func NewDialogNotifier(window fyne.Window, localization *Localization, log zerolog.Logger) *DialogNotifier {
	n := &DialogNotifier{
		window:       window,
		localization: localization,
		log:          log,
		open:         platform.OpenAsset,
	}
	n.show = n.showDialog
	return n
}

// Notify implements export.Notifier. It may be called from any goroutine.
func (n *DialogNotifier) Notify(notice export.Notice) {
	title, message := n.localization.NoticeText(notice.Kind)

	var onOpen func()
	if asset := notice.Asset; asset != nil && n.open != nil && !notice.Kind.IsError() {
		onOpen = func() {
			if err := n.open(asset); err != nil {
				n.log.Warn().Err(err).Str("path", asset.Path).Msg("Failed to open saved QR code")
			}
		}
	}

	event := n.log.Debug()
	if notice.Kind.IsError() {
		event = n.log.Info().AnErr("cause", notice.Err)
	}
	event.Str("notice", notice.Kind.String()).Msg("showing notice")
	fyne.Do(func() {
		n.show(title, message, onOpen)
	})
}

func (n *DialogNotifier) showDialog(title, message string, onOpen func()) {
	if onOpen == nil {
		dialog.ShowInformation(title, message, n.window)
		return
	}

	d := dialog.NewConfirm(title, message, func(open bool) {
		if open {
			onOpen()
		}
	}, n.window)
	d.SetConfirmText(n.localization.GetText(KeyOpen))
	d.SetDismissText(n.localization.GetText(KeyOK))
	d.Show()
}
