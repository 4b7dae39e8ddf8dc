package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/qr-gallery/internal/config"
	"github.com/ytget/qr-gallery/internal/export"
	"github.com/ytget/qr-gallery/internal/model"
)

// PromptPermission asks the user for media library access until it is
// granted and remembers the answer. Once granted, requests are answered by
// next.
type PromptPermission struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	next         export.PermissionAuthority

	// ask shows the question and reports the answer through callback
	ask func(title, message string, callback func(bool))
}

// NewPromptPermission creates a prompting authority; next may be nil
func NewPromptPermission(window fyne.Window, settings *config.Settings, localization *Localization, next export.PermissionAuthority) *PromptPermission {
	p := &PromptPermission{
		window:       window,
		settings:     settings,
		localization: localization,
		next:         next,
	}
	p.ask = p.showPrompt
	return p
}

// Request implements export.PermissionAuthority. It blocks until the user
// answers or ctx is done, so it must not run on the UI goroutine.
func (p *PromptPermission) Request(ctx context.Context) (model.PermissionStatus, error) {
	status := p.settings.GetMediaPermission()

	if !status.Granted() {
		answer := make(chan bool, 1)
		p.ask(p.localization.GetText(KeyPermissionTitle), p.localization.GetText(KeyPermissionPrompt), func(allowed bool) {
			answer <- allowed
		})

		select {
		case allowed := <-answer:
			status = model.PermissionDenied
			if allowed {
				status = model.PermissionGranted
			}
			p.settings.SetMediaPermission(status)
		case <-ctx.Done():
			return model.PermissionUndetermined, ctx.Err()
		}
	}

	if !status.Granted() || p.next == nil {
		return status, nil
	}
	return p.next.Request(ctx)
}

func (p *PromptPermission) showPrompt(title, message string, callback func(bool)) {
	fyne.Do(func() {
		d := dialog.NewConfirm(title, message, callback, p.window)
		d.SetConfirmText(p.localization.GetText(KeyPermissionAllow))
		d.SetDismissText(p.localization.GetText(KeyPermissionDontAllow))
		d.Show()
	})
}
