package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/rs/zerolog"

	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/render"
)

// QRView previews the QR code for the current display state on a white card
type QRView struct {
	state  *model.DisplayState
	handle *render.Handle
	image  *canvas.Image
	card   *fyne.Container
	log    zerolog.Logger
}

// NewQRView creates the preview and renders the initial state
func NewQRView(state *model.DisplayState, log zerolog.Logger) *QRView {
	v := &QRView{
		state: state,
		log:   log,
	}
	v.handle = render.NewHandle(func() (string, int) {
		return state.Text(), state.Size()
	})

	v.image = canvas.NewImageFromImage(nil)
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScalePixels

	background := canvas.NewRectangle(ColorCodeCard)
	background.CornerRadius = CodeCardRadius
	v.card = container.NewStack(background, container.NewPadded(v.image))

	v.Refresh()
	return v
}

// Handle returns the renderer handle to mount in the export pipeline
func (v *QRView) Handle() *render.Handle {
	return v.handle
}

// CanvasObject returns the widget tree of the preview
func (v *QRView) CanvasObject() fyne.CanvasObject {
	return v.card
}

// Refresh re-renders the code. On failure the previous image stays visible.
func (v *QRView) Refresh() error {
	code, err := v.handle.Render()
	if err != nil {
		v.log.Warn().Err(err).Int("length", len(v.state.Text())).Msg("Failed to render QR preview")
		return err
	}

	size := float32(code.Size())
	v.image.Image = code.Image()
	v.image.SetMinSize(fyne.NewSize(size, size))
	v.image.Refresh()
	return nil
}
