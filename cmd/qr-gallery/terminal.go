package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ytget/qr-gallery/internal/export"
	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/ui"
)

// terminalPermission asks on the terminal before the gallery is written.
// A granted answer is confirmed by next.
type terminalPermission struct {
	in        *bufio.Reader
	out       io.Writer
	dir       string
	assumeYes bool
	next      export.PermissionAuthority
}

func newTerminalPermission(in io.Reader, out io.Writer, dir string, assumeYes bool, next export.PermissionAuthority) *terminalPermission {
	return &terminalPermission{
		in:        bufio.NewReader(in),
		out:       out,
		dir:       dir,
		assumeYes: assumeYes,
		next:      next,
	}
}

func (p *terminalPermission) Request(ctx context.Context) (model.PermissionStatus, error) {
	if !p.assumeYes {
		fmt.Fprintf(p.out, "Save QR code to %s? [y/N] ", p.dir)

		answer, err := p.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return model.PermissionUndetermined, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes", "j", "ja":
		default:
			return model.PermissionDenied, nil
		}
	}

	if p.next == nil {
		return model.PermissionGranted, nil
	}
	return p.next.Request(ctx)
}

// printNotifier writes notices as single lines; failures go to errOut
type printNotifier struct {
	out          io.Writer
	errOut       io.Writer
	localization *ui.Localization
}

func newPrintNotifier(out, errOut io.Writer, localization *ui.Localization) *printNotifier {
	return &printNotifier{out: out, errOut: errOut, localization: localization}
}

func (n *printNotifier) Notify(notice export.Notice) {
	title, message := n.localization.NoticeText(notice.Kind)

	if notice.Kind.IsError() {
		fmt.Fprintf(n.errOut, "%s: %s\n", title, message)
		return
	}

	fmt.Fprintf(n.out, "%s: %s\n", title, message)
	if notice.Asset != nil {
		fmt.Fprintf(n.out, "  %s\n", notice.Asset.URI())
	}
}

// galleryLister reads albums and the assets inside them
type galleryLister interface {
	Albums() ([]*model.Album, error)
	Assets(title string) ([]*model.Asset, error)
}

// listGallery prints every album with its assets, oldest first
func listGallery(out io.Writer, library galleryLister) error {
	albums, err := library.Albums()
	if err != nil {
		return err
	}

	for _, album := range albums {
		fmt.Fprintf(out, "%s (%d)\n", album.Title, album.AssetCount)

		assets, err := library.Assets(album.Title)
		if err != nil {
			return err
		}
		for _, asset := range assets {
			fmt.Fprintf(out, "  %s  %s\n", asset.CreatedAt.Format(time.DateTime), asset.URI())
		}
	}
	return nil
}
