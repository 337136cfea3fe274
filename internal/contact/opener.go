package contact

import (
	"io"

	"github.com/cli/browser"
)

// BrowserOpener opens URIs with the operating system's default handler.
type BrowserOpener struct{}

// NewBrowserOpener returns an opener whose helper-process output goes to w,
// keeping it off a terminal owned by the UI.
func NewBrowserOpener(w io.Writer) BrowserOpener {
	browser.Stdout = w
	browser.Stderr = w
	return BrowserOpener{}
}

func (BrowserOpener) Open(uri string) error {
	return browser.OpenURL(uri)
}
