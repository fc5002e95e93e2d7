package game

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("no clipboard backend available")

// writeClipboard puts text on the system clipboard. It fails on systems
// without a clipboard backend (e.g. Linux without xclip, xsel or wl-copy).
func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}
