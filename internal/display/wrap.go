package display

import (
	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth for terminal delivery.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}
