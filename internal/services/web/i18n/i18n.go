// Package i18n holds the web copy catalog.
//
// Pages are served in Russian only; the catalog keeps copy out of markup so
// the text can be edited or translated in one place.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lang is the document language of every rendered page.
var Lang = language.Russian

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Printer returns a message printer for the page language.
func Printer() *message.Printer {
	return message.NewPrinter(Lang)
}

// T formats key with loc, falling back to the page language printer.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		loc = Printer()
	}
	return loc.Sprintf(key, args...)
}
