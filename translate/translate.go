// Package translate provides the message printer used for every diagnostic
// and error text in lispobj.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("lispobj: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the message language from a preference list of
// BCP 47 tags. An empty list selects en-US.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
