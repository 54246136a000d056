// Package translate renders user-facing message text in the host locale.
//
// All error and diagnostic strings in this module are en-US Sprintf formats
// passed through From, so a translation catalog can be attached later
// without touching call sites.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	once    sync.Once
	printer *message.Printer
)

func hostPrinter() *message.Printer {
	once.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("hand: locale: %v", err)
		}
		if len(locales) == 0 {
			locales = []string{"en-US"}
		}
		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})

	return printer
}

// From formats an en-US Sprintf() format in the host locale.
func From(key message.Reference, args ...any) string {
	return hostPrinter().Sprintf(key, args...)
}
