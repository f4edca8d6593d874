// ABOUTME: Resolution options shared by the content resolver and field mapper
// ABOUTME: Carries language default, date layout, sanitizer toggles and the logger

package extract

import (
	"github.com/charmbracelet/log"

	"github.com/harper/feedparse/internal/sanitize"
)

// Options controls how matched nodes become field values.
type Options struct {
	DefaultLanguage string
	DateTemplate    string
	RemoveStyles    bool
	RemoveScripts   bool
	Logger          *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

func (o Options) sanitize() sanitize.Options {
	return sanitize.Options{
		RemoveStyles:  o.RemoveStyles,
		RemoveScripts: o.RemoveScripts,
	}
}
