// Package greeting renders the welcome page served on the root path.
package greeting

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

// TimeLayout renders timestamps as YYYY-MM-DD HH:MM:SS followed by a literal UTC suffix.
const TimeLayout = "2006-01-02 15:04:05 UTC"

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	ServerTime string
}

// FormatTimestamp converts t to UTC and formats it with TimeLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Render writes the welcome page for the given instant.
func Render(w io.Writer, now time.Time) error {
	if err := pageTmpl.Execute(w, pageData{ServerTime: FormatTimestamp(now)}); err != nil {
		return fmt.Errorf("render greeting: %w", err)
	}
	return nil
}
