package sink

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
)

// headingPattern matches upper-case titles such as "USERS: ..." or
// "DELIVERY SYSTEM STATISTICS".
var headingPattern = regexp.MustCompile(`^[A-Z][A-Z ]+(:|$)`)

// ConsoleSink prints lines to a terminal, optionally highlighting the
// report banner.
type ConsoleSink struct {
	w       io.Writer
	colours bool
}

func NewConsoleSink(w io.Writer, colours bool) ConsoleSink {
	return ConsoleSink{w: w, colours: colours}
}

func (c ConsoleSink) Display(line string) {
	if c.colours {
		line = highlight(line)
	}
	_, _ = fmt.Fprintln(c.w, line)
}

func highlight(line string) string {
	switch {
	case strings.HasPrefix(line, "---"):
		return color.Gray.Render(line)
	case headingPattern.MatchString(line):
		return color.New(color.FgGreen, color.OpBold).Render(line)
	default:
		return line
	}
}
