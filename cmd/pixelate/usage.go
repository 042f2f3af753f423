// ABOUTME: Help text rendered from embedded Markdown with glamour
// ABOUTME: Auto style on a terminal, the notty style otherwise

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/pixelate-go/pkg/terminal"
)

//go:embed usage.md
var usageMarkdown string

// usageDocument appends one list item per registered flag to the embedded help.
func usageDocument(fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString(usageMarkdown)
	fs.VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(&b, "- `--%s`: %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" {
			fmt.Fprintf(&b, " (default %s)", f.DefValue)
		}
		b.WriteByte('\n')
	})
	return b.String()
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	md := usageDocument(fs)

	opt := glamour.WithStandardStyle("notty")
	if f, ok := w.(*os.File); ok && terminal.IsTerminal(f) {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
