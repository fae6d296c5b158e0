package output

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"

	"github.com/daedaleanai/cbindgen/diagnostics"
)

// PrintConflict renders a ConflictingDeclaration diagnostic to w,
// syntax-highlighting the two competing declaration texts with chroma's
// terminal256 formatter so a reader can see exactly which field or line
// differs — repurposed from reqtraq's webapp.go, which lexes source
// files it serves for display the same way (lexer + style + formatter),
// there for a browser's HTML output, here for a terminal.
func PrintConflict(w io.Writer, issue diagnostics.Issue, existingText, incomingText string) error {
	fmt.Fprintf(w, "conflict: %s: %s\n", issue.Header, issue.Description)

	lexer := lexers.Get("c")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	formatter := formatters.TTY256
	style := styles.Get("monokai")

	labeled := []struct {
		label string
		text  string
	}{
		{"existing", existingText},
		{"incoming", incomingText},
	}
	for _, lt := range labeled {
		fmt.Fprintf(w, "--- %s ---\n", lt.label)
		iterator, err := lexer.Tokenise(nil, lt.text)
		if err != nil {
			return err
		}
		if err := formatter.Format(w, style, iterator); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
