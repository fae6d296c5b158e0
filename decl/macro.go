package decl

import (
	"fmt"

	"github.com/daedaleanai/cbindgen/clang"
	"github.com/daedaleanai/cbindgen/diagnostics"
	"github.com/daedaleanai/cbindgen/macrotrans"
	"github.com/daedaleanai/cbindgen/ppmac"
)

// emitMacro tokenizes a MacroDefinition cursor's extent, classifies it
// functionish vs object-like by column adjacency, parses its body with
// ppmac, and translates the result with macrotrans — spec §4.3.
func emitMacro(c *ctx, cursor clang.Cursor, header string) {
	tokens := cursor.Tokenize()
	defer tokens.Dispose()

	n := tokens.Len()
	if n < 2 {
		c.addIssue(header, cursor.Spelling(), diagnostics.KindTokenizationError, diagnostics.SeverityItem,
			"macro %s: expected at least a name and a framing token", cursor.Spelling())
		return
	}

	first := tokens.At(0)
	name := first.Spelling()
	all := tokens.All()

	// spec §4.3 step 2: functionish iff the next token starts exactly
	// where the name token ends, i.e. no intervening whitespace.
	functionish := false
	if n >= 3 && all[1].Spelling() == "(" {
		firstEnd := first.Extent().End().FileLocation().Column
		secondStart := all[1].Extent().Start().FileLocation().Column
		functionish = secondStart == firstEnd
	}

	// spec §4.3 step 3: drop the name token and the trailing framing
	// token, keeping everything else as the candidate body.
	body := all[1 : n-1]

	if functionish {
		// spec §4.3 step 4: the parameter list is every token up to and
		// including the first ')'; what remains is the body.
		idx := -1
		for i, t := range body {
			if t.Spelling() == ")" {
				idx = i
				break
			}
		}
		if idx == -1 {
			c.addIssue(header, name, diagnostics.KindTokenizationError, diagnostics.SeverityItem,
				"macro %s: functionish but parameter list has no closing ')'", name)
			return
		}
		body = body[idx+1:]
	}

	// spec §4.3 step 5: an empty body yields no output and succeeds.
	if len(body) == 0 {
		return
	}

	spellings := make([]string, len(body))
	for i, t := range body {
		spellings[i] = t.Spelling()
	}

	node, err := ppmac.Expression(spellings)
	if err != nil {
		c.addIssue(header, name, diagnostics.KindMacroParseError, diagnostics.SeverityItem, "macro %s: %v", name, err)
		return
	}

	translated, ok := macrotrans.Translate(node)
	if !ok {
		if c.opts.StubUnsupportedMacros {
			c.addItem(name, header, fmt.Sprintf("// unsupported macro %s: %s", name, node), node.String())
			return
		}
		c.addIssue(header, name, diagnostics.KindMacroUnsupported, diagnostics.SeverityItem,
			"macro %s: unsupported: %s", name, node)
		return
	}

	decl := fmt.Sprintf("pub const %s: %s = %s; /* %s */", name, translated.Type, translated.Value, node)
	c.addItem(name, header, decl, cursor.Location().DisplayShort())
}
