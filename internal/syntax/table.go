package syntax

import (
	"bufio"
	"fmt"
	"io"
)

// tokenColumn is the width of the TOKEN column.
const tokenColumn = 24

// FprintTokens writes items as a two-column TOKEN|LEXEME table. The _EOF
// item is not listed.
func FprintTokens(w io.Writer, items []Item) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-*s|%s\n", tokenColumn, "TOKEN", "LEXEME")
	fmt.Fprintf(bw, "%-*s|\n", tokenColumn, "")
	for _, it := range items {
		if it.Tok == _EOF {
			continue
		}
		fmt.Fprintf(bw, "%-*s|%s\n", tokenColumn, it.Tok.Debug(), it.Lit)
	}
	return bw.Flush()
}
