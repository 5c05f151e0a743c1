package driver

import (
	"fmt"
	"io"

	"github.com/tofu-lang/tofu/lexer"
	"github.com/tofu-lang/tofu/token"
)

// Runner feeds source text through the lexer and renders each token to
// its output stream, one per line. It never inspects lexer internals.
type Runner struct {
	out io.Writer
}

func NewRunner(out io.Writer) *Runner {
	return &Runner{out: out}
}

// RunSource scans source and writes every token before EOF to the
// output stream. Scanning itself cannot fail; the only error path is
// the writer.
func (r *Runner) RunSource(source string) error {
	l := lexer.New(source)
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			return nil
		}
		if _, err := fmt.Fprintln(r.out, tok); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
	}
}
