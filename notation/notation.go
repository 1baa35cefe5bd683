package notation

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/asctree/core"
)

// ErrSyntax is returned for input that is not a face-list literal.
var ErrSyntax = errors.New("notation: syntax error")

var closers = map[string]string{"(": ")", "{": "}"}

// Parse reads a face-list literal. Faces keep their written label order.
//
// Errors: ErrSyntax for malformed input or mismatched brackets;
// core.ErrInvalidFace for an empty face; core.ErrEmptyLabel for ''.
func Parse(s string) ([]core.Face, error) {
	expr, err := parseComplex.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return facesOf(expr)
}

// ParseReader is Parse over r; name is used in error positions.
func ParseReader(name string, r io.Reader) ([]core.Face, error) {
	expr, err := parseComplex.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return facesOf(expr)
}

func facesOf(expr *complexExpr) ([]core.Face, error) {
	out := make([]core.Face, 0, len(expr.Faces))
	for i, f := range expr.Faces {
		if closers[f.Open] != f.Close {
			return nil, fmt.Errorf("%w: %s: face %d opens with %q and closes with %q",
				ErrSyntax, f.Pos, i, f.Open, f.Close)
		}
		if len(f.Labels) == 0 {
			return nil, fmt.Errorf("notation: %s: face %d: %w", f.Pos, i, core.ErrInvalidFace)
		}
		face := make(core.Face, len(f.Labels))
		for j, l := range f.Labels {
			if l.Value == "" {
				return nil, fmt.Errorf("notation: %s: face %d: %w", f.Pos, i, core.ErrEmptyLabel)
			}
			face[j] = l.Value
		}
		out = append(out, face)
	}

	return out, nil
}

// Format writes faces as a literal accepted by Parse, one tuple per face
// with single-quoted labels.
func Format(faces []core.Face) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range faces {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j, l := range f {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(quote(l))
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(']')

	return sb.String()
}

// quote wraps l in single quotes, escaping backslashes and single quotes.
func quote(l string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(l) + "'"
}
