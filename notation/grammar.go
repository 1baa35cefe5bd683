package notation

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type complexExpr struct {
	Faces []*faceExpr `parser:"( \"[\" ( @@ \",\"? )* \"]\" | ( @@ \",\"? )+ )"`
}

type faceExpr struct {
	Pos    lexer.Position
	Open   string       `parser:"@( \"(\" | \"{\" )"`
	Labels []*labelExpr `parser:"( @@ \",\"? )*"`
	Close  string       `parser:"@( \")\" | \"}\" )"`
}

type labelExpr struct {
	Value string `parser:"@( String | Ident | Int )"`
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `'(\\.|[^'\\])*'|"(\\.|[^"\\])*"`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_.\-]*`},
	{Name: "Punct", Pattern: `[\[\](){},]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseComplex = participle.MustBuild[complexExpr](
	participle.Lexer(notationLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace", "Comment"),
)
