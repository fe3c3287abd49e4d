package lexer_test

import (
	"fmt"

	"github.com/shaba/tree-sitter-rpmspec/lexer"
	"github.com/shaba/tree-sitter-rpmspec/source"
)

func Example() {
	src := source.New("demo.spec", []byte("Requires: %{name}-libs >= %version"))
	l := lexer.New(src)
	tokens, e := l.Tokens()
	if e != nil {
		fmt.Println(e)
		return
	}

	for _, tok := range tokens {
		fmt.Printf("%s %q\n", tok.Kind(), tok.Text())
	}
	// Output:
	// text "Requires: "
	// macro-start "%{"
	// text "name"
	// macro-end "}"
	// text "-libs >= "
	// macro-expansion "%version"
	// -end-of-file- ""
}
