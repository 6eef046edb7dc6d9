package grammar

import (
	"embed"
	"fmt"
)

//go:embed data/greynir.grammar
var defaultData embed.FS

// Default compiles the embedded base grammar under the given variant.
func Default(v Variant) (*Grammar, error) {
	src, err := defaultData.ReadFile("data/greynir.grammar")
	if err != nil {
		return nil, fmt.Errorf("embedded grammar missing: %w", err)
	}
	g, err := Compile(string(src), v)
	if err != nil {
		return nil, fmt.Errorf("embedded grammar: %w", err)
	}
	return g, nil
}
