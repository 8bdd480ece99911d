package parser

import (
	"encoding/json"
	"sort"

	"github.com/maruel/natural"
	"github.com/tidwall/gjson"

	"github.com/goidl/webidl/internal/ast"
)

// DumpNames extracts every definition's name field from a parsed tree —
// by round-tripping through encoding/json and gjson rather than walking
// the Definition interface directly, so the extraction tracks whatever
// shape the "name" json tag produces without a parallel type switch —
// and returns them sorted in natural (human) order, so "Foo2" sorts
// before "Foo10". Used by tests that assert on a parse's definition
// names without depending on source order.
func DumpNames(defs []ast.Definition) ([]string, error) {
	raw, err := json.Marshal(defs)
	if err != nil {
		return nil, err
	}

	var names []string
	gjson.ParseBytes(raw).ForEach(func(_, value gjson.Result) bool {
		if n := value.Get("name"); n.Exists() && n.String() != "" {
			names = append(names, n.String())
		}
		return true
	})

	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	return names, nil
}
