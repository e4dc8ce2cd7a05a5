//go:build go1.22

package analyze

import "go/types"

// collectAliasImport records the import path a *types.Alias needs and reports
// whether t was an alias. *types.Alias only exists in go/types as of Go 1.22.
func collectAliasImport(t types.Type, self *types.Package, seen map[string]struct{}) bool {
	tt, ok := t.(*types.Alias)
	if !ok {
		return false
	}

	if obj := tt.Obj(); obj.Pkg() != nil && obj.Pkg() != self {
		seen[obj.Pkg().Path()] = struct{}{}
	}

	return true
}
