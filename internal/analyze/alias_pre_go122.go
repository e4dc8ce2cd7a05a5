//go:build !go1.22

package analyze

import "go/types"

// collectAliasImport is a no-op before Go 1.22: go/types has no *types.Alias
// there, so aliases are already resolved to their underlying types.
func collectAliasImport(types.Type, *types.Package, map[string]struct{}) bool {
	return false
}
