// Package translator names the translator namespace and the subpackages
// that translator-check looks for.
package translator

import "fmt"

// Namespace is the parent of every checked subpackage.
const Namespace = "translator"

var packages = [...]string{"nodes", "tom", "edges", "kg"}

// Packages returns the checked subpackage identifiers in report order.
func Packages() []string {
	out := make([]string, len(packages))
	copy(out, packages[:])
	return out
}

// ModuleName returns the dotted module name for id, e.g. "translator.kg".
func ModuleName(id string) string {
	return Namespace + "." + id
}

// InstallHint returns the suggested fix for a missing subpackage.
func InstallHint(id string) string {
	return fmt.Sprintf("Try 'pip install -e %s_%s'", Namespace, id)
}
