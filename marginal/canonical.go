package marginal

import "fmt"

// CanonicalKey computes a canonical string key for v suitable for use as
// a marginal accumulator bin key. fmt's %#v verb prints Go values
// deterministically (struct fields in declaration order, map keys
// sorted, type names included), so structurally equal values of the
// same type produce the same key without a hand-rolled traversal.
// Pointers print as addresses, so two distinct pointers to equal values
// produce different keys.
func CanonicalKey(v any) string {
	return fmt.Sprintf("%#v", v)
}
