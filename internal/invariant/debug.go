//go:build debug

package invariant

// Debug reports whether contract violations panic.
const Debug = true

func violated(msg string) {
	report(msg)
	panic("invariant violated: " + msg)
}
