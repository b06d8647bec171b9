//go:build !invariants

package invariants

// Enabled is true when built with the invariants build tag. It turns on the
// expensive structural checks that containers run after mutating operations.
const Enabled = false
