package invariants

// Check - Runs check and panics with its error if invariant checking is enabled.
// check is never called when invariants are disabled, so it may walk the whole container.
func Check(check func() error) {
	if !Enabled {
		return
	}
	if err := check(); err != nil {
		panic(err)
	}
}
