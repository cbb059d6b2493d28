package convert

// NewConverter returns a Converter with the full default hook set.
//
// Registration order matters for the predicate hooks: the generic
// record hooks go first so that every later, narrower registration
// overrides them, and the optional-sentinel hooks go after the general
// sentinel hooks so the null-tolerant behavior wins for the optional
// target.
func NewConverter() *Converter {
	c := New()

	RegisterRecordHooks(c)
	RegisterAnnotatedHooks(c)
	RegisterEnumHooks(c)
	RegisterTimeHooks(c)
	RegisterUUIDHooks(c)
	RegisterErrorHooks(c)
	RegisterJSONHooks(c)
	RegisterSentinelHooks(c)
	RegisterDedupeHooks(c)
	RegisterOptionalStringHooks(c)

	return c
}
