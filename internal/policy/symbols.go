package policy

// Symbols holds the identifiers baked into the generated C source.
// The consuming build links against these names, so they never vary at runtime.
type Symbols struct {
	// Generator is the tool name quoted in the autogenerated notice.
	Generator string
	// Includes are the headers pulled in ahead of the array, in order.
	Includes []string
	// Array is the name of the byte array holding the policy.
	Array string
	// SizeName is the name of the constant holding the array length.
	SizeName string
	// Placeholder is the empty function emitted after the size constant.
	Placeholder string
}

// FlaskSymbols returns the symbol set expected by the XSM FLASK build.
func FlaskSymbols() Symbols {
	return Symbols{
		Generator:   "gen_policy.py",
		Includes:    []string{"xen/init.h", "xsm/xsm.h"},
		Array:       "xsm_flask_init_policy",
		SizeName:    "xsm_flask_init_policy_size",
		Placeholder: "policy_dummy_func",
	}
}
