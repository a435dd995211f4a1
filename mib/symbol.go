package mib

// Symbol is a (module-name, local-name) pair. All cross-module references
// resolve to a Symbol. Symbol is a plain comparable struct rather than an
// interned pointer: two Symbols naming the same (module, name) pair compare
// equal by value, which is Go's native form of interning and avoids a
// global intern table the garbage collector would otherwise need to pin.
type Symbol struct {
	Module string
	Name   string
}

// NewSymbol returns the Symbol identifying name as declared in module.
func NewSymbol(module, name string) Symbol {
	return Symbol{Module: module, Name: name}
}

// IsZero reports whether this is the zero Symbol (no module, no name).
func (s Symbol) IsZero() bool {
	return s.Module == "" && s.Name == ""
}

// String returns "module::name", or bare name if module is empty.
func (s Symbol) String() string {
	if s.Module == "" {
		return s.Name
	}
	return s.Module + "::" + s.Name
}
