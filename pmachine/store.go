package pmachine

// Store is the object memory of a running game as seen from a kernel call.
//
// Reading or invoking a selector on something that is not an object yields
// Null. Invoke returns the accumulator after the method ran; by convention
// Null means false.
type Store interface {
	Value(obj Reg, sel Selector) Reg
	SetValue(obj Reg, sel Selector, v Reg)
	Invoke(obj Reg, sel Selector, args ...Reg) Reg
	IsObject(r Reg) bool

	// HasSelector reports whether the game's vocabulary defines sel.
	// Older games, for example, have no cantBeHere.
	HasSelector(sel Selector) bool
}
