// Package obj implements a tagged value object and a cons-cell list engine
// on top of it.
//
// A Value holds exactly one of: a Byte, Wyde, Tetra or Octa (8, 16, 32 and
// 64-bit unsigned integers), a Double, a 16-byte Xmm vector, a CString, a
// Cons pair, or an Opaque foreign pointer. Integer arithmetic wraps at the
// width of the kind, as hardware registers do.
//
// Lists are chains of Cons values terminated by nil. Ownership is manual: a
// Value owns everything reachable from it, and Free releases it. Destructive
// list operations (Nconc, SplitIf, DeleteIf, SetCdr) rewrite pairs in place,
// so a pair must never be shared between two lists. That precondition is not
// checked.
//
// Misuse (reading a payload through the wrong kind, mixing kinds in
// arithmetic, passing a non-list to a list operation) is a programming error
// and panics with an *ErrContract.
package obj
