// Package object implements Ember's object arena: the heap that backs
// every value.Value whose Kind is KindObj. Ember only has one heap-
// allocated type, strings, and every string is interned, so the arena
// doubles as the intern table.
//
// Objects live for the lifetime of the VM that owns them; Ember has no
// garbage collector, matching the rustLox vm.rs this package is grounded
// on, which never frees an entry from its generational arena either.
package object

import (
	"github.com/josharian/intern"

	"ember/value"
)

// Heap owns every string object a VM allocates. strings is the arena:
// strings[h-1] holds the content named by handle h. names maps content back
// to its handle so that two equal string literals or concatenation results
// always resolve to the same handle, making value.Value.Equal a handle
// comparison instead of a content comparison.
type Heap struct {
	strings []string
	names   map[string]value.ObjHandle
}

// NewHeap creates an empty object arena.
func NewHeap() *Heap {
	return &Heap{names: make(map[string]value.ObjHandle)}
}

// InternString returns the Value naming s, allocating a new arena slot only
// if s has not been interned before. The Go-level string header for s is
// also canonicalized via intern.String, so repeated identical literals
// across many compiles share one underlying []byte as well as one handle.
func (h *Heap) InternString(s string) value.Value {
	s = intern.String(s)
	if handle, ok := h.names[s]; ok {
		return value.Obj(handle)
	}
	h.strings = append(h.strings, s)
	handle := value.ObjHandle(len(h.strings))
	h.names[s] = handle
	return value.Obj(handle)
}

// StringAt returns the string content named by handle. It panics if handle
// was not issued by this Heap, which indicates a compiler or VM bug rather
// than a condition a caller should recover from.
func (h *Heap) StringAt(handle value.ObjHandle) string {
	return h.strings[handle-1]
}

// Concat interns the concatenation of the two strings named by a and b,
// implementing Ember's string '+' operator.
func (h *Heap) Concat(a, b value.ObjHandle) value.Value {
	return h.InternString(h.StringAt(a) + h.StringAt(b))
}

// StringInterner is the narrow capability the compiler depends on to turn
// string literals into Values at compile time, without needing the whole
// *Heap (or reaching into the VM) during compilation.
type StringInterner interface {
	InternString(s string) value.Value
}

var _ StringInterner = (*Heap)(nil)
