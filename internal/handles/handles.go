// Package handles maps Go values to opaque identifiers that can cross the C
// boundary as void*. Cgo forbids storing Go pointers in C memory, so the
// boundary layer registers each live object here and hands the caller a
// synthetic handle instead.
package handles

import (
	"sync"
	"unsafe"
)

type id uintptr

var (
	mu   sync.Mutex
	next id = 1
	reg     = map[id]any{}
)

// Put registers v and returns a C-safe handle. Identifiers are never reused
// within a process, so a freed handle cannot alias a later live one.
func Put(v any) unsafe.Pointer {
	mu.Lock()
	h := next
	next++
	reg[h] = v
	mu.Unlock()
	return unsafe.Pointer(uintptr(h))
}

// Get returns the value registered under p, or nil if p is nil, unknown, or
// already deleted.
func Get(p unsafe.Pointer) any {
	h := id(uintptr(p))
	mu.Lock()
	v := reg[h]
	mu.Unlock()
	return v
}

// Del unregisters p. Deleting an unknown or already-deleted handle is a
// no-op.
func Del(p unsafe.Pointer) {
	h := id(uintptr(p))
	mu.Lock()
	delete(reg, h)
	mu.Unlock()
}

// Count returns the number of live handles. Tests use it to detect leaks.
func Count() int {
	mu.Lock()
	n := len(reg)
	mu.Unlock()
	return n
}
