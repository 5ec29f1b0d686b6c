//go:build cgo && !windows

package main

// #include <stdint.h>
import "C"

import (
	"unsafe"

	"github.com/oddlabs/oddcounter-go/internal/handles"
	"github.com/oddlabs/oddcounter-go/pkg/oddcounter"
)

// Go pointers must not cross into C memory, so every counter lives behind a
// registry handle. Operations on an unknown or freed handle are a caller
// contract violation; the registry turns them into inert no-ops instead of
// memory corruption.

func lookup(h unsafe.Pointer) *oddcounter.Counter {
	c, _ := handles.Get(h).(*oddcounter.Counter)
	return c
}

//export oddcounter_new
func oddcounter_new(initial C.uint32_t) unsafe.Pointer {
	c, err := oddcounter.New(uint32(initial))
	if err != nil {
		return nil
	}
	return handles.Put(c)
}

//export oddcounter_increment
func oddcounter_increment(h unsafe.Pointer) {
	if c := lookup(h); c != nil {
		c.Increment()
	}
}

//export oddcounter_get_current
func oddcounter_get_current(h unsafe.Pointer) C.uint32_t {
	if c := lookup(h); c != nil {
		return C.uint32_t(c.Current())
	}
	return 0
}

//export oddcounter_free
func oddcounter_free(h unsafe.Pointer) {
	if h == nil {
		return
	}
	handles.Del(h)
}

var cVersion = C.CString(oddcounter.Version)

//export oddcounter_version
func oddcounter_version() *C.char {
	return cVersion
}
