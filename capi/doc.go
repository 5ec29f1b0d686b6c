// The capi binary target exposes the odd counter over a C ABI. Build it as a
// shared library:
//
//	go build -buildmode=c-shared -o liboddcounter.so ./capi
//
// C callers include include/oddcounter.h and own each handle they receive:
// every non-NULL handle from oddcounter_new must be passed to oddcounter_free
// exactly once, after which it is invalid.
package main

func main() {}
