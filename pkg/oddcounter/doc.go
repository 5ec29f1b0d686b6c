// Package oddcounter implements a counter whose value is guaranteed odd at
// every observable point: construction validates the initial value and the
// only mutation advances by two.
//
// The Go API uses ordinary ownership and error returns. The explicit
// handle/free lifecycle required by foreign callers lives in the capi
// boundary layer, not here.
package oddcounter
