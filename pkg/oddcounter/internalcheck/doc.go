// Package internalcheck holds source-policy tests for the oddcounter
// library. It is not intended for external use and the API may change
// without notice.
package internalcheck
