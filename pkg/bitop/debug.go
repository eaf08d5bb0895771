//go:build !bitopdebug

package bitop

// debug enables precondition panics in the unchecked operations.
const debug = false
