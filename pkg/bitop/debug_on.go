//go:build bitopdebug

package bitop

const debug = true
