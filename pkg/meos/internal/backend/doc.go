// Package backend hosts the thin cgo layer that links the Go API to the
// native MEOS library. The real implementation builds with the cgo and meos
// tags; without them every entry point returns ErrNotBuilt so the rest of the
// module still compiles and its pure Go tests run.
//
// Native calls are serialised by one mutex. MEOS reports failures through an
// error handler installed at initialization; the handler stores the message
// and the wrapper that made the call returns it as a *NativeError. Each
// wrapper notes which failure signal its native function uses:
//
//   - null: a null pointer result
//   - code: a negative int result
//   - flag: a false boolean result with the value in an out-parameter
//   - distance: -1 when the operands share no time
//
// A null or false result without a captured message is an empty result, not
// a failure; wrappers return a nil pointer or ok=false with a nil error.
package backend
