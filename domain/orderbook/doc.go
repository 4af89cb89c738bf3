// Package orderbook implements a single-instrument central limit
// order book: price-ordered side indexes of FIFO price levels, a
// matching loop enforcing strict price-then-time priority, an O(1)
// order locator for cancellation, and an append-only trade log with
// gap-free sequence numbers.
//
// The package is internally sequential. All concurrency control
// lives at the service boundary; within one operation the book
// behaves as strictly single-threaded code.
package orderbook
