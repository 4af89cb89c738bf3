// Package memory provides a typed object pool used by the orderbook
// to recycle order structs. Identities are never reused, only the
// backing allocations.
package memory
