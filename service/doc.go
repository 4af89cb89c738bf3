// Package service wraps the orderbook behind the process's single
// synchronization boundary. Mutations run under an exclusive lock,
// queries under a shared lock, and every result handed out is a
// value copy, so no pointer into book state ever escapes the lock.
package service
