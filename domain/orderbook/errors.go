package orderbook

import "errors"

var (
	// ErrInvalidOrder rejects a submission with a non-positive or
	// out-of-range price or quantity. Nothing changes on rejection.
	ErrInvalidOrder = errors.New("orderbook: invalid price or quantity")

	// ErrOrderNotFound means no order with that id currently rests.
	// Never existed, already filled and already cancelled all look
	// the same; a filled order keeps no residual record.
	ErrOrderNotFound = errors.New("orderbook: order not found")
)
