package order

import "github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"

var (
	ErrCartEmpty         = httpx.E(httpx.Validation, "Cart items are required")
	ErrOrderNotFound     = httpx.E(httpx.NotFound, "Order not found")
	ErrIDRequired        = httpx.E(httpx.Validation, "Order ID is required")
	ErrStatusRequired    = httpx.E(httpx.Validation, "Order ID and status are required")
	ErrUnknownStatus     = httpx.E(httpx.Validation, "Unrecognized order status")
	ErrIllegalTransition = httpx.E(httpx.Conflict, "Order status cannot change from its current state")
)
