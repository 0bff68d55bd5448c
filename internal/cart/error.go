package cart

import "github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"

// MinQuantity is the wholesale floor: no line below five units.
const MinQuantity = 5

var (
	ErrMissingFields   = httpx.E(httpx.Validation, "Product ID and quantity are required.")
	ErrQuantityTooLow  = httpx.E(httpx.Validation, "Quantity must be at least 5.")
	ErrProductNotFound = httpx.E(httpx.NotFound, "Product not found.")
	ErrLineNotFound    = httpx.E(httpx.NotFound, "Cart product not found")
	ErrNotLineOwner    = httpx.E(httpx.Authorization, "You can only remove items from your own cart.")
)
