package product

import "github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"

var (
	ErrFieldsRequired  = httpx.E(httpx.Validation, "All fields are required")
	ErrImagesRequired  = httpx.E(httpx.Validation, "Product images are required")
	ErrTooFewImages    = httpx.E(httpx.Validation, "At least 3 product images must upload successfully")
	ErrProductNotFound = httpx.E(httpx.NotFound, "Product not found")
	ErrIDRequired      = httpx.E(httpx.Validation, "Product ID is required")
	ErrUploadsDisabled = httpx.E(httpx.Dependency, "Image uploads are not configured")
)
