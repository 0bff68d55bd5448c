package category

import "github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"

var (
	ErrCategoryRequired   = httpx.E(httpx.Validation, "Category is required")
	ErrCategoryExists     = httpx.E(httpx.Conflict, "Category already exists")
	ErrCategoryNotFound   = httpx.E(httpx.NotFound, "Category not found")
	ErrCategoryMissing    = httpx.E(httpx.NotFound, "Category does not exist")
	ErrTypeFieldsRequired = httpx.E(httpx.Validation, "Category and product type are required")
	ErrTypeExists         = httpx.E(httpx.Conflict, "Product type already exists")
	ErrTypeNotFound       = httpx.E(httpx.NotFound, "Product type not found")
	ErrNoCategories       = httpx.E(httpx.NotFound, "No categories found")
)
