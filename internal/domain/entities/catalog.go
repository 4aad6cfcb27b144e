package entities

// ServiceCategory groups catalog services for display.
type ServiceCategory string

const (
	ServiceCategoryExterior ServiceCategory = "exterior"
	ServiceCategoryInterior ServiceCategory = "interior"
)

func (c ServiceCategory) Valid() bool {
	return c == ServiceCategoryExterior || c == ServiceCategoryInterior
}

// ServiceOption is a single detailing service offered by the shop.
//
// Catalog entries are immutable once loaded; callers receive copies.
type ServiceOption struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    ServiceCategory `json:"category"`
	UnitPrice   float64         `json:"unit_price"`
}

// PackageOption is a flat-priced bundle. When selected it overrides the
// per-service sum.
type PackageOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	FlatPrice   float64 `json:"flat_price"`
	Description string  `json:"description"`
}
