package entities

import "time"

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// PriceBucket is the coarse price band a portfolio job fell into.
type PriceBucket string

const (
	PriceBucketBudget  PriceBucket = "budget"
	PriceBucketMid     PriceBucket = "mid"
	PriceBucketPremium PriceBucket = "premium"
)

// MediaItem is one entry of the gallery/portfolio.
type MediaItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	MediaType   MediaType   `json:"media_type"`
	ServiceType string      `json:"service_type"`
	VehicleMake string      `json:"vehicle_make"`
	VehicleType string      `json:"vehicle_type"`
	PriceBucket PriceBucket `json:"price_bucket"`
	Featured    bool        `json:"featured"`
	CreatedAt   time.Time   `json:"created_at"`
}

// GalleryFilter narrows the gallery. Empty fields match everything.
type GalleryFilter struct {
	MediaType    MediaType
	ServiceType  string
	VehicleMake  string
	VehicleType  string
	PriceBucket  PriceBucket
	FeaturedOnly bool
}
