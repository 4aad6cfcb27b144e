package request

import (
	"strings"

	"estimate_wizard/internal/domain/entities"
)

// GalleryQuery carries the gallery filter from the query string.
type GalleryQuery struct {
	MediaType   string `form:"media_type" binding:"omitempty,oneof=image video"`
	ServiceType string `form:"service_type" binding:"omitempty,max=64"`
	VehicleMake string `form:"vehicle_make" binding:"omitempty,max=50"`
	VehicleType string `form:"vehicle_type" binding:"omitempty,max=50"`
	PriceBucket string `form:"price_bucket" binding:"omitempty,oneof=budget mid premium"`
	Featured    bool   `form:"featured"`
}

func (q GalleryQuery) ToFilter() entities.GalleryFilter {
	return entities.GalleryFilter{
		MediaType:    entities.MediaType(q.MediaType),
		ServiceType:  strings.TrimSpace(q.ServiceType),
		VehicleMake:  strings.TrimSpace(q.VehicleMake),
		VehicleType:  strings.TrimSpace(q.VehicleType),
		PriceBucket:  entities.PriceBucket(q.PriceBucket),
		FeaturedOnly: q.Featured,
	}
}

// RecommendationQuery describes the vehicle the catalog is ordered for.
type RecommendationQuery struct {
	Year int    `form:"year" binding:"omitempty,min=0,max=9999"`
	Make string `form:"make" binding:"omitempty,max=50"`
}

func (q RecommendationQuery) ToVehicle() entities.VehicleInfo {
	return entities.VehicleInfo{Year: q.Year, Make: strings.TrimSpace(q.Make)}
}
