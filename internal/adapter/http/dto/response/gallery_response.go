package response

import (
	"time"

	"estimate_wizard/internal/domain/entities"
)

type MediaItemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	MediaType   string    `json:"media_type"`
	ServiceType string    `json:"service_type"`
	VehicleMake string    `json:"vehicle_make"`
	VehicleType string    `json:"vehicle_type"`
	PriceBucket string    `json:"price_bucket"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

type GalleryResponse struct {
	Items []MediaItemResponse `json:"items"`
	Total int                 `json:"total"`
}

type NeighborsResponse struct {
	Previous MediaItemResponse `json:"previous"`
	Next     MediaItemResponse `json:"next"`
}

func FromMediaItem(m entities.MediaItem) MediaItemResponse {
	return MediaItemResponse{
		ID:          m.ID,
		Title:       m.Title,
		URL:         m.URL,
		MediaType:   string(m.MediaType),
		ServiceType: m.ServiceType,
		VehicleMake: m.VehicleMake,
		VehicleType: m.VehicleType,
		PriceBucket: string(m.PriceBucket),
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
	}
}

func FromGallery(items []entities.MediaItem) GalleryResponse {
	out := make([]MediaItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromMediaItem(it))
	}
	return GalleryResponse{Items: out, Total: len(out)}
}
