package catalog

import (
	"time"

	"estimate_wizard/internal/domain/entities"
)

// DefaultGallery returns the portfolio shown on the gallery pages.
func DefaultGallery() []entities.MediaItem {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}
	return []entities.MediaItem{
		{ID: "m3-ceramic", Title: "BMW M3 ceramic coating", URL: "/media/m3-ceramic.jpg", MediaType: entities.MediaTypeImage, ServiceType: ServiceCeramicCoating, VehicleMake: "BMW", VehicleType: "sedan", PriceBucket: entities.PriceBucketPremium, Featured: true, CreatedAt: day(2025, time.March, 14)},
		{ID: "f150-interior", Title: "F-150 interior reset", URL: "/media/f150-interior.jpg", MediaType: entities.MediaTypeImage, ServiceType: ServiceInteriorDetailing, VehicleMake: "Ford", VehicleType: "truck", PriceBucket: entities.PriceBucketMid, CreatedAt: day(2025, time.May, 2)},
		{ID: "911-correction", Title: "Porsche 911 two-stage correction", URL: "/media/911-correction.mp4", MediaType: entities.MediaTypeVideo, ServiceType: ServicePaintCorrection, VehicleMake: "Porsche", VehicleType: "coupe", PriceBucket: entities.PriceBucketPremium, Featured: true, CreatedAt: day(2025, time.June, 21)},
		{ID: "camry-exterior", Title: "Camry exterior detail", URL: "/media/camry-exterior.jpg", MediaType: entities.MediaTypeImage, ServiceType: ServiceExteriorDetailing, VehicleMake: "Toyota", VehicleType: "sedan", PriceBucket: entities.PriceBucketBudget, CreatedAt: day(2024, time.November, 8)},
		{ID: "trackhawk-full", Title: "Grand Cherokee Trackhawk full package", URL: "/media/trackhawk-full.mp4", MediaType: entities.MediaTypeVideo, ServiceType: PackageTrackhawk, VehicleMake: "Jeep", VehicleType: "suv", PriceBucket: entities.PriceBucketPremium, CreatedAt: day(2025, time.August, 30)},
		{ID: "civic-headlights", Title: "Civic headlight restoration", URL: "/media/civic-headlights.jpg", MediaType: entities.MediaTypeImage, ServiceType: ServiceHeadlightRestoration, VehicleMake: "Honda", VehicleType: "sedan", PriceBucket: entities.PriceBucketBudget, CreatedAt: day(2025, time.January, 17)},
	}
}
