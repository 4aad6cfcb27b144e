package response

import "estimate_wizard/internal/domain/entities"

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	UnitPrice   float64 `json:"unit_price"`
}

type PackageResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	FlatPrice   float64 `json:"flat_price"`
}

type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	Packages []PackageResponse `json:"packages"`
}

func FromServices(in []entities.ServiceOption) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(in))
	for _, s := range in {
		out = append(out, ServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Category:    string(s.Category),
			UnitPrice:   s.UnitPrice,
		})
	}
	return out
}

func FromPackages(in []entities.PackageOption) []PackageResponse {
	out := make([]PackageResponse, 0, len(in))
	for _, p := range in {
		out = append(out, PackageResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			FlatPrice:   p.FlatPrice,
		})
	}
	return out
}
