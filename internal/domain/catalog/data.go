package catalog

import "estimate_wizard/internal/domain/entities"

const (
	ServiceExteriorDetailing    = "exterior-detailing"
	ServiceInteriorDetailing    = "interior-detailing"
	ServiceCeramicCoating       = "ceramic-coating"
	ServicePaintCorrection      = "paint-correction"
	ServiceHeadlightRestoration = "headlight-restoration"
	ServiceEngineBay            = "engine-bay-cleaning"
	ServiceOdorRemoval          = "odor-removal"

	PackageEssential = "essential"
	PackageSignature = "signature"
	PackageTrackhawk = "trackhawk"
)

func DefaultServices() []entities.ServiceOption {
	return []entities.ServiceOption{
		{
			ID:          ServiceExteriorDetailing,
			Name:        "Exterior Detailing",
			Description: "Hand wash, decontamination, clay bar and sealant.",
			Category:    entities.ServiceCategoryExterior,
			UnitPrice:   250,
		},
		{
			ID:          ServiceInteriorDetailing,
			Name:        "Interior Detailing",
			Description: "Vacuum, steam clean, leather conditioning and glass.",
			Category:    entities.ServiceCategoryInterior,
			UnitPrice:   300,
		},
		{
			ID:          ServicePaintCorrection,
			Name:        "Paint Correction",
			Description: "Multi-stage machine polish to remove swirls and scratches.",
			Category:    entities.ServiceCategoryExterior,
			UnitPrice:   450,
		},
		{
			ID:          ServiceCeramicCoating,
			Name:        "Ceramic Coating",
			Description: "Professional-grade coating with multi-year protection.",
			Category:    entities.ServiceCategoryExterior,
			UnitPrice:   600,
		},
		{
			ID:          ServiceHeadlightRestoration,
			Name:        "Headlight Restoration",
			Description: "Sand, polish and UV-seal oxidized headlights.",
			Category:    entities.ServiceCategoryExterior,
			UnitPrice:   120,
		},
		{
			ID:          ServiceEngineBay,
			Name:        "Engine Bay Cleaning",
			Description: "Degrease and dress the engine compartment.",
			Category:    entities.ServiceCategoryExterior,
			UnitPrice:   150,
		},
		{
			ID:          ServiceOdorRemoval,
			Name:        "Odor Removal",
			Description: "Ozone treatment and enzyme cleaning.",
			Category:    entities.ServiceCategoryInterior,
			UnitPrice:   180,
		},
	}
}

func DefaultPackages() []entities.PackageOption {
	return []entities.PackageOption{
		{
			ID:          PackageEssential,
			Name:        "Essential",
			FlatPrice:   499,
			Description: "Exterior and interior detailing.",
		},
		{
			ID:          PackageSignature,
			Name:        "Signature",
			FlatPrice:   999,
			Description: "Full detail plus one-step paint correction.",
		},
		{
			ID:          PackageTrackhawk,
			Name:        "Trackhawk",
			FlatPrice:   1999,
			Description: "Full detail, paint correction and ceramic coating.",
		},
	}
}
