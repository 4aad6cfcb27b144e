// Package pricing computes the running estimate and orders the service list
// for a given vehicle. Everything here is pure.
package pricing

import (
	"strings"

	"estimate_wizard/internal/domain/catalog"
	"estimate_wizard/internal/domain/entities"
)

// RecencyThreshold is the first model year that no longer gets paint
// correction promoted.
const RecencyThreshold = 2018

var premiumMakes = map[string]struct{}{
	"audi":          {},
	"bentley":       {},
	"bmw":           {},
	"ferrari":       {},
	"jaguar":        {},
	"lamborghini":   {},
	"land rover":    {},
	"lexus":         {},
	"maserati":      {},
	"mercedes":      {},
	"mercedes-benz": {},
	"porsche":       {},
	"tesla":         {},
}

// IsPremiumMake reports whether vehicleMake is on the premium list, ignoring case
// and surrounding spaces.
func IsPremiumMake(vehicleMake string) bool {
	_, ok := premiumMakes[strings.ToLower(strings.TrimSpace(vehicleMake))]
	return ok
}

// ComputeEstimate returns the selected package's flat price when a known
// package is selected, otherwise the sum of the selected services. Unknown
// ids are ignored.
func ComputeEstimate(c *catalog.Catalog, s entities.WizardState) float64 {
	if s.Package != "" {
		if p, ok := c.Package(s.Package); ok {
			return p.FlatPrice
		}
	}

	total := 0.0
	seen := make(map[string]struct{}, len(s.Services))
	for _, id := range s.Services {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if svc, ok := c.Service(id); ok {
			total += svc.UnitPrice
		}
	}
	return total
}

// RecommendServices returns every catalog service, reordered for the
// vehicle. Premium makes get ceramic coating first; vehicles older than
// RecencyThreshold then get paint correction first. Nothing is dropped and
// the remaining entries keep catalog order.
func RecommendServices(services []entities.ServiceOption, v entities.VehicleInfo) []entities.ServiceOption {
	out := append([]entities.ServiceOption(nil), services...)
	if IsPremiumMake(v.Make) {
		out = moveToFront(out, catalog.ServiceCeramicCoating)
	}
	if v.Year > 0 && v.Year < RecencyThreshold {
		out = moveToFront(out, catalog.ServicePaintCorrection)
	}
	return out
}

func moveToFront(list []entities.ServiceOption, id string) []entities.ServiceOption {
	idx := -1
	for i, s := range list {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return list
	}
	picked := list[idx]
	copy(list[1:idx+1], list[:idx])
	list[0] = picked
	return list
}
