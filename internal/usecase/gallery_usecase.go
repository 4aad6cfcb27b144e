package usecase

import (
	"errors"
	"sort"
	"strings"

	"estimate_wizard/internal/domain/entities"
)

var ErrMediaNotFound = errors.New("media item not found in the filtered gallery")

// IGalleryUseCase filters the portfolio and moves through the filtered list
// in the detail view.
type IGalleryUseCase interface {
	Filter(filter entities.GalleryFilter) []entities.MediaItem
	Open(filter entities.GalleryFilter, id string) (entities.MediaItem, error)
	Neighbors(filter entities.GalleryFilter, currentID string) (prev, next entities.MediaItem, err error)
}

type GalleryUseCase struct {
	items []entities.MediaItem
}

var _ IGalleryUseCase = (*GalleryUseCase)(nil)

func NewGalleryUseCase(items []entities.MediaItem) *GalleryUseCase {
	return &GalleryUseCase{items: append([]entities.MediaItem(nil), items...)}
}

// Filter returns the matching items, featured first and newest first within
// each group. The result is always a subset of the source list.
func (u *GalleryUseCase) Filter(filter entities.GalleryFilter) []entities.MediaItem {
	out := make([]entities.MediaItem, 0, len(u.items))
	for _, it := range u.items {
		if matches(it, filter) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Open returns the item for the detail view. Items hidden by the active
// filter cannot be opened.
func (u *GalleryUseCase) Open(filter entities.GalleryFilter, id string) (entities.MediaItem, error) {
	for _, it := range u.items {
		if it.ID == id && matches(it, filter) {
			return it, nil
		}
	}
	return entities.MediaItem{}, ErrMediaNotFound
}

// Neighbors returns the previous and next items around currentID within the
// filtered list, wrapping at both ends.
func (u *GalleryUseCase) Neighbors(filter entities.GalleryFilter, currentID string) (entities.MediaItem, entities.MediaItem, error) {
	list := u.Filter(filter)
	for i, it := range list {
		if it.ID != currentID {
			continue
		}
		prev := list[(i-1+len(list))%len(list)]
		next := list[(i+1)%len(list)]
		return prev, next, nil
	}
	return entities.MediaItem{}, entities.MediaItem{}, ErrMediaNotFound
}

func matches(it entities.MediaItem, f entities.GalleryFilter) bool {
	if f.MediaType != "" && it.MediaType != f.MediaType {
		return false
	}
	if f.ServiceType != "" && it.ServiceType != f.ServiceType {
		return false
	}
	if f.VehicleMake != "" && !strings.EqualFold(it.VehicleMake, f.VehicleMake) {
		return false
	}
	if f.VehicleType != "" && !strings.EqualFold(it.VehicleType, f.VehicleType) {
		return false
	}
	if f.PriceBucket != "" && it.PriceBucket != f.PriceBucket {
		return false
	}
	if f.FeaturedOnly && !it.Featured {
		return false
	}
	return true
}
