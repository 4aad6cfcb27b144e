package usecase

import (
	"errors"
	"testing"
	"time"

	"estimate_wizard/internal/domain/entities"
)

func galleryFixture() []entities.MediaItem {
	day := func(d int) time.Time { return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC) }
	return []entities.MediaItem{
		{ID: "a", MediaType: entities.MediaTypeImage, ServiceType: "ceramic-coating", VehicleMake: "BMW", PriceBucket: entities.PriceBucketPremium, CreatedAt: day(1)},
		{ID: "b", MediaType: entities.MediaTypeVideo, ServiceType: "paint-correction", VehicleMake: "Porsche", PriceBucket: entities.PriceBucketPremium, Featured: true, CreatedAt: day(2)},
		{ID: "c", MediaType: entities.MediaTypeImage, ServiceType: "interior-detailing", VehicleMake: "Honda", PriceBucket: entities.PriceBucketBudget, CreatedAt: day(3)},
		{ID: "d", MediaType: entities.MediaTypeImage, ServiceType: "ceramic-coating", VehicleMake: "bmw", PriceBucket: entities.PriceBucketMid, Featured: true, CreatedAt: day(4)},
	}
}

func ids(items []entities.MediaItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestGalleryUseCase_Filter(t *testing.T) {
	uc := NewGalleryUseCase(galleryFixture())

	cases := []struct {
		name   string
		filter entities.GalleryFilter
		want   []string
	}{
		{name: "no filter orders featured then newest", want: []string{"d", "b", "c", "a"}},
		{name: "media type", filter: entities.GalleryFilter{MediaType: entities.MediaTypeImage}, want: []string{"d", "c", "a"}},
		{name: "make ignores case", filter: entities.GalleryFilter{VehicleMake: "BMW"}, want: []string{"d", "a"}},
		{name: "combined", filter: entities.GalleryFilter{ServiceType: "ceramic-coating", PriceBucket: entities.PriceBucketPremium}, want: []string{"a"}},
		{name: "featured only", filter: entities.GalleryFilter{FeaturedOnly: true}, want: []string{"d", "b"}},
		{name: "no match", filter: entities.GalleryFilter{VehicleMake: "Ferrari"}, want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(uc.Filter(tc.filter))
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestGalleryUseCase_Neighbors(t *testing.T) {
	uc := NewGalleryUseCase(galleryFixture())

	t.Run("middle", func(t *testing.T) {
		prev, next, err := uc.Neighbors(entities.GalleryFilter{}, "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prev.ID != "d" || next.ID != "c" {
			t.Fatalf("unexpected neighbors: %s %s", prev.ID, next.ID)
		}
	})

	t.Run("wraps at both ends", func(t *testing.T) {
		prev, next, err := uc.Neighbors(entities.GalleryFilter{}, "d")
		if err != nil || prev.ID != "a" || next.ID != "b" {
			t.Fatalf("unexpected neighbors: %s %s err=%v", prev.ID, next.ID, err)
		}
	})

	t.Run("single item is its own neighbor", func(t *testing.T) {
		prev, next, err := uc.Neighbors(entities.GalleryFilter{VehicleMake: "Honda"}, "c")
		if err != nil || prev.ID != "c" || next.ID != "c" {
			t.Fatalf("unexpected neighbors: %s %s err=%v", prev.ID, next.ID, err)
		}
	})

	t.Run("item outside the filter", func(t *testing.T) {
		_, _, err := uc.Neighbors(entities.GalleryFilter{VehicleMake: "Honda"}, "a")
		if !errors.Is(err, ErrMediaNotFound) {
			t.Fatalf("expected ErrMediaNotFound, got %v", err)
		}
	})
}

func TestGalleryUseCase_Open(t *testing.T) {
	uc := NewGalleryUseCase(galleryFixture())

	it, err := uc.Open(entities.GalleryFilter{}, "c")
	if err != nil || it.ID != "c" {
		t.Fatalf("unexpected item: %+v err=%v", it, err)
	}
	if _, err := uc.Open(entities.GalleryFilter{MediaType: entities.MediaTypeVideo}, "c"); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound, got %v", err)
	}
	if _, err := uc.Open(entities.GalleryFilter{}, "missing"); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound, got %v", err)
	}
}
