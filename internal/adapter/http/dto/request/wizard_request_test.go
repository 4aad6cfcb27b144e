package request

import (
	"reflect"
	"testing"

	"estimate_wizard/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestVehicleRequest_ToPatch(t *testing.T) {
	year := 2019
	p := VehicleRequest{Year: &year, Make: strPtr("Audi"), Condition: strPtr(" good ")}.ToPatch()

	if p.Year == nil || *p.Year != 2019 || p.Make == nil || *p.Make != "Audi" {
		t.Fatalf("unexpected patch: %+v", p)
	}
	if p.Condition == nil || *p.Condition != entities.VehicleConditionGood {
		t.Fatalf("unexpected condition: %v", p.Condition)
	}
	if p.Model != nil || p.Color != nil {
		t.Fatalf("absent fields must stay nil: %+v", p)
	}
}

func TestServicesRequest(t *testing.T) {
	r := ServicesRequest{Toggle: "  "}
	if r.IsToggle() {
		t.Fatalf("blank toggle is not a toggle")
	}
	if got := r.ResolveServices(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil selection, got %#v", got)
	}

	r = ServicesRequest{Services: []string{" odor-removal ", "", "engine-bay-cleaning"}}
	if got := r.ResolveServices(); !reflect.DeepEqual(got, []string{"odor-removal", "engine-bay-cleaning"}) {
		t.Fatalf("unexpected selection: %v", got)
	}
	if !(ServicesRequest{Toggle: "odor-removal"}).IsToggle() {
		t.Fatalf("expected toggle")
	}
}

func TestContactRequest_ToPatch(t *testing.T) {
	p := ContactRequest{
		Email:                  strPtr("a@b.co"),
		PreferredContactMethod: strPtr("phone"),
		Timeframe:              strPtr("asap"),
	}.ToPatch()

	if p.Email == nil || *p.Email != "a@b.co" || p.Name != nil || p.Notes != nil {
		t.Fatalf("unexpected patch: %+v", p)
	}
	if *p.PreferredContactMethod != entities.ContactMethodPhone || *p.Timeframe != entities.TimeframeASAP {
		t.Fatalf("unexpected enums: %+v", p)
	}
}

func TestGalleryQuery_ToFilter(t *testing.T) {
	f := GalleryQuery{MediaType: "video", VehicleMake: " BMW ", PriceBucket: "premium", Featured: true}.ToFilter()
	want := entities.GalleryFilter{
		MediaType:    entities.MediaTypeVideo,
		VehicleMake:  "BMW",
		PriceBucket:  entities.PriceBucketPremium,
		FeaturedOnly: true,
	}
	if f != want {
		t.Fatalf("unexpected filter: %+v", f)
	}
}
