package catalog

import (
	"errors"
	"testing"

	"estimate_wizard/internal/domain/entities"
)

func TestLoad(t *testing.T) {
	t.Run("default catalog loads", func(t *testing.T) {
		c := Default()
		if len(c.Services()) != len(DefaultServices()) || len(c.Packages()) != len(DefaultPackages()) {
			t.Fatalf("unexpected catalog size: %d services, %d packages", len(c.Services()), len(c.Packages()))
		}
		p, ok := c.Package(PackageTrackhawk)
		if !ok || p.FlatPrice != 1999 {
			t.Fatalf("expected trackhawk at 1999, got %+v ok=%v", p, ok)
		}
	})

	cases := []struct {
		name     string
		services []entities.ServiceOption
		packages []entities.PackageOption
		want     error
	}{
		{
			name:     "empty service id",
			services: []entities.ServiceOption{{ID: " ", Name: "x", Category: entities.ServiceCategoryExterior}},
			want:     ErrEmptyID,
		},
		{
			name:     "empty service name",
			services: []entities.ServiceOption{{ID: "x", Category: entities.ServiceCategoryExterior}},
			want:     ErrEmptyName,
		},
		{
			name:     "negative unit price",
			services: []entities.ServiceOption{{ID: "x", Name: "x", Category: entities.ServiceCategoryInterior, UnitPrice: -1}},
			want:     ErrNegativePrice,
		},
		{
			name:     "unknown category",
			services: []entities.ServiceOption{{ID: "x", Name: "x", Category: "wheels"}},
			want:     ErrUnknownCategory,
		},
		{
			name: "duplicate service",
			services: []entities.ServiceOption{
				{ID: "x", Name: "x", Category: entities.ServiceCategoryInterior},
				{ID: "x", Name: "y", Category: entities.ServiceCategoryInterior},
			},
			want: ErrDuplicateID,
		},
		{
			name:     "duplicate package",
			packages: []entities.PackageOption{{ID: "p", Name: "p"}, {ID: "p", Name: "q"}},
			want:     ErrDuplicateID,
		},
		{
			name:     "negative flat price",
			packages: []entities.PackageOption{{ID: "p", Name: "p", FlatPrice: -10}},
			want:     ErrNegativePrice,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.services, tc.packages)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("must load panics on malformed entry", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic")
			}
		}()
		MustLoad([]entities.ServiceOption{{ID: "x"}}, nil)
	})
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := Default()
	services := c.Services()
	services[0].UnitPrice = 1

	again, _ := c.Service(services[0].ID)
	if again.UnitPrice == 1 {
		t.Fatalf("catalog entry was mutated through returned slice")
	}
	if _, ok := c.Service("unknown"); ok {
		t.Fatalf("expected unknown service lookup to fail")
	}
}
