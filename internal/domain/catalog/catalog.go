package catalog

import (
	"errors"
	"fmt"
	"strings"

	"estimate_wizard/internal/domain/entities"
)

var (
	ErrEmptyID         = errors.New("catalog entry has empty id")
	ErrDuplicateID     = errors.New("catalog entry id is duplicated")
	ErrEmptyName       = errors.New("catalog entry has empty name")
	ErrNegativePrice   = errors.New("catalog entry has negative price")
	ErrUnknownCategory = errors.New("catalog entry has unknown category")
)

// Catalog is the read-only list of services and packages. It is built once
// at startup and shared by every wizard.
type Catalog struct {
	services   []entities.ServiceOption
	packages   []entities.PackageOption
	serviceIdx map[string]int
	packageIdx map[string]int
}

// Load validates the given entries and builds a catalog. A malformed entry
// is a build-time bug, so the error is meant to stop the process.
func Load(services []entities.ServiceOption, packages []entities.PackageOption) (*Catalog, error) {
	c := &Catalog{
		services:   make([]entities.ServiceOption, 0, len(services)),
		packages:   make([]entities.PackageOption, 0, len(packages)),
		serviceIdx: make(map[string]int, len(services)),
		packageIdx: make(map[string]int, len(packages)),
	}

	for _, s := range services {
		if err := checkEntry(s.ID, s.Name, s.UnitPrice); err != nil {
			return nil, fmt.Errorf("service %q: %w", s.ID, err)
		}
		if !s.Category.Valid() {
			return nil, fmt.Errorf("service %q: %w", s.ID, ErrUnknownCategory)
		}
		if _, ok := c.serviceIdx[s.ID]; ok {
			return nil, fmt.Errorf("service %q: %w", s.ID, ErrDuplicateID)
		}
		c.serviceIdx[s.ID] = len(c.services)
		c.services = append(c.services, s)
	}

	for _, p := range packages {
		if err := checkEntry(p.ID, p.Name, p.FlatPrice); err != nil {
			return nil, fmt.Errorf("package %q: %w", p.ID, err)
		}
		if _, ok := c.packageIdx[p.ID]; ok {
			return nil, fmt.Errorf("package %q: %w", p.ID, ErrDuplicateID)
		}
		c.packageIdx[p.ID] = len(c.packages)
		c.packages = append(c.packages, p)
	}

	return c, nil
}

// MustLoad is Load for static data known at compile time.
func MustLoad(services []entities.ServiceOption, packages []entities.PackageOption) *Catalog {
	c, err := Load(services, packages)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the shop's catalog.
func Default() *Catalog {
	return MustLoad(DefaultServices(), DefaultPackages())
}

func checkEntry(id, name string, price float64) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Services returns the services in catalog order.
func (c *Catalog) Services() []entities.ServiceOption {
	return append([]entities.ServiceOption(nil), c.services...)
}

func (c *Catalog) Packages() []entities.PackageOption {
	return append([]entities.PackageOption(nil), c.packages...)
}

func (c *Catalog) Service(id string) (entities.ServiceOption, bool) {
	i, ok := c.serviceIdx[id]
	if !ok {
		return entities.ServiceOption{}, false
	}
	return c.services[i], true
}

func (c *Catalog) Package(id string) (entities.PackageOption, bool) {
	i, ok := c.packageIdx[id]
	if !ok {
		return entities.PackageOption{}, false
	}
	return c.packages[i], true
}
