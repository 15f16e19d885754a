package board

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucsky/cuid"
	"github.com/rodizioboard/rodizio/internal/models"
)

// AddFlavor registers a new flavor and keeps the list alphabetically sorted.
func (b *Board) AddFlavor(name, category string) (models.Flavor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Flavor{}, fmt.Errorf("%w: flavor name is required", models.ErrValidation)
	}
	if !models.ValidCategory(category) {
		return models.Flavor{}, fmt.Errorf("%w: category must be %q or %q", models.ErrValidation, models.CategorySweet, models.CategorySavory)
	}

	flavor := models.Flavor{
		ID:       cuid.New(),
		Name:     name,
		Category: category,
	}
	b.state.Catalog.Flavors = append(b.state.Catalog.Flavors, flavor)
	b.sortFlavors()
	if err := b.persist(); err != nil {
		return models.Flavor{}, err
	}
	return flavor, nil
}

// RenameFlavor changes a flavor's name in place. Orders that snapshotted the
// old name keep it; historical records are immutable.
func (b *Board) RenameFlavor(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: flavor name is required", models.ErrValidation)
	}
	flavor := b.findFlavor(id)
	if flavor == nil {
		return fmt.Errorf("%w: flavor %s", models.ErrNotFound, id)
	}
	flavor.Name = newName
	b.sortFlavors()
	return b.persist()
}

// DeleteFlavor removes a flavor by id. Deleting an absent id is a no-op.
func (b *Board) DeleteFlavor(id string) error {
	kept := b.state.Catalog.Flavors[:0]
	for _, f := range b.state.Catalog.Flavors {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	b.state.Catalog.Flavors = kept
	return b.persist()
}

// ListFlavors returns the whole flavor list, already sorted by name.
func (b *Board) ListFlavors() []models.Flavor {
	out := make([]models.Flavor, len(b.state.Catalog.Flavors))
	copy(out, b.state.Catalog.Flavors)
	return out
}

// ListFlavorsByCategory filters by category; the result keeps the
// alphabetical order of the stored list. Feeds the order-entry select.
func (b *Board) ListFlavorsByCategory(category string) []models.Flavor {
	var out []models.Flavor
	for _, f := range b.state.Catalog.Flavors {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// AddServer registers a wait-staff member.
func (b *Board) AddServer(name string) (models.Server, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Server{}, fmt.Errorf("%w: server name is required", models.ErrValidation)
	}

	server := models.Server{
		ID:   cuid.New(),
		Name: name,
	}
	b.state.Catalog.Servers = append(b.state.Catalog.Servers, server)
	b.sortServers()
	if err := b.persist(); err != nil {
		return models.Server{}, err
	}
	return server, nil
}

// RenameServer changes a server's name in place.
func (b *Board) RenameServer(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: server name is required", models.ErrValidation)
	}
	server := b.findServer(id)
	if server == nil {
		return fmt.Errorf("%w: server %s", models.ErrNotFound, id)
	}
	server.Name = newName
	b.sortServers()
	return b.persist()
}

// DeleteServer removes a server by id. Deleting an absent id is a no-op.
func (b *Board) DeleteServer(id string) error {
	kept := b.state.Catalog.Servers[:0]
	for _, s := range b.state.Catalog.Servers {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	b.state.Catalog.Servers = kept
	return b.persist()
}

// ListServers returns the wait staff sorted by name.
func (b *Board) ListServers() []models.Server {
	out := make([]models.Server, len(b.state.Catalog.Servers))
	copy(out, b.state.Catalog.Servers)
	return out
}

func (b *Board) findFlavor(id string) *models.Flavor {
	for i := range b.state.Catalog.Flavors {
		if b.state.Catalog.Flavors[i].ID == id {
			return &b.state.Catalog.Flavors[i]
		}
	}
	return nil
}

func (b *Board) findServer(id string) *models.Server {
	for i := range b.state.Catalog.Servers {
		if b.state.Catalog.Servers[i].ID == id {
			return &b.state.Catalog.Servers[i]
		}
	}
	return nil
}

func (b *Board) sortFlavors() {
	flavors := b.state.Catalog.Flavors
	sort.SliceStable(flavors, func(i, j int) bool {
		return b.compareNames(flavors[i].Name, flavors[j].Name) < 0
	})
}

func (b *Board) sortServers() {
	servers := b.state.Catalog.Servers
	sort.SliceStable(servers, func(i, j int) bool {
		return b.compareNames(servers[i].Name, servers[j].Name) < 0
	})
}
