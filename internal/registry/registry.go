package registry

import (
	"errors"
	"strings"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
)

// ErrUnknownCity is returned when a lookup name is not in the registry.
var ErrUnknownCity = errors.New("unknown city")

// Registry holds the canonical city list. Read-only after construction.
type Registry struct {
	cities []model.City
	byName map[string]model.City
}

// New builds the registry from the compiled-in city list.
func New() *Registry {
	return newFrom(cities)
}

func newFrom(list []model.City) *Registry {
	r := &Registry{
		cities: list,
		byName: make(map[string]model.City, len(list)),
	}
	for _, c := range list {
		r.byName[normalize(c.Name)] = c
	}
	// Also index the bare city name ("Toronto" for "Toronto, Canada") so
	// lookups work without the country suffix. The full name stays
	// canonical; an already-taken short name is left alone.
	for _, c := range list {
		short, _, found := strings.Cut(c.Name, ",")
		if !found {
			continue
		}
		key := normalize(short)
		if _, taken := r.byName[key]; !taken {
			r.byName[key] = c
		}
	}
	return r
}

// All returns every city. Callers must not modify the returned slice.
func (r *Registry) All() []model.City {
	return r.cities
}

// Get looks a city up by name, case-insensitively.
func (r *Registry) Get(name string) (model.City, error) {
	c, ok := r.byName[normalize(name)]
	if !ok {
		return model.City{}, ErrUnknownCity
	}
	return c, nil
}

func (r *Registry) Len() int {
	return len(r.cities)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
