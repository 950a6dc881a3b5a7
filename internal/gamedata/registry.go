package gamedata

import (
	"errors"
)

// FerryRegistry holds loaded ferry definitions and provides lookup utilities.
type FerryRegistry struct {
	ferries map[string]*FerryDef
	all     []FerryDef
}

// NewFerryRegistry creates a registry from loaded ferry definitions.
func NewFerryRegistry(ferries []FerryDef) *FerryRegistry {
	registry := &FerryRegistry{
		ferries: make(map[string]*FerryDef),
		all:     ferries,
	}
	for i := range ferries {
		registry.ferries[ferries[i].ID] = &ferries[i]
	}
	return registry
}

// LoadFerryRegistry loads and creates a registry from the embedded ferries.json.
func LoadFerryRegistry() (*FerryRegistry, error) {
	ferries, err := LoadFerries()
	if err != nil {
		return nil, err
	}
	if len(ferries) == 0 {
		return nil, errors.New("no ferries loaded from ferries.json")
	}
	return NewFerryRegistry(ferries), nil
}

// GetByID returns the ferry definition with the given ID, or nil if not found.
func (r *FerryRegistry) GetByID(id string) *FerryDef {
	return r.ferries[id]
}

// Starting returns the free tier every player begins with: the first
// definition with zero cost, or the first definition if none is free.
func (r *FerryRegistry) Starting() *FerryDef {
	for i := range r.all {
		if r.all[i].Cost == 0 {
			return &r.all[i]
		}
	}
	if len(r.all) == 0 {
		return nil
	}
	return &r.all[0]
}

// All returns all ferry definitions.
func (r *FerryRegistry) All() []FerryDef {
	return r.all
}

// Count returns the number of ferry tiers in the registry.
func (r *FerryRegistry) Count() int {
	return len(r.all)
}
