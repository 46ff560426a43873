// Package ward provides the static registry of administrative wards.
package ward

// Ward represents a single administrative ward.
type Ward struct {
	ID   int
	Name string
	Zone string
	Lat  float64
	Lon  float64
}

// HasCoordinates reports whether the ward carries a usable location.
// Wards without surveyed coordinates are stored as 0,0.
func (w Ward) HasCoordinates() bool {
	return w.Lat != 0 || w.Lon != 0
}

// Registry is a read-only lookup table of wards. It is built once at
// process start and never mutated afterward; updates happen only by
// redeploying with a new ward table.
type Registry struct {
	wards []Ward
	byID  map[int]int
}

// NewRegistry builds a registry from the given ward table. Input order is
// preserved and used as the canonical registry order for stable sorts.
// Duplicate IDs keep the first entry.
func NewRegistry(wards []Ward) *Registry {
	r := &Registry{
		wards: make([]Ward, 0, len(wards)),
		byID:  make(map[int]int, len(wards)),
	}
	for _, w := range wards {
		if _, exists := r.byID[w.ID]; exists {
			continue
		}
		r.byID[w.ID] = len(r.wards)
		r.wards = append(r.wards, w)
	}
	return r
}

// DefaultRegistry builds a registry from the built-in ward table.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultWards())
}

// ByID returns the ward with the given ID.
func (r *Registry) ByID(id int) (Ward, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Ward{}, false
	}
	return r.wards[idx], true
}

// All returns every ward in registry order. The returned slice is a copy.
func (r *Registry) All() []Ward {
	out := make([]Ward, len(r.wards))
	copy(out, r.wards)
	return out
}

// Order returns the registry position of a ward ID, used as a stable
// tie-break in rankings. Unknown IDs sort last.
func (r *Registry) Order(id int) int {
	if idx, ok := r.byID[id]; ok {
		return idx
	}
	return len(r.wards)
}

// Zones returns the distinct zone names in first-seen order.
func (r *Registry) Zones() []string {
	seen := make(map[string]bool)
	var zones []string
	for _, w := range r.wards {
		if !seen[w.Zone] {
			seen[w.Zone] = true
			zones = append(zones, w.Zone)
		}
	}
	return zones
}

// Count returns the number of wards in the registry.
func (r *Registry) Count() int {
	return len(r.wards)
}
