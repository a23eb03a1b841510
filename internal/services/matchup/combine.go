// Package matchup computes the damage multipliers a pokemon of one or two
// types takes from every attacking type, and renders them as a table or a
// list.
package matchup

import (
	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
)

// Buckets holds the attacking types per damage multiplier. A type appears
// in at most one bucket; types dealing normal damage appear in none.
type Buckets struct {
	Zero    []entities.Resource
	Quarter []entities.Resource
	Half    []entities.Resource
	Double  []entities.Resource
	Quad    []entities.Resource
}

// Combine merges the damage relations of primary and, when non-nil,
// secondary. The secondary's immunities are applied before its
// resistances and weaknesses, so a single immunity always wins.
func Combine(primary, secondary *entities.Type) Buckets {
	rel := primary.DamageRelations
	b := Buckets{
		Zero:   clone(rel.NoDamageFrom),
		Half:   clone(rel.HalfDamageFrom),
		Double: clone(rel.DoubleDamageFrom),
	}
	if secondary == nil {
		return b
	}

	for _, t := range secondary.DamageRelations.NoDamageFrom {
		if remove(&b.Half, t) || remove(&b.Double, t) || !contains(b.Zero, t) {
			b.Zero = append(b.Zero, t)
		}
	}

	for _, t := range secondary.DamageRelations.HalfDamageFrom {
		if remove(&b.Half, t) {
			b.Quarter = append(b.Quarter, t)
			continue
		}
		// double x half is normal damage
		if remove(&b.Double, t) {
			continue
		}
		if !contains(b.Zero, t) {
			b.Half = append(b.Half, t)
		}
	}

	for _, t := range secondary.DamageRelations.DoubleDamageFrom {
		// half x double is normal damage
		if remove(&b.Half, t) {
			continue
		}
		if remove(&b.Double, t) {
			b.Quad = append(b.Quad, t)
			continue
		}
		if !contains(b.Zero, t) {
			b.Double = append(b.Double, t)
		}
	}

	return b
}

func clone(refs []entities.Resource) []entities.Resource {
	return append([]entities.Resource(nil), refs...)
}

func contains(refs []entities.Resource, t entities.Resource) bool {
	for _, r := range refs {
		if r.Name == t.Name {
			return true
		}
	}
	return false
}

// remove deletes t from refs keeping the order of the rest, and reports
// whether it was there
func remove(refs *[]entities.Resource, t entities.Resource) bool {
	for i, r := range *refs {
		if r.Name == t.Name {
			*refs = append((*refs)[:i], (*refs)[i+1:]...)
			return true
		}
	}
	return false
}
