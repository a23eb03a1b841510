package builders

import (
	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
)

// LinkBuilder provides a fluent interface for building evolution trees
type LinkBuilder struct {
	link entities.ChainLink
}

// Link starts a chain node for species, reached through details
func Link(species string, details ...entities.EvolutionDetail) *LinkBuilder {
	return &LinkBuilder{
		link: entities.ChainLink{
			Species:          Ref("pokemon-species", species),
			EvolutionDetails: details,
		},
	}
}

// EvolvesTo appends child nodes
func (b *LinkBuilder) EvolvesTo(children ...*LinkBuilder) *LinkBuilder {
	for _, child := range children {
		b.link.EvolvesTo = append(b.link.EvolvesTo, child.Build())
	}
	return b
}

// Build returns the built node
func (b *LinkBuilder) Build() entities.ChainLink {
	return b.link
}

// Chain wraps a root node into a chain with an id
func Chain(id int, root *LinkBuilder) *entities.EvolutionChain {
	return &entities.EvolutionChain{ID: id, Chain: root.Build()}
}

// DetailBuilder provides a fluent interface for building evolution details
type DetailBuilder struct {
	detail entities.EvolutionDetail
}

// Trigger starts an evolution detail with a trigger slug
func Trigger(slug string) *DetailBuilder {
	return &DetailBuilder{detail: entities.EvolutionDetail{Trigger: Ref("evolution-trigger", slug)}}
}

// LevelUp is Trigger("level-up")
func LevelUp() *DetailBuilder { return Trigger("level-up") }

// UseItem is Trigger("use-item").WithItem(item)
func UseItem(item string) *DetailBuilder { return Trigger("use-item").WithItem(item) }

// WithItem sets the item
func (b *DetailBuilder) WithItem(slug string) *DetailBuilder {
	r := Ref("item", slug)
	b.detail.Item = &r
	return b
}

// WithHeldItem sets the held item
func (b *DetailBuilder) WithHeldItem(slug string) *DetailBuilder {
	r := Ref("item", slug)
	b.detail.HeldItem = &r
	return b
}

// WithGender sets the required gender id
func (b *DetailBuilder) WithGender(gender int) *DetailBuilder {
	b.detail.Gender = &gender
	return b
}

// WithKnownMove sets the known move
func (b *DetailBuilder) WithKnownMove(slug string) *DetailBuilder {
	r := Ref("move", slug)
	b.detail.KnownMove = &r
	return b
}

// WithKnownMoveType sets the known move type
func (b *DetailBuilder) WithKnownMoveType(slug string) *DetailBuilder {
	r := Ref("type", slug)
	b.detail.KnownMoveType = &r
	return b
}

// WithLocation sets the location
func (b *DetailBuilder) WithLocation(slug string) *DetailBuilder {
	r := Ref("location", slug)
	b.detail.Location = &r
	return b
}

// WithMinLevel sets the minimum level
func (b *DetailBuilder) WithMinLevel(level int) *DetailBuilder {
	b.detail.MinLevel = &level
	return b
}

// WithMinHappiness sets the minimum happiness
func (b *DetailBuilder) WithMinHappiness(v int) *DetailBuilder {
	b.detail.MinHappiness = &v
	return b
}

// WithMinBeauty sets the minimum beauty
func (b *DetailBuilder) WithMinBeauty(v int) *DetailBuilder {
	b.detail.MinBeauty = &v
	return b
}

// WithMinAffection sets the minimum affection
func (b *DetailBuilder) WithMinAffection(v int) *DetailBuilder {
	b.detail.MinAffection = &v
	return b
}

// WithOverworldRain requires rain in the overworld
func (b *DetailBuilder) WithOverworldRain() *DetailBuilder {
	b.detail.NeedsOverworldRain = true
	return b
}

// WithPartySpecies sets the required party species
func (b *DetailBuilder) WithPartySpecies(slug string) *DetailBuilder {
	r := Ref("pokemon-species", slug)
	b.detail.PartySpecies = &r
	return b
}

// WithPartyType sets the required party type
func (b *DetailBuilder) WithPartyType(slug string) *DetailBuilder {
	r := Ref("type", slug)
	b.detail.PartyType = &r
	return b
}

// WithRelativePhysicalStats sets the attack/defense comparison
func (b *DetailBuilder) WithRelativePhysicalStats(v int) *DetailBuilder {
	b.detail.RelativePhysicalStats = &v
	return b
}

// WithTimeOfDay sets the time of day
func (b *DetailBuilder) WithTimeOfDay(t string) *DetailBuilder {
	b.detail.TimeOfDay = t
	return b
}

// WithTradeSpecies sets the species to trade with
func (b *DetailBuilder) WithTradeSpecies(slug string) *DetailBuilder {
	r := Ref("pokemon-species", slug)
	b.detail.TradeSpecies = &r
	return b
}

// WithUpsideDown requires the console turned upside down
func (b *DetailBuilder) WithUpsideDown() *DetailBuilder {
	b.detail.TurnUpsideDown = true
	return b
}

// Build returns the built detail
func (b *DetailBuilder) Build() entities.EvolutionDetail {
	return b.detail
}
