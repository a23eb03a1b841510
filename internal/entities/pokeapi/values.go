package pokeapi

import "slices"

// Learn method slug for moves learned by leveling up
const LearnMethodLevelUp = "level-up"

// Defaults applied when a lookup does not say otherwise
const (
	DefaultLanguage     = "en"
	DefaultVersionGroup = "scarlet-violet"
)

// Languages are the language codes PokeAPI provides names in
var Languages = []string{
	"ja-Hrkt", "roomaji", "ko", "zh-Hant", "fr", "de", "es", "it", "en", "cs", "ja", "zh-Hans", "pt-BR",
}

// Types are the slugs of the eighteen elemental types
var Types = []string{
	"normal", "fighting", "flying", "poison", "ground", "rock", "bug", "ghost", "steel",
	"fire", "water", "grass", "electric", "psychic", "ice", "dragon", "dark", "fairy",
}

// Versions are the game version slugs encounters can be filtered by
var Versions = []string{
	"red", "blue", "yellow", "gold", "silver", "crystal", "ruby", "sapphire", "emerald",
	"firered", "leafgreen", "diamond", "pearl", "platinum", "heartgold", "soulsilver",
	"black", "white", "colosseum", "xd", "black-2", "white-2", "x", "y",
	"omega-ruby", "alpha-sapphire", "sun", "moon", "ultra-sun", "ultra-moon",
	"lets-go-pikachu", "lets-go-eevee", "sword", "shield", "the-isle-of-armor",
	"the-crown-tundra", "brilliant-diamond", "shining-pearl", "legends-arceus",
	"scarlet", "violet", "the-teal-mask", "the-indigo-disk", "legends-za", "mega-dimension",
}

// VersionGroups are the version group slugs moves can be filtered by
var VersionGroups = []string{
	"red-blue", "yellow", "gold-silver", "crystal", "ruby-sapphire", "emerald",
	"firered-leafgreen", "diamond-pearl", "platinum", "heartgold-soulsilver",
	"black-white", "colosseum", "xd", "black-2-white-2", "x-y",
	"omega-ruby-alpha-sapphire", "sun-moon", "ultra-sun-ultra-moon",
	"lets-go-pikachu-lets-go-eevee", "sword-shield", "the-isle-of-armor",
	"the-crown-tundra", "brilliant-diamond-and-shining-pearl", "legends-arceus",
	"scarlet-violet", "the-teal-mask", "the-indigo-disk", "legends-za", "mega-dimension",
}

// IsLanguage reports whether code is a known language code
func IsLanguage(code string) bool { return slices.Contains(Languages, code) }

// IsType reports whether slug is a known type
func IsType(slug string) bool { return slices.Contains(Types, slug) }

// IsVersion reports whether slug is a known game version
func IsVersion(slug string) bool { return slices.Contains(Versions, slug) }

// IsVersionGroup reports whether slug is a known version group
func IsVersionGroup(slug string) bool { return slices.Contains(VersionGroups, slug) }
