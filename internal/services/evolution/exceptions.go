package evolution

// transform is a species-specific rewrite of the generic output
type transform int

const (
	none transform = iota
	// prependRoot puts the bare root species on its own line at the front.
	// Used where the evolution belongs to a regional form only, so the
	// regular form of the root does not evolve at all.
	prependRoot
	// relabelFinal puts the root->child line at the front and continues the
	// child's own evolutions from the bare child name.
	relabelFinal
	// duplicateFirst puts a copy of the root->child line at the front and
	// keeps the extended line, so both the child and its evolution show as
	// endpoints.
	duplicateFirst
)

// exceptions is keyed by the slug of a species that evolves from the root
var exceptions = map[string]transform{
	"sirfetchd":   prependRoot,
	"overqwil":    prependRoot,
	"cursola":     prependRoot,
	"basculegion": prependRoot,
	"mr-mime":     relabelFinal,
	"linoone":     duplicateFirst,
}

// showAllRoots are chain roots whose regional forms evolve differently, so
// every method is listed even without Options.All.
var showAllRoots = []string{
	"rattata", "sandshrew", "vulpix", "meowth", "cubone", "slowpoke", "darumaka",
}

// expectsLeaf reports whether the transform assumes the species has no
// further evolutions
func (t transform) expectsLeaf() bool {
	return t == prependRoot
}

func (t transform) String() string {
	switch t {
	case prependRoot:
		return "prepend_root"
	case relabelFinal:
		return "relabel_final"
	case duplicateFirst:
		return "duplicate_first"
	default:
		return "none"
	}
}
