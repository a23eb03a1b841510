// Package evolution flattens PokeAPI evolution trees into printable lines.
//
// Every root-to-leaf path through the tree becomes one line per combination
// of evolution methods along it:
//
//	Eevee -> Use item (item: Water Stone) -> Vaporeon
//	Zigzagoon -> Level up (min_level: 20) -> Linoone -> Level up (min_level: 35, time_of_day: night) -> Obstagoon
//
// A first stage without any recorded method is shown once as
// "root -> ??? -> child" and not followed further. A later stage without one
// is skipped, leaving the line to end at its parent.
package evolution

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/services/names"
)

// SecretName replaces species names in secret mode
const SecretName = "MON"

const (
	separator     = " -> "
	unknownMethod = "???"
)

// Options controls post-processing of the lines
type Options struct {
	// Secret replaces every species name with MON
	Secret bool
	// All keeps outdated methods that the collapsing pass would drop
	All bool
}

// Linearizer renders evolution chains with a name resolver
type Linearizer struct {
	resolver *names.Resolver
}

// New creates a Linearizer resolving names through resolver
func New(resolver *names.Resolver) *Linearizer {
	return &Linearizer{resolver: resolver}
}

// segment is one " -> " separated part of a line. Species segments carry
// the species slug; method segments leave it empty.
type segment struct {
	text    string
	species string
}

type line []segment

func (ln line) extend(segs ...segment) line {
	out := make(line, 0, len(ln)+len(segs))
	out = append(out, ln...)
	return append(out, segs...)
}

func (ln line) speciesPath() []string {
	var path []string
	for _, seg := range ln {
		if seg.species != "" {
			path = append(path, seg.species)
		}
	}
	return path
}

func (ln line) render(secret bool) string {
	parts := make([]string, len(ln))
	for i, seg := range ln {
		parts[i] = seg.text
		if secret && seg.species != "" {
			parts[i] = SecretName
		}
	}
	return strings.Join(parts, separator)
}

// Linearize flattens the tree rooted at root into display lines
func (l *Linearizer) Linearize(ctx context.Context, root entities.ChainLink, opts Options) []string {
	lb := l.labels(ctx, root, opts.Secret)
	rootSeg := lb.speciesSegment(root.Species)

	var lines []line
	if len(root.EvolvesTo) == 0 {
		lines = []line{{rootSeg}}
	}

	for _, child := range root.EvolvesTo {
		childSeg := lb.speciesSegment(child.Species)
		if len(child.EvolutionDetails) == 0 {
			lines = append(lines, line{rootSeg, {text: unknownMethod}, childSeg})
			continue
		}
		for _, method := range lb.methods(child) {
			first := line{rootSeg, method, childSeg}
			lines = l.apply(lines, first, child, lb)
		}
	}

	if !opts.All && !slices.Contains(showAllRoots, root.Species.Name) {
		lines = collapse(lines)
	}

	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.render(opts.Secret)
	}
	return out
}

// apply appends the lines of one root->child method to lines, rewriting
// them when the child has a species exception
func (l *Linearizer) apply(lines []line, first line, child entities.ChainLink, lb *labels) []line {
	t := exceptions[child.Species.Name]
	if t != none && t.expectsLeaf() != (len(child.EvolvesTo) == 0) {
		slog.Warn("evolution exception no longer matches chain shape",
			"species", child.Species.Name,
			"transform", t.String(),
			"evolves_to", len(child.EvolvesTo))
	}

	switch t {
	case prependRoot:
		lines = slices.Insert(lines, 0, line{first[0]})
		return append(lines, lb.extendAll(first, child)...)
	case relabelFinal:
		lines = slices.Insert(lines, 0, first)
		return append(lines, lb.extendAll(line{first[len(first)-1]}, child)...)
	case duplicateFirst:
		lines = slices.Insert(lines, 0, first)
		return append(lines, lb.extendAll(first, child)...)
	default:
		return append(lines, lb.extendAll(first, child)...)
	}
}

// collapse keeps only the last line of every run of consecutive lines that
// visit the same species
func collapse(lines []line) []line {
	var out []line
	for i, ln := range lines {
		if i+1 < len(lines) && slices.Equal(ln.speciesPath(), lines[i+1].speciesPath()) {
			continue
		}
		out = append(out, ln)
	}
	return out
}

// labels holds every display name a chain needs, resolved up front
type labels struct {
	species    map[string]string
	conditions map[string]string
}

func (l *Linearizer) labels(ctx context.Context, root entities.ChainLink, secret bool) *labels {
	var species, conditions []entities.Resource
	walk(root, func(link entities.ChainLink) {
		species = append(species, link.Species)
		for _, d := range link.EvolutionDetails {
			conditions = append(conditions, d.Trigger)
			conditions = append(conditions, namedConditions(d)...)
		}
	})

	speciesResolver := l.resolver
	if secret {
		speciesResolver = l.resolver.Unresolved()
	}

	return &labels{
		species:    resolveAll(ctx, speciesResolver, species),
		conditions: resolveAll(ctx, l.resolver, conditions),
	}
}

func resolveAll(ctx context.Context, r *names.Resolver, refs []entities.Resource) map[string]string {
	refs = uniqueByURL(refs)
	out := make(map[string]string, len(refs))
	for i, name := range r.FollowAll(ctx, refs) {
		out[refs[i].URL] = name
	}
	return out
}

func uniqueByURL(refs []entities.Resource) []entities.Resource {
	seen := make(map[string]bool, len(refs))
	out := refs[:0:0]
	for _, ref := range refs {
		if seen[ref.URL] {
			continue
		}
		seen[ref.URL] = true
		out = append(out, ref)
	}
	return out
}

func lookupLabel(m map[string]string, ref entities.Resource) string {
	if name, ok := m[ref.URL]; ok {
		return name
	}
	return ref.Name
}

func (lb *labels) speciesSegment(ref entities.Resource) segment {
	return segment{text: lookupLabel(lb.species, ref), species: ref.Name}
}

func (lb *labels) condition(ref entities.Resource) string {
	return lookupLabel(lb.conditions, ref)
}

// methods returns one method segment per way of evolving into link, none
// when the link has no recorded details
func (lb *labels) methods(link entities.ChainLink) []segment {
	out := make([]segment, len(link.EvolutionDetails))
	for i, d := range link.EvolutionDetails {
		text := lb.condition(d.Trigger)
		if summary := Summarize(d, lb.condition); summary != "" {
			text += " (" + summary + ")"
		}
		out[i] = segment{text: text}
	}
	return out
}

// extendAll continues prefix, which ends at node, through every further
// evolution of node. prefix itself is returned when node is a leaf or none
// of its evolutions has a recorded method.
func (lb *labels) extendAll(prefix line, node entities.ChainLink) []line {
	var out []line
	for _, child := range node.EvolvesTo {
		childSeg := lb.speciesSegment(child.Species)
		for _, method := range lb.methods(child) {
			out = append(out, lb.extendAll(prefix.extend(method, childSeg), child)...)
		}
	}
	if len(out) == 0 {
		return []line{prefix}
	}
	return out
}

func walk(link entities.ChainLink, visit func(entities.ChainLink)) {
	visit(link)
	for _, child := range link.EvolvesTo {
		walk(child, visit)
	}
}
