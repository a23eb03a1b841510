package matchup

import (
	"context"
	"strings"
	"unicode/utf8"

	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/services/names"
)

// DefaultColumnWidth is the table column width in runes
const DefaultColumnWidth = 12

// Columns are buckets resolved to display names. Every column has the
// same length; unused cells hold "", and no name follows a "".
type Columns struct {
	Zero    []string
	Quarter []string
	Half    []string
	Double  []string
	Quad    []string
}

// Resolve looks up the display names of every type in b in one batch and
// pads the columns to equal length
func Resolve(ctx context.Context, r *names.Resolver, b Buckets) Columns {
	groups := [][]entities.Resource{b.Zero, b.Quarter, b.Half, b.Double, b.Quad}

	var all []entities.Resource
	for _, g := range groups {
		all = append(all, g...)
	}
	resolved := r.FollowAll(ctx, all)

	cols := make([][]string, len(groups))
	offset := 0
	for i, g := range groups {
		end := offset + len(g)
		cols[i] = resolved[offset:end:end]
		offset = end
	}

	c := Columns{Zero: cols[0], Quarter: cols[1], Half: cols[2], Double: cols[3], Quad: cols[4]}
	c.pad()
	return c
}

func (c *Columns) pad() {
	rows := 0
	for _, col := range c.all() {
		rows = max(rows, len(*col))
	}
	for _, col := range c.all() {
		for len(*col) < rows {
			*col = append(*col, "")
		}
	}
}

func (c *Columns) all() []*[]string {
	return []*[]string{&c.Zero, &c.Quarter, &c.Half, &c.Double, &c.Quad}
}

// Rows returns the number of table rows
func (c Columns) Rows() int {
	return len(c.Zero)
}

type column struct {
	header string
	label  string
	cells  []string
}

func (c Columns) columns(dual bool) []column {
	if !dual {
		return []column{
			{"*0", "0x", c.Zero},
			{"*0.5", "0.5x", c.Half},
			{"*2", "2x", c.Double},
		}
	}
	return []column{
		{"*0", "0x", c.Zero},
		{"*0.25", "0.25x", c.Quarter},
		{"*0.5", "0.5x", c.Half},
		{"*2", "2x", c.Double},
		{"*4", "4x", c.Quad},
	}
}

// Renderer formats resolved columns
type Renderer struct {
	ColumnWidth int
}

// NewRenderer creates a Renderer; widths below one use DefaultColumnWidth
func NewRenderer(columnWidth int) *Renderer {
	if columnWidth < 1 {
		columnWidth = DefaultColumnWidth
	}
	return &Renderer{ColumnWidth: columnWidth}
}

// Table renders centered multiplier headers, a dashed rule and one
// left-aligned row per entry. Dual tables include the quarter and
// quadruple columns.
func (r *Renderer) Table(c Columns, dual bool) []string {
	cols := c.columns(dual)

	header := make([]string, len(cols))
	rule := make([]string, len(cols))
	for i, col := range cols {
		header[i] = center(col.header, r.ColumnWidth)
		rule[i] = strings.Repeat("-", r.ColumnWidth)
	}

	lines := []string{strings.Join(header, " "), strings.Join(rule, " ")}
	for row := 0; row < c.Rows(); row++ {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = left(col.cells[row], r.ColumnWidth)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

// List renders title followed by one section per non-empty multiplier,
// separated by blank lines
func (r *Renderer) List(title string, c Columns, dual bool) []string {
	lines := []string{title + ":"}
	first := true
	for _, col := range c.columns(dual) {
		if len(col.cells) == 0 || col.cells[0] == "" {
			continue
		}
		if !first {
			lines = append(lines, "")
		}
		first = false

		lines = append(lines, " - "+col.label+":")
		for _, name := range col.cells {
			if name == "" {
				break
			}
			lines = append(lines, "   * "+name)
		}
	}
	return lines
}

// center pads s to width runes, putting the odd space on the right
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	l := pad / 2
	return strings.Repeat(" ", l) + s + strings.Repeat(" ", pad-l)
}

func left(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
