package analyze

import (
	"fmt"
	"go/types"
	"strings"

	"beanpath/internal/common"
)

// TypeString renders t with packages qualified by their last path element,
// "time.Time" rather than the full import path.
func TypeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		return common.PkgAlias(p.Path())
	})
}

// String renders the report as an aligned table of getters and setters,
// one per line, followed by its diagnostics.
func (r *TypeReport) String() string {
	var b strings.Builder

	b.WriteString(r.ID.String())
	b.WriteByte('\n')

	rows := make([][5]string, 0, len(r.Getters)+len(r.Setters))

	for _, a := range r.Getters {
		rows = append(rows, [5]string{"get", a.Property, a.Kind.String(), a.Member, a.Type})
	}

	for _, a := range r.Setters {
		rows = append(rows, [5]string{"set", a.Property, a.Kind.String(), a.Member, a.Type})
	}

	var widths [5]int

	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	for _, row := range rows {
		b.WriteString(" ")

		for i, cell := range row {
			if i == len(row)-1 {
				fmt.Fprintf(&b, " %s", cell)
				continue
			}

			fmt.Fprintf(&b, " %-*s", widths[i], cell)
		}

		b.WriteByte('\n')
	}

	for _, d := range r.Diagnostics.All() {
		fmt.Fprintf(&b, "  %s: %s\n", d.Severity, d)
	}

	return b.String()
}
