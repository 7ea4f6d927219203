package positions

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Report pairs the per-contract figures with the position-level
// exposure for display.
type Report struct {
	Unit     BSMGreeks
	Position BSMGreeks
}

func (r Report) String() string {
	display := &strings.Builder{}

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"", "Premium", "Delta", "Gamma(1%)", "Theta(1d)", "Vega(1%)", "Rho(1%)"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	table.Append(greeksRow("Unit", r.Unit))
	table.Append(greeksRow("Position ($)", r.Position))

	table.Render()
	return display.String()
}

func greeksRow(label string, g BSMGreeks) []string {
	return []string{
		label,
		fmt.Sprintf("%.4f", g.Premium),
		fmt.Sprintf("%.4f", g.Delta),
		fmt.Sprintf("%.4f", g.Gamma),
		fmt.Sprintf("%.4f", g.Theta),
		fmt.Sprintf("%.4f", g.Vega),
		fmt.Sprintf("%.4f", g.Rho),
	}
}
