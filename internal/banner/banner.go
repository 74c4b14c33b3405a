package banner

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// PrintBanner writes the startup banner to stdout.
func PrintBanner() {
	fig := figure.NewColorFigure("FilterSight", "doom", "cyan", true)
	fig.Print()

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	_, _ = cyan.Println("════════════════════════════════════════════════")
	_, _ = green.Println("    Content-filter block checker | https://github.com/filtersight/filtersight")
	_, _ = cyan.Println("════════════════════════════════════════════════")
}
