package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/tensorplex-labs/coincidence/internal/coincidence"
)

const maxBarWidth = 40

// Plot draws the linked and non-linked coincidence rates of each feature as
// horizontal bars, features ordered by descending jl ratio. Undefined ratios
// print as n/a.
func Plot(w io.Writer, title string, results []coincidence.Result) {
	sorted := make([]coincidence.Result, len(results))
	copy(sorted, results)

	// NaN sorts last
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Ratios.JL, sorted[j].Ratios.JL
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		return a > b
	})

	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintf(w, "%-20s | %-5s | %s\n", "Feature", "Rate", "Bar Chart")
	fmt.Fprintln(w, strings.Repeat("-", 21)+"|-------|"+strings.Repeat("-", maxBarWidth+10))

	for _, res := range sorted {
		fmt.Fprintf(w, "%-20s | jl    | %s\n", res.Feature, bar(res.Ratios.JL))
		fmt.Fprintf(w, "%-20s | jnl   | %s\n", "", bar(res.Ratios.JNL))
	}

	fmt.Fprintf(w, "\nBar width represents the ratio (0 to %d chars)\n", maxBarWidth)
}

func bar(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	width := int(math.Round(v * maxBarWidth))
	b := strings.Repeat("█", width)
	if width == 0 {
		b = "▏"
	}
	return fmt.Sprintf("%s (%.4f)", b, v)
}
