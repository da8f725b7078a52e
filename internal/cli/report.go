package cli

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"guessing-toolbox/internal/bench"
)

// RenderReport prints the box-plot-style comparison of all strategies: one
// row per range size, each cell holding the median, quartiles, and whiskers
// of a strategy's guess counts, alongside the log2(S) and S reference
// columns the plot in the original exercise drew as curves.
func RenderReport(w io.Writer, rs *bench.ResultSet) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Guesses until success by range size")

	header := table.Row{"Size"}
	for _, name := range rs.Strategies() {
		header = append(header, ColorizeStrategy(name))
	}
	header = append(header, "log2(S)", "S")
	t.AppendHeader(header)

	for _, size := range rs.RangeSizes() {
		row := table.Row{size}
		for _, name := range rs.Strategies() {
			counts, ok := rs.Series(name, size)
			if !ok {
				row = append(row, "")
				continue
			}
			if counts == nil {
				row = append(row, C.No.Sprint("no result"))
				continue
			}
			s, err := bench.Summarize(counts)
			if err != nil {
				return err
			}
			cell := fmt.Sprintf("med %.1f  q %.1f..%.1f  [%d..%d]",
				s.Median, s.Q1, s.Q3, int(s.Min), int(s.Max))
			if c, colored := StrategyColors[name]; colored {
				cell = c.Sprint(cell)
			}
			row = append(row, cell)
		}
		row = append(row, fmt.Sprintf("%.2f", math.Log2(float64(size))), size)
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()

	return renderComparison(w, rs)
}

// renderComparison picks the two best strategies on the largest benchmarked
// range and reports whether the gap between them is statistically solid.
func renderComparison(w io.Writer, rs *bench.ResultSet) error {
	sizes := rs.RangeSizes()
	if len(sizes) == 0 {
		return nil
	}
	largest := sizes[len(sizes)-1]

	type contender struct {
		name   string
		counts []int
		mean   float64
	}
	var contenders []contender
	for _, name := range rs.Strategies() {
		counts, ok := rs.Series(name, largest)
		if !ok || counts == nil {
			continue
		}
		s, err := bench.Summarize(counts)
		if err != nil {
			return err
		}
		contenders = append(contenders, contender{name: name, counts: counts, mean: s.Mean})
	}
	if len(contenders) < 2 {
		return nil
	}
	sort.SliceStable(contenders, func(i, j int) bool { return contenders[i].mean < contenders[j].mean })

	first, second := contenders[0], contenders[1]
	cmp, err := bench.Compare(first.name, first.counts, second.name, second.counts)
	if err != nil {
		return err
	}
	C.Info.Fprintf(w, "\nOn range size %d, %s averages %.1f guesses vs %.1f for %s",
		largest, ColorizeStrategy(first.name), first.mean, second.mean, ColorizeStrategy(second.name))
	if cmp.Significant {
		C.Yes.Fprintf(w, " (significant, p=%.4f)\n", cmp.P)
	} else {
		C.Maybe.Fprintf(w, " (not significant, p=%.4f)\n", cmp.P)
	}
	return nil
}
