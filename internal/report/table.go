package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter renders the banner and one row per run.
type TableFormatter struct{}

// Format renders doc as a banner followed by a table.
func (f *TableFormatter) Format(doc *Document) (string, error) {
	if doc == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Run", "Ads", "Did TX", "Reduction", "Would TX", "Dropped", "Resets"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	for _, r := range doc.Runs {
		if r == nil {
			continue
		}
		t.AppendRow(table.Row{
			r.Run,
			r.Counters.Originals,
			r.Actual,
			percent(r.Reduction),
			r.Counterfactual,
			r.Counters.Dropped,
			r.Resets,
		})
	}

	s := doc.Summary
	if s.Runs > 0 {
		t.AppendFooter(table.Row{
			"mean",
			"",
			fmt.Sprintf("%.0f", s.MeanActual),
			percent(s.MeanReduction),
			fmt.Sprintf("%.0f", s.MeanCounterfactual),
			"",
			"",
		})
	}

	rendered := Banner(doc.Scenario) + "\n" + t.Render() + "\n"
	if s.Runs > 1 {
		rendered += fmt.Sprintf("Reduction over %d runs: mean %.1f%%, sd %.1f%%, min %.1f%%, max %.1f%%\n",
			s.Runs, s.MeanReduction*100, s.StdDevReduction*100, s.MinReduction*100, s.MaxReduction*100)
	}
	return rendered, nil
}
