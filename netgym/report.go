package netgym

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	reportTitleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	reportHeaderStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	reportCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// RenderStepHistory renders the n most-recent steps of the ledger as a
// table, newest first. Metrics the variant never recorded show as "-",
// as do slots beyond the recorded count. Reporting only reads the ledger;
// it never feeds back into the control path.
func RenderStepHistory(h *History, n int) string {
	columns := []struct {
		header string
		metric string
		format string
	}{
		{"# step", MetricStep, "%.0f"},
		{"total thpt (Mbps)", MetricTotalThpt, "%.2f"},
		{"VR thpt (Mbps)", MetricVRThpt, "%.2f"},
		{"VR delay (ms)", MetricVRDelay, "%.2f"},
		{"reward", MetricReward, "%.2f"},
		{"OBSS_PD (dBm)", MetricObssPD, "%.0f"},
		{"TX power (dBm)", MetricTxPower, "%.0f"},
	}

	headers := make([]string, len(columns))
	series := make([][]float64, len(columns))
	for i, c := range columns {
		headers[i] = c.header
		series[i] = h.Recent(c.metric, n)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return reportHeaderStyle
			}
			return reportCellStyle
		}).
		Headers(headers...)

	for i := 0; i < n; i++ {
		row := make([]string, len(columns))
		for j, c := range columns {
			v := series[j][i]
			if math.IsNaN(v) {
				row[j] = "-"
			} else {
				row[j] = fmt.Sprintf(c.format, v)
			}
		}
		t.Row(row...)
	}

	title := reportTitleStyle.Render(fmt.Sprintf("Step history (showing %d records)", n))
	return title + "\n" + t.Render()
}
