package sink

import (
	"bytes"
	"notification-lab/contract"
	"notification-lab/delivery"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Formatter turns a statistics report into display lines.
type Formatter func(report delivery.Report) []string

const (
	FormatLines = "lines"
	FormatTable = "table"
)

// NewFormatter returns the formatter registered under name, plain lines
// being the fallback.
func NewFormatter(name string) Formatter {
	if name == FormatTable {
		return Table
	}
	return Lines
}

func Lines(report delivery.Report) []string {
	return report.Lines()
}

// Table keeps the report header and renders one row per message with its
// ledger counts and the number of losses.
func Table(report delivery.Report) []string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Code", "Body", "Sent", "Received", "Read", "Lost"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, m := range report.Messages {
		table.Append([]string{
			strconv.Itoa(m.Code),
			m.Body,
			strconv.Itoa(m.Sent),
			strconv.Itoa(m.Received),
			strconv.Itoa(m.Read),
			strconv.Itoa(m.Sent - m.Received),
		})
	}
	table.Render()

	lines := report.Header()
	return append(lines, strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")...)
}

// Show displays every line in order.
func Show(sink contract.LineSink, lines []string) {
	for _, line := range lines {
		sink.Display(line)
	}
}
