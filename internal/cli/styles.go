package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const uiDivider = "──────────────────────────────────────────────────────"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Bold(true)
)

// renderPage draws a titled block of key/value lines.
func renderPage(title, data string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	return b.String()
}

// renderTable draws rows under headers with a rounded border.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render() + "\n"
}

func renderEmpty(what string) string {
	return helpStyle.Render("No "+what+" found") + "\n"
}

func renderOK(msg string) string {
	return okStyle.Render(msg) + "\n"
}

func field(name, value string) string {
	return name + ": " + valueOrNA(value)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// bar renders count as a proportional bar of at most width cells.
func bar(count, max, width int) string {
	if max <= 0 || count <= 0 {
		return ""
	}
	n := count * width / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
