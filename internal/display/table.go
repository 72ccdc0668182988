package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hammamikhairi/shopmania/internal/domain"
	"github.com/hammamikhairi/shopmania/internal/ingredient"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52525b"))
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bbf7d0")).Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8")).Padding(0, 1)
)

// Table renders ingredients as an amount | unit | ingredient table in list
// order. Amounts are right aligned and units centred. An empty list renders
// as the empty string.
func Table(items []domain.Ingredient) string {
	if len(items) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{ingredient.FormatAmount(it.Amount), it.Unit, it.Name})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		BorderRow(false).
		Headers("amount", "unit", "ingredient").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := tableCellStyle
			if row == table.HeaderRow {
				style = tableHeaderStyle
			}
			switch col {
			case 0:
				return style.Align(lipgloss.Right)
			case 1:
				return style.Align(lipgloss.Center)
			default:
				return style.Align(lipgloss.Left)
			}
		})

	return t.String()
}
