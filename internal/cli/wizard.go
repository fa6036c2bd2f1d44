package cli

import (
	"fmt"

	"github.com/alexanderramin/capgrid/internal/cli/formatter"
	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/grid"
	"github.com/alexanderramin/capgrid/internal/service"
	"github.com/alexanderramin/capgrid/internal/sheet"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// capgridHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func capgridHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// rowOptions lists rows as "index  indented name" options. Rows the policy
// refuses are marked as summaries.
func rowOptions(view domain.ViewKind, rows []domain.FlatRow, policy sheet.Policy) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(rows))
	for i, r := range rows {
		label := fmt.Sprintf("%3d  %s", i, grid.DisplayName(view, r))
		if !policy.Editable(r) {
			label += " (summary)"
		}
		options = append(options, huh.NewOption(label, i))
	}
	return options
}

// fieldOptions lists the editable fields of a view.
func fieldOptions(view domain.ViewKind, labels []domain.WeekLabel) []huh.Option[string] {
	var options []huh.Option[string]
	if view == domain.ViewAdmin {
		for _, f := range []string{sheet.FieldName, sheet.FieldSkill, sheet.FieldInfo} {
			options = append(options, huh.NewOption(f, f))
		}
		return options
	}
	for i, l := range labels {
		if !domain.ValidWeek(i + 1) {
			break
		}
		options = append(options, huh.NewOption(l.Label(), sheet.WeekField(i+1)))
	}
	return options
}

// editWizard builds the form that fills the missing parts of in.
func editWizard(in *editInput, rows []domain.FlatRow, labels []domain.WeekLabel) *huh.Form {
	policy := service.PolicyFor(in.view)
	if in.field == "" {
		in.field = sheet.WeekField(1)
		if in.view == domain.ViewAdmin {
			in.field = sheet.FieldName
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which row?").
				Options(rowOptions(in.view, rows, policy)...).
				Height(10).
				Value(&in.row),
			huh.NewSelect[string]().
				Title("Which column?").
				Options(fieldOptions(in.view, labels)...).
				Height(8).
				Value(&in.field),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Value").
				Description("Hours for week columns; blank clears to 0").
				Value(&in.value),
		),
	).WithTheme(capgridHuhTheme()).WithShowHelp(false)
}
