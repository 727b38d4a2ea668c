package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/five82/pulse/internal/crm"
	"github.com/five82/pulse/internal/listview"
)

// Contact column keys, in table order.
const (
	colName         = "name"
	colCompany      = "company"
	colEmail        = "email"
	colStage        = "stage"
	colValue        = "value"
	colLastActivity = "last_activity"
)

// sortShortcuts maps the number keys to sortable columns.
var sortShortcuts = map[string]string{
	"1": colName,
	"2": colCompany,
	"3": colStage,
	"4": colValue,
	"5": colLastActivity,
}

var contactHeaders = []struct{ key, label string }{
	{colName, "Name"},
	{colCompany, "Company"},
	{colEmail, "Email"},
	{colStage, "Stage"},
	{colValue, "Value"},
	{colLastActivity, "Last activity"},
}

// contactSchema is the accessor table for contacts. Search covers name,
// company, email and stage.
func contactSchema() *listview.Schema[crm.Contact] {
	schema, err := listview.NewSchema([]listview.Field[crm.Contact]{
		listview.TextField(colName, func(c crm.Contact) string { return c.Name }),
		listview.TextField(colCompany, func(c crm.Contact) string { return c.Company }),
		listview.TextField(colEmail, func(c crm.Contact) string { return c.Email }),
		listview.TextField(colStage, func(c crm.Contact) string { return string(c.Stage) }),
		listview.NumberField(colValue, func(c crm.Contact) int64 { return c.Value }),
		listview.TextField(colLastActivity, func(c crm.Contact) string { return c.LastActivity }),
	}, colName, colCompany, colEmail, colStage)
	if err != nil {
		panic(err)
	}
	return schema
}

// contactsPane owns the contact table view state and its search box.
type contactsPane struct {
	view      *listview.View[crm.Contact]
	search    textinput.Model
	searching bool
	pager     paginator.Model
}

func newContactsPane(contacts []crm.Contact, pageSize int) *contactsPane {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "name, company, email or stage"
	search.CharLimit = 64

	pager := paginator.New()
	pager.Type = paginator.Dots

	return &contactsPane{
		view:   listview.NewView(contactSchema(), contacts, listview.State{PageSize: pageSize}),
		search: search,
		pager:  pager,
	}
}

// contactRow is one rendered table row.
type contactRow struct {
	Name         string
	Company      string
	Email        string
	Stage        crm.Stage
	Value        string
	LastActivity string
}

// contactRows projects a page into display rows.
func contactRows(page listview.Page[crm.Contact]) []contactRow {
	rows := make([]contactRow, 0, len(page.Items))
	for _, c := range page.Items {
		rows = append(rows, contactRow{
			Name:         c.Name,
			Company:      c.Company,
			Email:        c.Email,
			Stage:        c.Stage,
			Value:        "$" + humanize.Comma(c.Value),
			LastActivity: c.LastActivity,
		})
	}
	return rows
}

// handleContactsKey handles keys while the table has focus.
func (m *Model) handleContactsKey(msg tea.KeyMsg) tea.Cmd {
	p := m.contacts
	switch {
	case key.Matches(msg, m.keys.Search):
		p.searching = true
		p.search.SetValue(p.view.State().Query)
		p.search.CursorEnd()
		return p.search.Focus()
	case key.Matches(msg, m.keys.SortKeys):
		p.view.SortBy(sortShortcuts[msg.String()])
	case key.Matches(msg, m.keys.PrevPage):
		p.view.PrevPage()
	case key.Matches(msg, m.keys.NextPage):
		p.view.NextPage()
	}
	return nil
}

// handleContactsSearchKey filters as the user types. Enter keeps the query,
// esc clears it.
func (m *Model) handleContactsSearchKey(msg tea.KeyMsg) tea.Cmd {
	p := m.contacts
	switch {
	case key.Matches(msg, m.keys.Confirm):
		p.searching = false
		p.search.Blur()
		return nil
	case key.Matches(msg, m.keys.Escape):
		p.searching = false
		p.search.Blur()
		p.search.SetValue("")
		p.view.SetQuery("")
		return nil
	}

	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	p.view.SetQuery(p.search.Value())
	return cmd
}

// renderContacts renders the search line, the table and the pager.
func (m Model) renderContacts(width, height int) string {
	p := m.contacts
	page := p.view.Page()
	st := p.view.State()
	styles := m.theme.Styles()

	var top string
	switch {
	case p.searching:
		top = p.search.View()
	case st.Query != "":
		top = styles.AccentText.Render("/"+st.Query) + styles.FaintText.Render("  (/ to edit)")
	default:
		top = styles.FaintText.Render("/ to search")
	}
	summary := styles.MutedText.Render(fmt.Sprintf("%d %s", page.Total, plural(page.Total, "contact", "contacts")))
	top = padRight(top, max(width-lipgloss.Width(summary)-2, 0)) + summary

	headers := make([]string, len(contactHeaders))
	for i, h := range contactHeaders {
		label := h.label
		if h.key == st.SortKey {
			label += " " + sortArrow(st.SortDir)
		}
		headers[i] = label
	}

	rows := contactRows(page)
	stageCol := 3
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Name, r.Company, r.Email, string(r.Stage), r.Value, r.LastActivity})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Accent)).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text)).Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border))).
		Headers(headers...).
		Rows(cells...).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == stageCol && row >= 0 && row < len(rows) {
				return styles.StageStyle(rows[row].Stage)
			}
			return cellStyle
		})

	body := tbl.String()
	if len(rows) == 0 {
		body += "\n" + styles.MutedText.Render("No contacts match "+fmt.Sprintf("%q", st.Query))
	}

	pager := p.pager
	pager.TotalPages = page.TotalPages
	pager.Page = page.Page - 1
	pager.ActiveDot = styles.AccentText.Render("•")
	pager.InactiveDot = styles.FaintText.Render("•")
	footer := pager.View() + styles.MutedText.Render(fmt.Sprintf("  page %d of %d", page.Page, page.TotalPages))

	return strings.Join([]string{top, body, footer}, "\n")
}

func sortArrow(dir listview.Direction) string {
	if dir == listview.Desc {
		return "▼"
	}
	return "▲"
}
