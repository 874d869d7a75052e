package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kearneyfs/prearrange/internal/arrangement"
	"github.com/kearneyfs/prearrange/internal/invoice"
)

type discountsState int

const (
	discountsStateBrowsing discountsState = iota
	discountsStateEditing
)

// DiscountsModel edits the discount ledger. Every commit recalculates the
// statement so the discount and tax fields stay current.
type DiscountsModel struct {
	CommonModel
	svc *arrangement.Service
	arr *arrangement.Arrangement

	state  discountsState
	cursor int

	// Editing either an existing row (editID >= 0) or a new one.
	editID      int
	description textinput.Model
	amount      textinput.Model
	onAmount    bool
}

func NewDiscountsModel(svc *arrangement.Service, arr *arrangement.Arrangement) DiscountsModel {
	description := textinput.New()
	description.Placeholder = "description"
	description.CharLimit = 64

	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.CharLimit = 16

	return DiscountsModel{
		svc:         svc,
		arr:         arr,
		editID:      -1,
		description: description,
		amount:      amount,
	}
}

func (m DiscountsModel) Title() string { return "Discounts" }

func (m DiscountsModel) ShortHelp() string {
	if m.state == discountsStateEditing {
		return "Tab: switch field | Enter: save | Esc: cancel"
	}

	return "a: add | Enter: edit | x: remove | Esc: back"
}

func (m DiscountsModel) Init() tea.Cmd {
	return nil
}

func (m DiscountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == discountsStateEditing {
		return m.updateEditing(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rows := m.arr.Discounts.Rows()

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "a":
		return m.startEditing(-1, "", ""), textinput.Blink
	case "enter":
		if m.cursor < len(rows) {
			row := rows[m.cursor]

			return m.startEditing(row.ID, row.Description, row.Amount), textinput.Blink
		}
	case "x":
		if m.cursor < len(rows) {
			m.arr.Discounts.Remove(rows[m.cursor].ID)
			m.svc.Recalculate(m.arr)

			if m.cursor > 0 {
				m.cursor--
			}
		}
	}

	return m, nil
}

func (m DiscountsModel) startEditing(id int, description, amount string) DiscountsModel {
	m.state = discountsStateEditing
	m.editID = id
	m.description.SetValue(description)
	m.amount.SetValue(amount)
	m.onAmount = false
	m.description.Focus()
	m.amount.Blur()

	return m
}

func (m DiscountsModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = discountsStateBrowsing

			return m, nil
		case tea.KeyTab:
			m.onAmount = !m.onAmount
			if m.onAmount {
				m.description.Blur()
				m.amount.Focus()
			} else {
				m.amount.Blur()
				m.description.Focus()
			}

			return m, textinput.Blink
		case tea.KeyEnter:
			m.commit()
			m.state = discountsStateBrowsing

			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.onAmount {
		m.amount, cmd = m.amount.Update(msg)
	} else {
		m.description, cmd = m.description.Update(msg)
	}

	return m, cmd
}

func (m *DiscountsModel) commit() {
	description := strings.TrimSpace(m.description.Value())
	amount := strings.TrimSpace(m.amount.Value())

	if m.editID >= 0 {
		m.arr.Discounts.Update(m.editID, description, amount)
	} else if description != "" || amount != "" {
		m.arr.Discounts.Add(description, amount)
	}

	m.svc.Recalculate(m.arr)
}

func (m DiscountsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()) + "\n\n")

	rows := m.arr.Discounts.Rows()
	if len(rows) == 0 {
		b.WriteString(faintStyle.Render("no discounts") + "\n")
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-40s %10s", truncate(row.Description, 40), row.Amount)

		switch {
		case m.state == discountsStateEditing && row.ID == m.editID:
			line = selectedStyle.Render(m.description.View() + " " + m.amount.View())
		case i == m.cursor:
			line = selectedStyle.Render("> " + line)
		default:
			line = "  " + line
		}

		b.WriteString(line + "\n")
	}

	if m.state == discountsStateEditing && m.editID < 0 {
		b.WriteString(selectedStyle.Render(m.description.View()+" "+m.amount.View()) + "\n")
	}

	b.WriteString(fmt.Sprintf("\nDiscount Total %s   GST %s   Grand Total %s\n",
		m.arr.Fields[invoice.FieldDiscount],
		m.arr.Fields[invoice.FieldGST],
		m.arr.Fields[invoice.FieldGrandTotal],
	))

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return padStyle.Render(b.String())
}
