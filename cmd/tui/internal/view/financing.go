package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kearneyfs/prearrange/internal/arrangement"
	"github.com/kearneyfs/prearrange/internal/financing"
	"github.com/kearneyfs/prearrange/internal/invoice"
)

// FinancingModel shows the time-pay quote for the applicant's age and lets
// the user pick a term or move Journey Home to single pay.
type FinancingModel struct {
	CommonModel
	svc *arrangement.Service
	arr *arrangement.Arrangement

	quote  financing.Quote
	cursor int
	err    error
}

func NewFinancingModel(svc *arrangement.Service, arr *arrangement.Arrangement) FinancingModel {
	m := FinancingModel{svc: svc, arr: arr}
	m.refresh()

	return m
}

func (m *FinancingModel) refresh() {
	m.quote, m.err = m.svc.Quote(m.arr)
}

func (m FinancingModel) Title() string { return "Financing" }

func (m FinancingModel) ShortHelp() string {
	return "Up/Down: move | Enter: select term | j: toggle Journey Home single pay | Esc: back"
}

func (m FinancingModel) Init() tea.Cmd {
	return nil
}

func (m FinancingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(financing.Terms)-1 {
			m.cursor++
		}
	case "j":
		m.svc.SetSinglePayJourneyHome(m.arr, !m.arr.SinglePayJourneyHome)
		m.refresh()
	case "enter":
		if m.err != nil {
			return m, nil
		}

		_, err := m.svc.SelectPaymentTerm(m.arr, financing.Terms[m.cursor])
		if err != nil {
			m.err = err
		} else {
			m.refresh()
		}
	}

	return m, nil
}

func (m FinancingModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()) + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
		b.WriteString(faintStyle.Render("set the applicant's birthdate under Client Information") + "\n")
		b.WriteString("\n" + faintStyle.Render("Esc: back"))

		return padStyle.Render(b.String())
	}

	b.WriteString(fmt.Sprintf("Financed principal: %s\n\n", m.quote.Principal.StringFixed(2)))

	for i, term := range financing.Terms {
		monthly, available := m.quote.Monthly(term)

		amount := "not offered"
		if available {
			amount = monthly.StringFixed(2) + " / month"
		}

		line := fmt.Sprintf("%2d years   %s", term, amount)
		if term == m.arr.PaymentTerm {
			line += "   (selected)"
		}

		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line + "\n")
	}

	journeyHome := "with Time Pay"
	if m.arr.SinglePayJourneyHome {
		journeyHome = "Single Pay"
	}

	b.WriteString(fmt.Sprintf("\nJourney Home: %s\n", journeyHome))
	b.WriteString(fmt.Sprintf("Single Pay %s   Time Pay %s   Total 4 %s\n",
		m.arr.Fields[invoice.FieldSinglePay],
		m.arr.Fields[invoice.FieldTimePay],
		m.arr.Fields[invoice.FieldTotal4],
	))

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return padStyle.Render(b.String())
}
