package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kearneyfs/prearrange/internal/arrangement"
	"github.com/kearneyfs/prearrange/internal/catalog"
	"github.com/kearneyfs/prearrange/internal/invoice"
	"github.com/kearneyfs/prearrange/internal/money"
)

type invoiceState int

const (
	invoiceStateBrowsing invoiceState = iota
	invoiceStateEditing
	invoiceStatePicking
)

type rowKind int

const (
	rowAmount rowKind = iota
	rowCatalog
	rowQuantity
	rowText
)

// invoiceRow is one editable line of the statement. Catalog rows open the
// item picker; quantity rows derive their amount from a fixed unit price.
type invoiceRow struct {
	name string
	code string
	kind rowKind

	catalogKind catalog.Kind
	labelField  string
	keepsake    bool

	quantityField string
	setQuantity   func(invoice.FieldSet, string)
}

func invoiceRows() []invoiceRow {
	return []invoiceRow{
		{name: "A. Securing and Transfer of Deceased", code: "A1"},
		{name: "A. Services of Licensed Funeral Directors", code: "A2A"},
		{name: "A. Pallbearers", code: "A2B", labelField: "Pallbearers", kind: rowText},
		{name: "A. Alternate Day Interment", code: "A2C", labelField: "Alternate Day Interment 1", kind: rowText},
		{name: "A. Alternate Day Interment (2)", code: "A2D", labelField: "Alternate Day Interment 2", kind: rowText},
		{name: "A. Administration and Documents", code: "A3"},
		{name: "A. Facilities for Services", code: "A4A"},
		{name: "A. Shelter of Remains", code: "A4B"},
		{name: "A. Facilities (Other)", code: "A4C"},
		{name: "A. Sanitary Care, Dressing and Casketing", code: "A5A"},
		{name: "A. Embalming", code: "A5B"},
		{name: "A. Pacemaker Removal", code: "A5C", labelField: "Pacemaker Removal", kind: rowText},
		{name: "A. Autopsy Care", code: "A5D", labelField: "Autopsy Care", kind: rowText},
		{name: "A. Evening Prayers or Visitation", code: "A6", kind: rowCatalog, catalogKind: catalog.KindViewing, labelField: invoice.FieldViewing},
		{name: "A. Weekend or Statutory Holiday", code: "A7", kind: rowCatalog, catalogKind: catalog.KindWeekend, labelField: invoice.FieldWeekend},
		{name: "A. Reception Facilities", code: "A8", kind: rowCatalog, catalogKind: catalog.KindReceptionFacility, labelField: invoice.FieldReceptionFacilities},
		{name: "A. Delivery of Cremated Remains", code: "A9A", labelField: "Delivery of Cremated Remains", kind: rowText},
		{name: "A. Transfer to Crematorium or Airport", code: "A9B", labelField: "Transfer to Crematorium or Airport", kind: rowText},
		{name: "A. Lead Vehicle", code: "A9C", labelField: "Lead Vehicle", kind: rowText},
		{name: "A. Service Vehicle", code: "A9D", labelField: "Service Vehicle", kind: rowText},
		{name: "A. Funeral Coach", code: "A9E", labelField: "Funeral Coach", kind: rowText},
		{name: "A. Limousine", code: "A9F", kind: rowCatalog, catalogKind: catalog.KindLimousine, labelField: invoice.FieldLimousine},
		{name: "A. Additional Limousines", code: "A9G", labelField: "Additional Limousines", kind: rowText},
		{name: "A. Flower Van", code: "A9H", labelField: "Flower Van", kind: rowText},

		{name: "B. Casket", code: "B1", kind: rowCatalog, catalogKind: catalog.KindCasket, labelField: invoice.FieldCasket},
		{name: "B. Urn", code: "B2", kind: rowCatalog, catalogKind: catalog.KindUrn, labelField: invoice.FieldUrn},
		{name: "B. Keepsake", code: "B3", kind: rowCatalog, catalogKind: catalog.KindUrn, labelField: "Keepsake", keepsake: true},
		{name: "B. Traditional Mourning Items", code: "B4", labelField: "Traditional Mourning Items", kind: rowText},
		{name: "B. Memorial Stationary (Cards)", code: "B5", kind: rowQuantity, quantityField: invoice.FieldCardsQuantity, setQuantity: invoice.SetCardQuantity},
		{name: "B. Funeral Register (Guest Books)", code: "B6", kind: rowQuantity, quantityField: invoice.FieldGuestBooksQuantity, setQuantity: invoice.SetGuestBookQuantity},
		{name: "B. Other", code: "B7", labelField: invoice.FieldOther1, kind: rowText},

		{name: "C. Cemetery", code: "C1", labelField: "Cemetery", kind: rowText},
		{name: "C. Crematorium", code: "C2", kind: rowCatalog, catalogKind: catalog.KindCrematorium, labelField: invoice.FieldCrematorium},
		{name: "C. Obituary Notices", code: "C3", labelField: "Obituary Notices", kind: rowText},
		{name: "C. Flowers", code: "C4", labelField: "Flowers", kind: rowText},
		{name: "C. CPBC Administration Fee", code: "C5", labelField: "CPBC Administration Fee", kind: rowText},
		{name: "C. Hostess", code: "C6", labelField: "Hostess", kind: rowText},
		{name: "C. Markers", code: "C7", labelField: "Markers", kind: rowText},
		{name: "C. Catering", code: "C8", labelField: "Catering", kind: rowText},
		{name: "C. Other (2)", code: "C9", labelField: invoice.FieldOther2, kind: rowText},
		{name: "C. Other (3)", code: "C10", kind: rowCatalog, catalogKind: catalog.KindMiscOther, labelField: invoice.FieldOther3},

		{name: "D. Clergy Honorarium", code: "D1", labelField: "Clergy Honorarium", kind: rowText},
		{name: "D. Church Honorarium", code: "D2", labelField: "Church Honorarium", kind: rowText},
		{name: "D. Altar Servers", code: "D3", labelField: "Altar Servers", kind: rowText},
		{name: "D. Organist", code: "D4", labelField: "Organist", kind: rowText},
		{name: "D. Soloist", code: "D5", labelField: "Soloist", kind: rowText},
		{name: "D. Harpist", code: "D6", labelField: "Harpist", kind: rowText},
		{name: "D. Death Certificates", code: "D7", kind: rowQuantity, quantityField: invoice.FieldDeathCertQuantity, setQuantity: invoice.SetDeathCertificateQuantity},
		{name: "D. Other (4)", code: "D8", labelField: invoice.FieldOther4, kind: rowText},
	}
}

// InvoiceModel edits the statement line by line and recalculates after every
// change.
type InvoiceModel struct {
	CommonModel
	svc *arrangement.Service
	arr *arrangement.Arrangement

	state  invoiceState
	rows   []invoiceRow
	cursor int

	// Editing an amount, quantity or description text.
	input       textinput.Model
	editingText bool

	// Picking a catalog item.
	query   textinput.Model
	matches []catalog.Item
	pick    int

	err error
}

func NewInvoiceModel(svc *arrangement.Service, arr *arrangement.Arrangement) InvoiceModel {
	input := textinput.New()
	input.CharLimit = 64

	query := textinput.New()
	query.Placeholder = "type to search"

	return InvoiceModel{
		svc:   svc,
		arr:   arr,
		rows:  invoiceRows(),
		input: input,
		query: query,
	}
}

func (m InvoiceModel) Title() string { return "Statement of Goods and Services" }

func (m InvoiceModel) ShortHelp() string {
	switch m.state {
	case invoiceStateEditing:
		return "Enter: save | Esc: cancel"
	case invoiceStatePicking:
		return "Enter: select | Up/Down: move | Esc: cancel"
	}

	return "Up/Down: move | Enter: edit amount | Space: pick item/edit text | x: clear | Esc: back"
}

func (m InvoiceModel) Init() tea.Cmd {
	return nil
}

func (m InvoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case invoiceStateBrowsing:
		return m.updateBrowsing(msg)
	case invoiceStateEditing:
		return m.updateEditing(msg)
	case invoiceStatePicking:
		return m.updatePicking(msg)
	}

	return m, nil
}

func (m InvoiceModel) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	row := m.rows[m.cursor]

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "enter":
		return m.startEditing(row), textinput.Blink
	case " ":
		switch row.kind {
		case rowCatalog:
			return m.startPicking(row), textinput.Blink
		case rowText, rowQuantity:
			return m.startTextEditing(row), textinput.Blink
		}
	case "x":
		m.clearRow(row)
	}

	return m, nil
}

func (m InvoiceModel) startEditing(row invoiceRow) InvoiceModel {
	m.state = invoiceStateEditing
	m.editingText = false

	switch row.kind {
	case rowQuantity:
		m.input.SetValue(m.arr.Fields[row.quantityField])
	default:
		m.input.SetValue(m.arr.Fields[row.code])
	}

	m.input.Focus()

	return m
}

func (m InvoiceModel) startTextEditing(row invoiceRow) InvoiceModel {
	if row.kind == rowQuantity {
		return m.startEditing(row)
	}

	m.state = invoiceStateEditing
	m.editingText = true
	m.input.SetValue(m.arr.Fields[row.labelField])
	m.input.Focus()

	return m
}

func (m InvoiceModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = invoiceStateBrowsing
			m.input.Blur()

			return m, nil
		case tea.KeyEnter:
			m.commitEdit()
			m.state = invoiceStateBrowsing
			m.input.Blur()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *InvoiceModel) commitEdit() {
	row := m.rows[m.cursor]
	value := strings.TrimSpace(m.input.Value())

	switch {
	case row.kind == rowQuantity && !m.editingText:
		row.setQuantity(m.arr.Fields, value)
	case m.editingText:
		m.arr.Fields[row.labelField] = value
	default:
		// Hand-typed dollar amounts are normalized to display form on
		// entry; anything unparseable is kept as typed and reads as zero.
		if amount, ok := money.Parse(value); ok && value != "" {
			m.arr.Fields.SetAmount(row.code, amount)
		} else {
			m.arr.Fields[row.code] = value
		}
	}

	m.svc.Recalculate(m.arr)
}

func (m *InvoiceModel) clearRow(row invoiceRow) {
	m.arr.Fields[row.code] = ""

	if row.labelField != "" {
		m.arr.Fields[row.labelField] = ""
	}

	if row.quantityField != "" {
		m.arr.Fields[row.quantityField] = ""
	}

	m.svc.Recalculate(m.arr)
}

func (m InvoiceModel) startPicking(row invoiceRow) InvoiceModel {
	m.state = invoiceStatePicking
	m.query.SetValue("")
	m.query.Focus()
	m.matches = m.arr.Catalogs.Search(row.catalogKind, "")
	m.pick = 0

	return m
}

func (m InvoiceModel) updatePicking(msg tea.Msg) (tea.Model, tea.Cmd) {
	row := m.rows[m.cursor]

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = invoiceStateBrowsing
			m.query.Blur()

			return m, nil
		case "up":
			if m.pick > 0 {
				m.pick--
			}

			return m, nil
		case "down":
			if m.pick < len(m.matches)-1 {
				m.pick++
			}

			return m, nil
		case "enter":
			if m.pick < len(m.matches) {
				m.selectItem(row, m.matches[m.pick].Label)
			}

			m.state = invoiceStateBrowsing
			m.query.Blur()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)

	m.matches = m.arr.Catalogs.Search(row.catalogKind, m.query.Value())
	if m.pick >= len(m.matches) {
		m.pick = 0
	}

	return m, cmd
}

func (m *InvoiceModel) selectItem(row invoiceRow, label string) {
	var err error

	if row.keepsake {
		_, err = m.svc.SelectKeepsake(m.arr, label)
	} else {
		_, err = m.svc.SelectItem(m.arr, row.catalogKind, label)
	}

	m.err = err
}

func (m InvoiceModel) View() string {
	switch m.state {
	case invoiceStatePicking:
		return m.viewPicker()
	default:
		return m.viewRows()
	}
}

const visibleRows = 18

func (m InvoiceModel) viewRows() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()) + "\n\n")

	start := 0
	if m.cursor >= visibleRows {
		start = m.cursor - visibleRows + 1
	}

	end := start + visibleRows
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := start; i < end; i++ {
		row := m.rows[i]

		line := fmt.Sprintf("%-40s %-30s %10s",
			truncate(row.name, 40),
			truncate(m.rowDescription(row), 30),
			m.arr.Fields[row.code],
		)

		if i == m.cursor {
			if m.state == invoiceStateEditing {
				line = selectedStyle.Render(fmt.Sprintf("%-40s %s", truncate(row.name, 40), m.input.View()))
			} else {
				line = selectedStyle.Render("> " + line)
			}
		} else {
			line = "  " + line
		}

		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + m.viewTotals())

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return padStyle.Render(b.String())
}

func (m InvoiceModel) rowDescription(row invoiceRow) string {
	if row.kind == rowQuantity {
		if qty := m.arr.Fields[row.quantityField]; qty != "" {
			return "qty " + qty
		}

		return ""
	}

	if row.labelField != "" {
		return m.arr.Fields[row.labelField]
	}

	return ""
}

func (m InvoiceModel) viewTotals() string {
	f := m.arr.Fields

	totals := fmt.Sprintf(
		"Total A %s   Total B %s   Total C %s   Total D %s\nDiscount %s   GST %s   PST %s   Grand Total %s",
		f[invoice.FieldTotalA], f[invoice.FieldTotalB], f[invoice.FieldTotalC], f[invoice.FieldTotalD],
		f[invoice.FieldDiscount], f[invoice.FieldGST], f[invoice.FieldPST], f[invoice.FieldGrandTotal],
	)

	return lipgloss.NewStyle().Bold(true).Render(totals)
}

func (m InvoiceModel) viewPicker() string {
	var b strings.Builder

	row := m.rows[m.cursor]

	b.WriteString(titleStyle.Render(row.name) + "\n\n")
	b.WriteString(m.query.View() + "\n\n")

	const maxMatches = 12

	for i, item := range m.matches {
		if i >= maxMatches {
			b.WriteString(faintStyle.Render(fmt.Sprintf("  ... %d more", len(m.matches)-maxMatches)) + "\n")
			break
		}

		line := fmt.Sprintf("%-50s %10s", truncate(item.Label, 50), item.Price.StringFixed(2))
		if i == m.pick {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return padStyle.Render(b.String())
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n-1]) + "…"
}
