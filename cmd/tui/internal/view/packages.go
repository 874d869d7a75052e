package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kearneyfs/prearrange/internal/arrangement"
	"github.com/kearneyfs/prearrange/internal/catalog"
	"github.com/kearneyfs/prearrange/internal/invoice"
)

// PackagesModel applies one of the preset service packages to the statement.
type PackagesModel struct {
	CommonModel
	svc *arrangement.Service
	arr *arrangement.Arrangement

	names   []string
	cursor  int
	applied string
	err     error
}

func NewPackagesModel(svc *arrangement.Service, arr *arrangement.Arrangement) PackagesModel {
	return PackagesModel{
		svc:   svc,
		arr:   arr,
		names: catalog.PackageNames(),
	}
}

func (m PackagesModel) Title() string { return "Service Packages" }

func (m PackagesModel) ShortHelp() string {
	return "Up/Down: move | Enter: apply | Esc: back"
}

func (m PackagesModel) Init() tea.Cmd {
	return nil
}

func (m PackagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter":
		name := m.names[m.cursor]

		_, err := m.svc.ApplyPackage(m.arr, name)
		if err != nil {
			m.err = err
			m.applied = ""
		} else {
			m.err = nil
			m.applied = name
		}
	}

	return m, nil
}

func (m PackagesModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()) + "\n\n")

	for i, name := range m.names {
		line := "  " + name
		if i == m.cursor {
			line = selectedStyle.Render("> " + name)
		}

		b.WriteString(line + "\n")
	}

	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	case m.applied != "":
		f := m.arr.Fields
		b.WriteString(successStyle.Render(fmt.Sprintf("Applied %q", m.applied)) + "\n")
		b.WriteString(fmt.Sprintf("Grand Total %s   Total 3 %s\n",
			f[invoice.FieldGrandTotal], f[invoice.FieldTotal3]))
	}

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return padStyle.Render(b.String())
}
