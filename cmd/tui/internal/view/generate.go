package view

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kearneyfs/prearrange/internal/arrangement"
	"github.com/kearneyfs/prearrange/internal/document"
)

type generateState int

const (
	generateStateConfirm generateState = iota
	generateStateWorking
	generateStateDone
	generateStateFailed
)

type generateDoneMsg struct {
	result arrangement.CompleteResult
	err    error
}

// GenerateModel fills and writes the five forms plus the value log, then
// archives the arrangement when a database is configured.
type GenerateModel struct {
	CommonModel
	svc *arrangement.Service
	arr *arrangement.Arrangement

	state   generateState
	spinner spinner.Model
	result  arrangement.CompleteResult
	err     error
}

func NewGenerateModel(svc *arrangement.Service, arr *arrangement.Arrangement) GenerateModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return GenerateModel{
		svc:     svc,
		arr:     arr,
		spinner: sp,
	}
}

func (m GenerateModel) Title() string { return "Generate Forms" }

func (m GenerateModel) ShortHelp() string {
	switch m.state {
	case generateStateConfirm:
		return "Enter: generate | Esc: back"
	case generateStateWorking:
		return "working..."
	}

	return "Enter: generate again | Esc: back"
}

func (m GenerateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m GenerateModel) generate() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.svc.Complete(ctx, m.arr)

		return generateDoneMsg{result: result, err: err}
	}
}

func (m GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generateDoneMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = generateStateDone

		if msg.err != nil {
			m.state = generateStateFailed
		}

		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.KeyMsg:
		if m.state == generateStateWorking {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			m.state = generateStateWorking

			return m, tea.Batch(m.generate(), m.spinner.Tick)
		}
	}

	return m, nil
}

func (m GenerateModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()) + "\n\n")

	switch m.state {
	case generateStateConfirm:
		b.WriteString("Fill the five forms for " + m.arr.Applicant.FullName() + ".\n")
	case generateStateWorking:
		b.WriteString(m.spinner.View() + " filling forms\n")
	case generateStateDone:
		b.WriteString(successStyle.Render("Forms written") + "\n\n")

		for _, path := range m.result.FormPaths {
			b.WriteString("  " + path + "\n")
		}

		b.WriteString("  " + m.result.ValueLogPath + "\n")
	case generateStateFailed:
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")

		if errors.Is(m.err, document.ErrFileInUse) {
			b.WriteString(faintStyle.Render("close the open PDF and try again") + "\n")
		}
	}

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return padStyle.Render(b.String())
}
