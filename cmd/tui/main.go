package main

import (
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kearneyfs/prearrange/cmd/tui/internal/view"
	"github.com/kearneyfs/prearrange/internal/arrangement"
	arrStore "github.com/kearneyfs/prearrange/internal/arrangement/store"
	"github.com/kearneyfs/prearrange/internal/catalog"
	"github.com/kearneyfs/prearrange/internal/config"
	"github.com/kearneyfs/prearrange/internal/database"
	"github.com/kearneyfs/prearrange/internal/document"
	"github.com/kearneyfs/prearrange/internal/invoice"
)

type model struct {
	service *arrangement.Service
	arr     *arrangement.Arrangement

	currentView View

	clientView    view.ClientModel
	invoiceView   view.InvoiceModel
	packagesView  view.PackagesModel
	discountsView view.DiscountsModel
	financingView view.FinancingModel
	generateView  view.GenerateModel
}

type View int

const (
	ViewMenu      View = 0
	ViewClient    View = 1
	ViewInvoice   View = 2
	ViewPackages  View = 3
	ViewDiscounts View = 4
	ViewFinancing View = 5
	ViewGenerate  View = 6
)

func initialModel() model {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var repo arrangement.Repository
	if cfg.DB.Enabled {
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		repo = arrStore.New(db)
	}

	svc := arrangement.NewService(
		invoice.NewEngine(),
		document.NewRenderer(cfg.Dirs.Output),
		cfg.Dirs.Logs,
		repo,
	)

	arr := arrangement.New()
	loadPriceLists(cfg.Dirs.PriceLists, arr.Catalogs)

	return model{
		service:       svc,
		arr:           arr,
		currentView:   ViewMenu,
		clientView:    view.NewClientModel(arr),
		invoiceView:   view.NewInvoiceModel(svc, arr),
		packagesView:  view.NewPackagesModel(svc, arr),
		discountsView: view.NewDiscountsModel(svc, arr),
		financingView: view.NewFinancingModel(svc, arr),
		generateView:  view.NewGenerateModel(svc, arr),
	}
}

// loadPriceLists overlays any CSV price lists found in dir onto the built-in
// catalogs. Missing files are fine; the built-in prices stand.
func loadPriceLists(dir string, catalogs *catalog.Set) {
	if dir == "" {
		return
	}

	for _, kind := range catalog.Kinds {
		f, err := os.Open(filepath.Join(dir, string(kind)+".csv"))
		if err != nil {
			continue
		}

		n, err := catalogs.ApplyPriceList(kind, f)
		f.Close()

		if err != nil {
			slog.Warn("failed to apply price list", "kind", kind, "error", err)
			continue
		}

		slog.Info("applied price list", "kind", kind, "items", n)
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewClient
				m.clientView = view.NewClientModel(m.arr)

				return m, m.clientView.Init()
			case "2":
				m.currentView = ViewInvoice
				m.invoiceView = view.NewInvoiceModel(m.service, m.arr)

				return m, m.invoiceView.Init()
			case "3":
				m.currentView = ViewPackages
				m.packagesView = view.NewPackagesModel(m.service, m.arr)

				return m, m.packagesView.Init()
			case "4":
				m.currentView = ViewDiscounts
				m.discountsView = view.NewDiscountsModel(m.service, m.arr)

				return m, m.discountsView.Init()
			case "5":
				m.currentView = ViewFinancing
				m.financingView = view.NewFinancingModel(m.service, m.arr)

				return m, m.financingView.Init()
			case "6":
				m.currentView = ViewGenerate
				m.generateView = view.NewGenerateModel(m.service, m.arr)

				return m, m.generateView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewClient:
		var newModel tea.Model
		newModel, cmd = m.clientView.Update(msg)
		m.clientView = newModel.(view.ClientModel)
	case ViewInvoice:
		var newModel tea.Model
		newModel, cmd = m.invoiceView.Update(msg)
		m.invoiceView = newModel.(view.InvoiceModel)
	case ViewPackages:
		var newModel tea.Model
		newModel, cmd = m.packagesView.Update(msg)
		m.packagesView = newModel.(view.PackagesModel)
	case ViewDiscounts:
		var newModel tea.Model
		newModel, cmd = m.discountsView.Update(msg)
		m.discountsView = newModel.(view.DiscountsModel)
	case ViewFinancing:
		var newModel tea.Model
		newModel, cmd = m.financingView.Update(msg)
		m.financingView = newModel.(view.FinancingModel)
	case ViewGenerate:
		var newModel tea.Model
		newModel, cmd = m.generateView.Update(msg)
		m.generateView = newModel.(view.GenerateModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Prearrange\n\n" +
				"1. Client Information\n" +
				"2. Statement of Goods and Services\n" +
				"3. Service Packages\n" +
				"4. Discounts\n" +
				"5. Financing\n" +
				"6. Generate Forms\n\n" +
				"q. Quit",
		)
	case ViewClient:
		return m.clientView.View()
	case ViewInvoice:
		return m.invoiceView.View()
	case ViewPackages:
		return m.packagesView.View()
	case ViewDiscounts:
		return m.discountsView.View()
	case ViewFinancing:
		return m.financingView.View()
	case ViewGenerate:
		return m.generateView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
