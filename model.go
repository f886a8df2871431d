package zupos

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"zupos/detail"
	"zupos/drawer"
	nt "zupos/entity"
	"zupos/filter"
	"zupos/grid"
	"zupos/message"
	"zupos/pagination"
	"zupos/style"
	"zupos/toast"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the store definition screen.
// It owns rows, filters, sort, paging and selection; the grid, filter panel
// and drawer only propose changes.
type Model struct {
	store  Store
	toasts Notifier
	logger nt.Logger
	ctx    context.Context

	cfg    Config
	screen Screen

	rows      []nt.StoreDef
	filters   []nt.Filter
	sort      nt.Sort
	search    string
	pager     *pagination.Controller
	selection grid.Selection
	loading   bool

	grid   grid.Model[nt.StoreDef]
	panel  filter.Panel
	drawer drawer.Model
	detail detail.Panel

	editing  nt.StoreDef
	deleting nt.StoreDef

	width  int
	height int
}

// New creates the screen over store, reporting to toasts.
func (cfg Config) New(ctx context.Context, store Store, toasts Notifier, lgr nt.Logger) Model {

	renderers := map[string]grid.Renderer[nt.StoreDef]{
		"status": statusRenderer{labels: cfg.Grid.Status},
	}
	if cfg.Grid.Status == (style.StatusLabels{}) {
		renderers["status"] = statusRenderer{labels: style.DefaultStatusLabels}
	}

	columns := grid.Columns(cfg.Columns, renderers)
	actions := []grid.Action[nt.StoreDef]{viewAction{}, editAction{}, deleteAction{}}

	m := Model{
		store:   store,
		toasts:  toasts,
		logger:  lgr,
		ctx:     ctx,
		cfg:     cfg,
		filters: cfg.Filters,
		sort:    cfg.Sort,
		loading: true,
		grid:    grid.New(cfg.Grid, columns, actions),
		panel:   filter.NewPanel(cfg.Columns),
		drawer:  cfg.Drawer.New(cfg.Fields, drawer.ValidateFunc(ValidateStore)),
		detail:  detail.NewPanel(),
	}

	m.pager = cfg.Pagination.New(0, func(page, size int) {
		lgr.Info(ctx, "page changed", "page", page, "size", size)
	})

	return m.refresh()
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height)

	case rowsMsg:
		m.rows = msg.stores
		m.loading = false
		return m.refresh(), nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "failed to "+msg.Action, msg.Err)
		m.toasts.Error(msg.Err.Error(), toast.Title("Could not "+msg.Action))
		m.loading = false
		return m.refresh(), nil

	case message.RefreshMsg:
		return m, nil

	// grid proposals

	case grid.SortMsg:
		m.sort = msg.Sort
		return m.refresh(), nil

	case grid.PageMsg:
		m.pager.SetPage(msg.Page)
		return m.refresh(), nil

	case grid.PageSizeMsg:
		m.pager.SetPageSize(msg.Size)
		return m.refresh(), nil

	case grid.SelectionMsg:
		m.selection = msg.Keys
		return m.refresh(), nil

	case viewMsg:
		title := fmt.Sprintf("%s (%s)", msg.store.Name, msg.store.Code)
		m.detail = m.detail.Show(title, m.cfg.Columns, msg.store)
		m.screen = DetailScreen
		return m, nil

	case detail.CloseMsg:
		m.screen = GridScreen
		return m, nil

	case editMsg:
		return m.openDrawer(drawer.Edit, msg.store), nil

	case deleteMsg:
		m.deleting = msg.store
		m.screen = ConfirmScreen
		return m, nil

	case deletedMsg:
		return m.deleted(msg)

	// filter panel

	case filter.ApplyMsg:
		m.filters = msg.Filters
		m.search = ""
		m.screen = GridScreen
		m.pager.FirstPage()
		return m.refresh(), nil

	case filter.CloseMsg:
		m.screen = GridScreen
		return m, nil

	// drawer

	case drawer.SubmitMsg:
		return m, m.saveCmd(msg)

	case savedMsg:
		return m.saved(msg)

	case drawer.ClosedMsg:
		m.screen = GridScreen
		m.editing = nt.StoreDef{}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// piece messages go back to whichever panel has the keyboard
	return m.route(msg)
}

func (m Model) View() tea.View {

	if m.width == 0 {
		return tea.NewView("Loading...")
	}

	gridLayer := lipgloss.NewLayer("grid", m.grid.Render())

	footerContent := RenderFooter(m.screen, m.search, m.store.Name(), m.width)
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.height - footerHeight)

	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(gridLayer)
	canvas.Compose(footerLayer)

	switch m.screen {
	case FilterScreen:
		canvas.Compose(m.panel.Layer())
	case DrawerScreen:
		for _, layer := range m.drawer.Layers() {
			canvas.Compose(layer)
		}
	case ConfirmScreen:
		canvas.Compose(m.confirmLayer())
	case DetailScreen:
		canvas.Compose(m.detail.Layer())
	}

	if layer := m.toasts.Layer(m.width, m.height); layer != nil {
		canvas.Compose(layer)
	}

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case SearchScreen:
		return m.handleSearchKey(msg)
	case ConfirmScreen:
		return m.handleConfirmKey(msg)
	case FilterScreen:
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	case DrawerScreen:
		var cmd tea.Cmd
		m.drawer, cmd = m.drawer.Update(msg)
		return m, cmd
	case DetailScreen:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.screen = SearchScreen
		return m, nil

	case "f":
		m.panel = m.panel.Open(m.filters)
		m.screen = FilterScreen
		return m, nil

	case "c":
		m.filters = []nt.Filter{}
		m.search = ""
		m.pager.FirstPage()
		return m.refresh(), nil

	case "i":
		return m.openDrawer(drawer.Create, nt.StoreDef{}), nil

	case "r":
		m.loading = true
		return m.refresh(), m.loadCmd()

	case "x":
		m.toasts.DismissLatest()
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	search := m.search

	switch msg.String() {
	case "enter":
		m.screen = GridScreen
		return m, nil
	case "esc":
		m.screen = GridScreen
		search = ""
	case "backspace":
		runes := []rune(search)
		if len(runes) > 0 {
			search = string(runes[:len(runes)-1])
		}
	case "space":
		search += " "
	default:
		search += msg.Text
	}

	return m.quickSearch(search), nil
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	switch msg.String() {
	case "y", "enter":
		m.screen = GridScreen
		return m, m.deleteCmd(m.deleting)
	case "n", "esc":
		m.screen = GridScreen
		m.deleting = nt.StoreDef{}
	}
	return m, nil
}

// quickSearch replaces filters on the searchable fields with search.
func (m Model) quickSearch(search string) Model {

	if search == m.search {
		return m
	}

	m.search = search
	m.filters = filter.QuickSearch(m.filters, m.cfg.Columns, search)
	m.pager.FirstPage()
	return m.refresh()
}

func (m Model) openDrawer(mode drawer.Mode, sd nt.StoreDef) Model {

	values := createValues()
	if mode == drawer.Edit {
		values = editValues(sd)
	}

	m.editing = sd
	m.drawer = m.drawer.Open(mode, values)
	m.screen = DrawerScreen
	return m
}

func (m Model) saved(msg savedMsg) (tea.Model, tea.Cmd) {

	var cmd tea.Cmd
	m.drawer, cmd = m.drawer.Update(drawer.ResultMsg{Err: msg.err})

	if msg.err != nil {
		m.logger.Error(m.ctx, "failed to save store", msg.err, "id", m.editing.Id)
		m.toasts.Error(msg.err.Error(), toast.Title("Store not saved"))
		return m, cmd
	}

	verb := "updated"
	if msg.created {
		verb = "created"
	}
	m.toasts.Success(fmt.Sprintf("%s %s", msg.store.Name, verb), toast.Title("Store saved"))

	m.loading = true
	return m.refresh(), tea.Batch(cmd, m.loadCmd())
}

func (m Model) deleted(msg deletedMsg) (tea.Model, tea.Cmd) {

	m.deleting = nt.StoreDef{}

	if msg.err != nil {
		m.logger.Error(m.ctx, "failed to delete store", msg.err, "id", msg.store.Id)
		m.toasts.Error(msg.err.Error(), toast.Title("Store not deleted"))
		return m, nil
	}

	m.selection = m.selection.Remove(msg.store.Key())
	m.toasts.Success(fmt.Sprintf("%s deleted", msg.store.Name))

	m.loading = true
	return m.refresh(), m.loadCmd()
}

func (m Model) route(msg tea.Msg) (tea.Model, tea.Cmd) {

	var cmd tea.Cmd
	switch m.screen {
	case FilterScreen:
		m.panel, cmd = m.panel.Update(msg)
	case DrawerScreen:
		m.drawer, cmd = m.drawer.Update(msg)
	}
	return m, cmd
}

func (m Model) resize(width, height int) (tea.Model, tea.Cmd) {

	m.width = width
	m.height = height

	m.grid = m.grid.SetMode(grid.ModeFor(width, m.cfg.Breakpoint))
	m.grid, _ = m.grid.Update(grid.SizeMsg{Width: width, Height: height - footerHeight})
	m.panel, _ = m.panel.Update(filter.SizeMsg{Width: width, Height: height})
	m.drawer, _ = m.drawer.Update(drawer.SizeMsg{Width: width, Height: height})
	m.detail, _ = m.detail.Update(detail.SizeMsg{Width: width, Height: height})

	return m, nil
}

// refresh hands the owned state to the grid and re-clamps paging to the
// filtered count.
func (m Model) refresh() Model {

	m.grid = m.grid.
		SetRows(m.rows).
		SetFilters(m.filters).
		SetSort(m.sort).
		SetSelection(m.selection).
		SetLoading(m.loading)

	m.pager.SetTotal(m.grid.Result().Filtered)
	m.grid = m.grid.SetPage(m.pager.Page(), m.pager.PageSize(), m.pager.SizeOptions())
	return m
}

func (m Model) confirmLayer() *lipgloss.Layer {

	prompt := fmt.Sprintf("Delete store %q (%s)?", m.deleting.Name, m.deleting.Code)
	dialog := style.DialogStyle.Render(prompt + "\n\n" + style.MutedStyle.Render("y: delete  n: keep"))

	x := max(0, (m.width-lipgloss.Width(dialog))/2)
	y := max(0, (m.height-lipgloss.Height(dialog))/2)
	return lipgloss.NewLayer("confirm", dialog).X(x).Y(y)
}
