package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aqibjaved/showcase/internal/browser"
	"github.com/aqibjaved/showcase/internal/catalog"
	"github.com/aqibjaved/showcase/internal/cli/formatter"
	"github.com/aqibjaved/showcase/internal/domain"
	"github.com/aqibjaved/showcase/internal/notify"
	"github.com/aqibjaved/showcase/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type dashboardKeyMap struct {
	Search key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Source key.Binding
	Reload key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Source: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "source")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// catalogLoadedMsg carries the loaded catalog and stats into the model.
type catalogLoadedMsg struct {
	records []*domain.ProjectRecord
	stats   catalog.Stats
	err     error
}

// notifyExpiredMsg is the auto-hide timer firing. The token identifies
// which notification the timer was scheduled for; the presenter ignores
// tokens of notifications that were replaced or dismissed in the meantime.
type notifyExpiredMsg struct {
	token int
}

// dashboardModel is the interactive portfolio view: searchable catalog
// grouped by week, with a stats strip and an ephemeral notification line.
type dashboardModel struct {
	catalog service.CatalogService
	opener  browser.Opener

	records []*domain.ProjectRecord
	stats   catalog.Stats
	loading bool
	loadErr error

	search    textinput.Model
	searching bool
	query     string

	filtered []*domain.ProjectRecord
	grouped  catalog.Grouped
	cursor   int

	presenter notify.Presenter

	width  int
	height int
}

func newDashboardModel(catalogSvc service.CatalogService, opener browser.Opener) dashboardModel {
	search := textinput.New()
	search.Placeholder = "Search projects..."
	search.Prompt = "/ "
	search.CharLimit = 80

	return dashboardModel{
		catalog: catalogSvc,
		opener:  opener,
		search:  search,
		loading: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCatalogCmd()
}

func (m dashboardModel) loadCatalogCmd() tea.Cmd {
	svc := m.catalog
	return func() tea.Msg {
		ctx := context.Background()
		records, err := svc.List(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		stats, err := svc.Stats(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		return catalogLoadedMsg{records: records, stats: stats}
	}
}

// autoHideCmd schedules the notification timer for one visibility interval.
func autoHideCmd(token int) tea.Cmd {
	return tea.Tick(notify.AutoHideAfter, func(time.Time) tea.Msg {
		return notifyExpiredMsg{token: token}
	})
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.records = msg.records
			m.stats = msg.stats
			m.applyFilter()
		}
		return m, nil

	case notifyExpiredMsg:
		m.presenter.Expire(msg.token)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, dashboardKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, dashboardKeys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, dashboardKeys.Clear):
		// Dismiss the notification first; a second esc clears the query.
		if _, visible := m.presenter.Current(); visible {
			m.presenter.Dismiss()
			return m, nil
		}
		if m.query != "" {
			m.query = ""
			m.search.SetValue("")
			m.applyFilter()
		}
		return m, nil
	case key.Matches(msg, dashboardKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, dashboardKeys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, dashboardKeys.Open):
		return m.openSelected()
	case key.Matches(msg, dashboardKeys.Source):
		return m.openSource()
	case key.Matches(msg, dashboardKeys.Reload):
		m.loading = true
		return m, m.loadCatalogCmd()
	}
	return m, nil
}

func (m dashboardModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.query = ""
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.query {
		m.query = v
		m.applyFilter()
	}
	return m, cmd
}

// applyFilter recomputes the filtered, grouped view for the current query.
// Stats are deliberately untouched: they describe the whole catalog.
func (m *dashboardModel) applyFilter() {
	m.filtered = catalog.Filter(m.records, m.query)
	m.grouped = catalog.GroupByWeek(m.filtered)
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// displayOrder flattens the grouped view in render order: weeks ascending,
// records in catalog order within each week.
func (m *dashboardModel) displayOrder() []*domain.ProjectRecord {
	out := make([]*domain.ProjectRecord, 0, len(m.filtered))
	for _, week := range m.grouped.Weeks {
		out = append(out, m.grouped.ByWeek[week]...)
	}
	return out
}

func (m *dashboardModel) selected() *domain.ProjectRecord {
	order := m.displayOrder()
	if m.cursor < 0 || m.cursor >= len(order) {
		return nil
	}
	return order[m.cursor]
}

// openSelected visits the selected record's deployment. Records without
// one get a status-specific notification instead, auto-hidden after
// notify.AutoHideAfter. Showing replaces any current notification and
// restarts the timer from zero.
func (m dashboardModel) openSelected() (tea.Model, tea.Cmd) {
	rec := m.selected()
	if rec == nil {
		return m, nil
	}
	if !rec.Deployed() {
		token := m.presenter.Show(notify.ForStatus(rec.Status))
		return m, autoHideCmd(token)
	}
	if err := m.opener.Open(rec.DeployURL); err != nil {
		token := m.presenter.Show(notify.Notification{
			Message:  fmt.Sprintf("Could not open browser: %v", err),
			Severity: notify.SeverityErr,
		})
		return m, autoHideCmd(token)
	}
	return m, nil
}

// openSource visits the selected record's source link. Unlike the deploy
// action it is never status-guarded; even the "#" placeholder navigates.
func (m dashboardModel) openSource() (tea.Model, tea.Cmd) {
	rec := m.selected()
	if rec == nil {
		return m, nil
	}
	if err := m.opener.Open(rec.GithubURL); err != nil {
		token := m.presenter.Show(notify.Notification{
			Message:  fmt.Sprintf("Could not open browser: %v", err),
			Severity: notify.SeverityErr,
		})
		return m, autoHideCmd(token)
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Showcase") + "\n")

	if m.loading {
		b.WriteString(formatter.Dim("Loading catalog...") + "\n")
		return b.String()
	}
	if m.loadErr != nil {
		b.WriteString(formatter.StyleRed.Render("Failed to load catalog: "+m.loadErr.Error()) + "\n")
		b.WriteString(formatter.Dim("r reload · q quit") + "\n")
		return b.String()
	}

	b.WriteString(formatter.StatsLine(m.stats) + "\n\n")

	if m.searching || m.query != "" {
		b.WriteString(m.search.View() + "\n")
	}
	b.WriteString(formatter.ResultsCount(len(m.filtered)) + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(formatter.Dim("No projects match your search.") + "\n")
	} else {
		b.WriteString(m.viewWeeks())
	}

	if n, visible := m.presenter.Current(); visible {
		b.WriteString("\n" + formatter.NotificationLine(n) + "\n")
	}

	b.WriteString("\n" + m.viewHints() + "\n")
	return b.String()
}

func (m dashboardModel) viewHints() string {
	bindings := []key.Binding{
		dashboardKeys.Search,
		dashboardKeys.Open,
		dashboardKeys.Source,
		dashboardKeys.Reload,
		dashboardKeys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return formatter.Dim(strings.Join(parts, " · "))
}

func (m dashboardModel) viewWeeks() string {
	var b strings.Builder
	idx := 0
	for _, week := range m.grouped.Weeks {
		bucket := m.grouped.ByWeek[week]
		b.WriteString(formatter.WeekHeading(week, len(bucket)) + "\n")
		for _, rec := range bucket {
			b.WriteString(m.viewCard(rec, idx == m.cursor))
			idx++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m dashboardModel) viewCard(rec *domain.ProjectRecord, selected bool) string {
	marker := "  "
	name := formatter.StyleFg.Render(rec.Name)
	if selected {
		marker = formatter.StyleHeader.Render("▸ ")
		name = formatter.Bold(rec.Name)
	}

	var b strings.Builder
	line := marker + name + "  " + formatter.StatusBadge(rec.Status)
	if rec.Deployed() {
		line += "  " + formatter.StyleGreen.Render("↗")
	}
	b.WriteString(line + "\n")
	b.WriteString("  " + formatter.Dim(formatter.Truncate(rec.Description, 76)) + "\n")
	labels := make([]string, 0, len(rec.Tags)+len(rec.Stack))
	labels = append(labels, rec.Tags...)
	labels = append(labels, rec.Stack...)
	if chips := formatter.Chips(labels); chips != "" {
		b.WriteString("  " + chips + "\n")
	}
	return b.String()
}
