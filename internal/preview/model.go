// Package preview renders the site in the terminal. The model owns the
// site.Router for the session and mirrors every page change into the
// terminal window title.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subham-04/file-hash-checker-site/internal/content"
	"github.com/subham-04/file-hash-checker-site/internal/site"
)

// windowTitle is the site.Document of a terminal session. The title is
// pushed to the terminal with tea.SetWindowTitle after each change.
type windowTitle struct {
	title       string
	description string
	changed     bool
}

func (w *windowTitle) SetTitle(title string) {
	w.changed = w.changed || w.title != title
	w.title = title
}

func (w *windowTitle) SetDescription(description string) {
	w.description = description
}

// flush returns a command updating the terminal title, or nil when the
// title has not changed since the last flush.
func (w *windowTitle) flush() tea.Cmd {
	if !w.changed {
		return nil
	}
	w.changed = false
	return tea.SetWindowTitle(w.title)
}

var (
	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(toneColors[content.ToneBlue]).
			Padding(0, 1)
	crumbStyle       = lipgloss.NewStyle().Foreground(faintColor).Padding(0, 1)
	activeCrumbStyle = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
)

// Model is the bubbletea model of the preview.
type Model struct {
	catalog  *content.Catalog
	router   *site.Router
	doc      *windowTitle
	keys     KeyMap
	help     help.Model
	viewport viewport.Model

	body   string
	width  int
	height int
	ready  bool
}

// NewModel creates a preview positioned at the home page.
func NewModel(catalog *content.Catalog) Model {
	doc := &windowTitle{}
	return Model{
		catalog:  catalog,
		router:   site.NewRouter(doc),
		doc:      doc,
		keys:     DefaultKeyMap,
		help:     help.New(),
		viewport: viewport.New(0, 0),
	}
}

// Init sets the window title of the initial page.
func (m Model) Init() tea.Cmd {
	return m.doc.flush()
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-lipgloss.Height(m.headerView())-lipgloss.Height(m.footerView()), 1)
		m.ready = true
		m.refresh(false)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Home):
			return m.navigate(site.Home)
		case key.Matches(msg, m.keys.Installation):
			return m.navigate(site.Installation)
		case key.Matches(msg, m.keys.Privacy):
			return m.navigate(site.Privacy)
		case key.Matches(msg, m.keys.Next):
			return m.navigate(m.router.Current().Next())
		case key.Matches(msg, m.keys.Prev):
			return m.navigate(m.router.Current().Prev())
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) navigate(target site.Page) (tea.Model, tea.Cmd) {
	before := m.router.Current()
	m.router.Navigate(target)
	if m.router.Current() != before {
		m.refresh(true)
	}
	return m, m.doc.flush()
}

// refresh re-renders the page body at the current width.
func (m *Model) refresh(top bool) {
	if !m.ready {
		return
	}
	m.body = renderPage(m.catalog, m.router.Current(), m.width)
	m.viewport.SetContent(m.body)
	if top {
		m.viewport.GotoTop()
	}
}

// View renders the title bar, breadcrumb, page body and key help.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}

func (m Model) headerView() string {
	header := m.catalog.Name
	switch m.router.Current() {
	case site.Installation:
		header = m.catalog.Installation.Header.Title
	case site.Privacy:
		header = m.catalog.Privacy.Header.Title
	default:
		if t := m.catalog.Home.Header.Title; t != "" {
			header = t
		}
	}

	crumbs := make([]string, 0, 3)
	for _, c := range m.router.Breadcrumb() {
		if c.Active {
			crumbs = append(crumbs, activeCrumbStyle.Render(c.Label))
		} else {
			crumbs = append(crumbs, crumbStyle.Render(c.Label))
		}
	}

	return titleBarStyle.Render(header) + "\n" + strings.Join(crumbs, "›") + "\n"
}

func (m Model) footerView() string {
	return m.help.View(m.keys)
}

// Current returns the page on screen.
func (m Model) Current() site.Page {
	return m.router.Current()
}

// Title returns the current window title.
func (m Model) Title() string {
	return m.doc.title
}

// Body returns the full rendered page, including lines scrolled out of view.
func (m Model) Body() string {
	return m.body
}
