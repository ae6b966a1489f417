package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subham-04/file-hash-checker-site/internal/content"
	"github.com/subham-04/file-hash-checker-site/internal/site"
)

// distinguishing is a heading only the named page shows.
var distinguishing = map[site.Page]string{
	site.Home:         "Key Features",
	site.Installation: "Installation Steps",
	site.Privacy:      "License Terms",
}

func testModel(t *testing.T) Model {
	t.Helper()

	catalog, err := content.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	model := NewModel(catalog)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func press(t *testing.T, model Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := model.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func assertShows(t *testing.T, model Model, want site.Page) {
	t.Helper()

	if model.Current() != want {
		t.Fatalf("current = %s, want %s", model.Current(), want)
	}
	if model.Title() != site.MetaFor(want).Title {
		t.Errorf("title = %q, want %q", model.Title(), site.MetaFor(want).Title)
	}
	for p, marker := range distinguishing {
		has := strings.Contains(model.Body(), marker)
		if p == want && !has {
			t.Errorf("%s body is missing %q", want, marker)
		}
		if p != want && has {
			t.Errorf("%s body should not contain %q", want, marker)
		}
	}
}

func TestModelView(t *testing.T) {
	catalog, err := content.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	model := NewModel(catalog)

	if view := model.View(); view != "Loading..." {
		t.Errorf("expected 'Loading...' before WindowSizeMsg, got %q", view)
	}

	if cmd := model.Init(); cmd == nil {
		t.Error("Init should set the window title")
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(Model)
	view := model.View()

	for _, want := range []string{"Home", "Installation Guide", "Privacy & License", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	assertShows(t, model, site.Home)
}

func TestModelNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want site.Page
	}{
		{"initial", nil, site.Home},
		{"digit installation", []tea.KeyMsg{runes("2")}, site.Installation},
		{"letter privacy", []tea.KeyMsg{runes("p")}, site.Privacy},
		{"letter home", []tea.KeyMsg{runes("i"), runes("h")}, site.Home},
		{"installation privacy home", []tea.KeyMsg{runes("2"), runes("3"), runes("1")}, site.Home},
		{"tab", []tea.KeyMsg{{Type: tea.KeyTab}}, site.Installation},
		{"tab wraps", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyTab}}, site.Home},
		{"shift tab wraps", []tea.KeyMsg{{Type: tea.KeyShiftTab}}, site.Privacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := testModel(t)
			for _, k := range tt.keys {
				model, _ = press(t, model, k)
			}
			assertShows(t, model, tt.want)
		})
	}
}

func TestModelWindowTitle(t *testing.T) {
	model := testModel(t)
	model.Init()

	model, cmd := press(t, model, runes("2"))
	if cmd == nil {
		t.Fatal("navigating should set the window title")
	}
	if !strings.Contains(model.Title(), "Installation Guide") {
		t.Errorf("title = %q", model.Title())
	}

	model, cmd = press(t, model, runes("3"))
	if cmd == nil {
		t.Fatal("navigating should set the window title")
	}
	if !strings.Contains(model.Title(), "Privacy Policy") {
		t.Errorf("title = %q", model.Title())
	}

	model, _ = press(t, model, runes("1"))
	if !strings.Contains(model.Title(), "File Hash Checker") {
		t.Errorf("title = %q", model.Title())
	}
}

func TestModelSamePageTwice(t *testing.T) {
	model := testModel(t)

	model, _ = press(t, model, runes("2"))
	body, title := model.Body(), model.Title()

	model, cmd := press(t, model, runes("2"))
	if cmd != nil {
		t.Error("navigating to the active page should not retitle the window")
	}
	if model.Body() != body || model.Title() != title {
		t.Error("navigating to the active page should change nothing")
	}
}

func TestModelInstallationCommands(t *testing.T) {
	model := testModel(t)
	model, _ = press(t, model, runes("2"))

	for _, want := range []string{"3. Download & Run", "$ "} {
		if !strings.Contains(model.Body(), want) {
			t.Errorf("installation body is missing %q", want)
		}
	}
}

func TestModelQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		model := testModel(t)

		_, cmd := model.Update(k)
		if cmd == nil {
			t.Fatalf("%s should return a command", k)
		}
		if _, isQuit := cmd().(tea.QuitMsg); !isQuit {
			t.Errorf("%s: expected QuitMsg", k)
		}
	}
}
