package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/srcheesedev/devcard/profile"
)

// Tab indices for the browser screens.
const (
	tabAbout = iota
	tabSkills
	tabInterests
	tabContact
	tabCount
)

// tabNames are the display labels for each tab.
var tabNames = [tabCount]string{"about", "skills", "interests", "contact"}

// model is the Bubble Tea model for the profile browser.
type model struct {
	profile profile.Profile
	version string

	tab           int
	width, height int

	// Live skill filter, active on the skills tab.
	filter    textinput.Model
	filtering bool

	quitting bool
}

// newModel creates the initial Bubble Tea model.
func newModel(p profile.Profile, version string, width int) model {
	ti := textinput.New()
	ti.Placeholder = "filter skills (globs like cloud/* work)"
	ti.CharLimit = 64
	ti.Width = 40

	return model{
		profile: p,
		version: version,
		width:   width,
		height:  24,
		filter:  ti,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes key events for tab navigation and the skill filter.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter input has focus, most keys belong to it.
	if m.filtering {
		switch msg.Type {
		case tea.KeyEscape:
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			return m, nil
		case tea.KeyEnter:
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEscape:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyTab, tea.KeyRight:
		m.tab = (m.tab + 1) % tabCount
		return m, nil

	case tea.KeyShiftTab, tea.KeyLeft:
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "1", "2", "3", "4":
		m.tab = int(msg.String()[0] - '1')
		return m, nil
	case "/":
		if m.tab == tabSkills {
			m.filtering = true
			return m, m.filter.Focus()
		}
	}

	return m, nil
}
