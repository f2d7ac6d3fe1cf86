package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tilebar.dev/panel/internal/application/services"
	"tilebar.dev/panel/internal/core/plugin"
)

// panelStatus carries transient host messages (menu invocations, skipped
// plugins) into the panel's status line. The panel runs single-threaded,
// so plain fields are enough.
type panelStatus struct {
	message string
	at      time.Time
}

func (s *panelStatus) set(message string) {
	s.message = message
	s.at = time.Now()
}

// panelModel is the Bubble Tea model driving the panel. Every lifecycle
// call into the instance service happens from Update or before the program
// starts, which is what keeps the registry single-threaded.
type panelModel struct {
	surface   *Surface
	service   *services.InstanceService
	status    *panelStatus
	instances []*plugin.Instance
	refresh   time.Duration
	selected  int
	width     int
	height    int
}

type panelTickMsg time.Time

func newPanelModel(surface *Surface, service *services.InstanceService, status *panelStatus, instances []*plugin.Instance, refresh time.Duration) panelModel {
	return panelModel{
		surface:   surface,
		service:   service,
		status:    status,
		instances: instances,
		refresh:   refresh,
	}
}

func (m panelModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m panelModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return panelTickMsg(t)
	})
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "right", "l":
			if m.selected < m.surface.Len()-1 {
				m.selected++
			}
			return m, nil
		case "m", "enter":
			m.surface.MenuAt(m.selected)
			return m, nil
		}
		return m, nil

	case panelTickMsg:
		for _, inst := range m.instances {
			m.service.Refresh(inst)
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m panelModel) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	row := m.surface.Render(width)

	selected := "-"
	if name, ok := m.surface.NameAt(m.selected); ok {
		selected = name
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	status := statusStyle.Render(fmt.Sprintf("tile %d/%d (%s) · %d active · q quits",
		m.selected+1, m.surface.Len(), selected, m.service.Active()))

	if m.status.message != "" {
		status = lipgloss.JoinVertical(lipgloss.Left, status, statusStyle.Render(m.status.message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, row, status)
}
