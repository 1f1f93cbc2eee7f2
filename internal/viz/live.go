package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/wave"
)

const (
	canvasWidth     = 80
	canvasHeight    = 20
	historyCapacity = 600
)

type TickMsg time.Time

// Model is the live TUI: the external driver that triggers one leapfrog
// step per animation frame and renders the resulting profile.
type Model struct {
	stepper  *wave.Stepper
	renderer *ProfileRenderer
	fps      float64
	running  bool
	energy   []float64
	peak     float64
}

func NewModel(stepper *wave.Stepper, fps float64) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		stepper:  stepper,
		renderer: NewProfileRenderer(canvasWidth, canvasHeight),
		fps:      fps,
		running:  true,
		energy:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Duration(float64(time.Second)/m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.stepper = wave.New()
			m.energy = m.energy[:0]
			m.peak = 0
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	f := m.stepper.Step(m.renderer)

	if a := f.Y.MaxAbs(); a > m.peak {
		m.peak = a
	}

	m.energy = append(m.energy, metrics.Instant(m.stepper.Current(), m.stepper.Previous()))
	if len(m.energy) > historyCapacity {
		m.energy = m.energy[1:]
	}
}

func (m Model) View() string {
	var s strings.Builder

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("Energy"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", m.stepper.Steps())) + "\n")
	s.WriteString(labelStyle.Render("Peak |y|") + valueStyle.Render(fmt.Sprintf("%.3f", m.peak)) + "\n")
	s.WriteString(labelStyle.Render("Samples") + valueStyle.Render(fmt.Sprintf("%d", m.stepper.N())) + "\n")

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderer.View(), canvasStyle.Render(s.String()))
}
