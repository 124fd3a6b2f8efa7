package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/algolab/internal/algo"
	"github.com/san-kum/algolab/internal/anim"
)

type screen int

const (
	screenCategories screen = iota
	screenAlgorithms
	screenConfig
	screenPlay
)

type playerModel struct {
	screen screen
	cursor int

	registry   *algo.Registry
	categories []string
	byCategory map[string][]algo.Info

	category  string
	algorithm algo.Info

	// config screen
	paramCursor int
	size        int
	caseIdx     int
	speedMS     int
	editing     bool
	editBuf     string

	engine *anim.Engine

	width  int
	height int
}

var cases = []algo.Case{algo.CaseBest, algo.CaseAverage, algo.CaseWorst}

func NewPlayer(registry *algo.Registry) *playerModel {
	byCategory := registry.ByCategory()
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return &playerModel{
		screen:     screenCategories,
		registry:   registry,
		categories: categories,
		byCategory: byCategory,
		caseIdx:    1, // average
		speedMS:    500,
		engine:     anim.NewEngine(),
		width:      80,
		height:     24,
	}
}

func (m playerModel) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen == screenPlay {
			return m, tick()
		}
		return m, nil
	}
	return m, nil
}

func (m playerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenCategories:
		return m.categoriesKey(msg)
	case screenAlgorithms:
		return m.algorithmsKey(msg)
	case screenConfig:
		return m.configKey(msg)
	case screenPlay:
		return m.playKey(msg)
	}
	return m, nil
}

func (m playerModel) categoriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.categories)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.category = m.categories[m.cursor]
		m.screen = screenAlgorithms
		m.cursor = 0
	}
	return m, nil
}

func (m playerModel) algorithmsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	infos := m.byCategory[m.category]
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape":
		m.screen = screenCategories
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(infos)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.algorithm = infos[m.cursor]
		m.size = m.algorithm.DefaultSize
		m.screen = screenConfig
		m.paramCursor = 0
	}
	return m, nil
}

var configParams = []string{"size", "case", "speed (ms)"}

func (m playerModel) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.Atoi(m.editBuf); err == nil {
				m.applyParam(v)
			}
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			s := msg.String()
			if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.screen = screenAlgorithms
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(configParams)-1 {
			m.paramCursor++
		}
	case "enter":
		if m.paramCursor == 1 {
			m.caseIdx = (m.caseIdx + 1) % len(cases)
		} else {
			m.editing = true
			m.editBuf = strconv.Itoa(m.paramValue())
		}
	case "left", "h":
		m.adjustParam(-1)
	case "right", "l":
		m.adjustParam(1)
	case "s", " ":
		m.start()
		m.screen = screenPlay
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m *playerModel) paramValue() int {
	switch m.paramCursor {
	case 0:
		return m.size
	case 2:
		return m.speedMS
	}
	return 0
}

func (m *playerModel) applyParam(v int) {
	switch m.paramCursor {
	case 0:
		m.size = clamp(v, m.algorithm.MinSize, m.algorithm.MaxSize)
	case 2:
		m.speedMS = clamp(v, 20, 5000)
	}
}

func (m *playerModel) adjustParam(delta int) {
	switch m.paramCursor {
	case 0:
		m.size = clamp(m.size+delta, m.algorithm.MinSize, m.algorithm.MaxSize)
	case 1:
		m.caseIdx = (m.caseIdx + delta + len(cases)) % len(cases)
	case 2:
		m.speedMS = clamp(m.speedMS+delta*50, 20, 5000)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *playerModel) start() {
	alg, err := m.registry.Get(m.algorithm.ID)
	if err != nil {
		return
	}
	in := alg.GenerateInput(m.size, cases[m.caseIdx])
	steps := alg.GenerateSteps(in)
	m.engine.LoadSteps(steps)
	m.engine.SetSpeed(time.Duration(m.speedMS) * time.Millisecond)
	m.engine.Play()
}

func (m playerModel) playKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.engine.Stop()
		m.screen = screenConfig
		return m, tea.ClearScreen
	case " ", "p":
		st := m.engine.State()
		if st.Playing {
			m.engine.Pause()
		} else {
			m.engine.Play()
		}
	case "right", "l", "n":
		m.engine.StepForward()
	case "left", "h", "b":
		m.engine.StepBackward()
	case "g", "home":
		m.engine.GoToStep(0)
	case "G", "end":
		st := m.engine.State()
		m.engine.GoToStep(st.TotalSteps - 1)
	case "r":
		m.start()
	case "+", "=":
		m.speedMS = clamp(m.speedMS/2, 20, 5000)
		m.engine.SetSpeed(time.Duration(m.speedMS) * time.Millisecond)
	case "-", "_":
		m.speedMS = clamp(m.speedMS*2, 20, 5000)
		m.engine.SetSpeed(time.Duration(m.speedMS) * time.Millisecond)
	}
	return m, nil
}

func (m playerModel) View() string {
	switch m.screen {
	case screenCategories:
		return m.viewCategories()
	case screenAlgorithms:
		return m.viewAlgorithms()
	case screenConfig:
		return m.viewConfig()
	case screenPlay:
		return m.viewPlay()
	}
	return ""
}

func (m playerModel) viewCategories() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("a l g o l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.categories {
		count := fmt.Sprintf("%d algorithms", len(m.byCategory[name]))
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-22s", name)) + dim.Render(count) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-22s", name)) + dimmer.Render(count) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   q quit") + "\n")

	return b.String()
}

func (m playerModel) viewAlgorithms() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.category) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	for i, info := range m.byCategory[m.category] {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-26s", info.Name)) + dim.Render(info.Complexity.Average) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-26s", info.Name)) + dimmer.Render(info.Complexity.Average) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   esc back") + "\n")

	return b.String()
}

func (m playerModel) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.algorithm.Name) + "  " + dim.Render(m.algorithm.Category) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")
	b.WriteString("      " + dim.Render(m.algorithm.Description) + "\n\n")

	values := []string{
		fmt.Sprintf("%d  (%d-%d)", m.size, m.algorithm.MinSize, m.algorithm.MaxSize),
		string(cases[m.caseIdx]),
		strconv.Itoa(m.speedMS),
	}
	if !m.algorithm.SupportsCases {
		values[1] = dim.Render("n/a")
	}
	for i, name := range configParams {
		val := values[i]
		if m.editing && i == m.paramCursor {
			val = m.editBuf + "▋"
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n      " + dim.Render("complexity  ") +
		dim.Render(fmt.Sprintf("best %s  avg %s  worst %s  space %s",
			m.algorithm.Complexity.Best, m.algorithm.Complexity.Average,
			m.algorithm.Complexity.Worst, m.algorithm.Complexity.Space)) + "\n")

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")

	return b.String()
}

func (m playerModel) viewPlay() string {
	st := m.engine.State()

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("playing")
	if !st.Playing {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n", statusIcon, cyan.Render(m.algorithm.Name), statusText))

	if st.TotalSteps > 0 {
		progress := float64(st.Current) / float64(st.TotalSteps-1)
		if st.TotalSteps == 1 {
			progress = 1
		}
		barWidth := 36
		filled := int(progress * float64(barWidth))
		bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
		pos := fmt.Sprintf("step %d/%d", st.Current+1, st.TotalSteps)
		b.WriteString(fmt.Sprintf("   %s %s  %s\n\n", bar, dim.Render(pos), dim.Render(fmt.Sprintf("%dms", m.speedMS))))
	}

	if st.TotalSteps > 0 {
		step := st.Steps[st.Current]

		b.WriteString(renderSnapshot(step.State, m.width, m.height-14))
		b.WriteString("\n")

		b.WriteString("   " + white.Render(step.Description) + "\n")
		b.WriteString("   " + dim.Render(fmt.Sprintf("comparisons %d   swaps %d   memory %dB",
			step.Comparisons, step.Swaps, step.MemoryBytes)) + "\n")

		if step.PseudocodeLine >= 0 && step.PseudocodeLine < len(m.algorithm.Pseudocode) {
			b.WriteString("\n")
			for i, line := range m.algorithm.Pseudocode {
				if i == step.PseudocodeLine {
					b.WriteString("   " + yellow.Render("▸ "+line) + "\n")
				} else {
					b.WriteString("   " + dimmer.Render("  "+line) + "\n")
				}
			}
		}
	}

	b.WriteString("\n" + dim.Render("   space pause  ←→ step  g/G ends  ± speed  r restart  q back") + "\n")

	return b.String()
}

// Run starts the full-screen player over the given catalog.
func Run(registry *algo.Registry) error {
	p := tea.NewProgram(NewPlayer(registry), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
