// Package workbench provides the Bubble Tea tool workbench interface.
package workbench

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"textkit/internal/model"
	"textkit/internal/store"
)

const (
	fieldText = iota
	fieldShift
)

// Model implements the Bubble Tea workbench UI.
type Model struct {
	store *store.Store
	cfg   model.Config

	tools      []string
	activeTool int

	textInput  textinput.Model
	shiftInput textinput.Model
	fieldIndex int

	editMode     bool
	confirmClear bool

	result    string
	hasResult bool
	errMsg    string

	entries     []model.Operation
	carouselIdx int

	width  int
	height int
}

// NewModel constructs a workbench model. The store handle is owned by
// the caller and must outlive the program run.
func NewModel(cfg model.Config, st *store.Store) *Model {
	m := &Model{
		store: st,
		cfg:   cfg,
		tools: model.Tools,
	}
	for i, tool := range m.tools {
		if tool == cfg.Tool {
			m.activeTool = i
		}
	}
	m.initInputs()
	m.enterEditMode()
	m.loadHistory()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirmClear {
			return m.updateDialog(msg)
		}
		if m.editMode {
			return m.updateEdit(msg)
		}
		return m.updateNav(msg)
	}
	return m, nil
}

func (m *Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.confirmClear = false
		if err := m.store.Clear(context.Background()); err != nil {
			m.errMsg = fmt.Sprintf("failed to clear history: %v", err)
			return m, nil
		}
		m.errMsg = ""
		m.loadHistory()
		return m, nil
	case "n", "esc", "q":
		m.confirmClear = false
		return m, nil
	}
	return m, nil
}

func (m *Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.moveTool(-1)
		return m, nil
	case "down", "j":
		m.moveTool(1)
		return m, nil
	case "left", "h":
		m.moveCarousel(-1)
		return m, nil
	case "right", "l":
		m.moveCarousel(1)
		return m, nil
	case "enter", "i":
		return m, m.enterEditMode()
	case "x":
		m.confirmClear = true
		return m, nil
	}
	return m, nil
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leaveEditMode()
		return m, nil
	case tea.KeyEnter:
		m.runActive()
		return m, nil
	case tea.KeyTab:
		return m, m.setFieldIndex(m.fieldIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFieldIndex(m.fieldIndex - 1)
	}
	var cmd tea.Cmd
	if m.fieldIndex == fieldShift {
		m.shiftInput, cmd = m.shiftInput.Update(msg)
	} else {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) initInputs() {
	m.textInput = newFieldInput("> ")
	m.shiftInput = newFieldInput("Shift: ")
	m.shiftInput.SetValue(fmt.Sprintf("%d", m.cfg.Shift))
	m.textInput.Placeholder = placeholderFor(m.tools[m.activeTool])
}

func newFieldInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func placeholderFor(tool string) string {
	switch tool {
	case model.ToolCalc:
		return "2 + 3"
	case model.ToolAnalyze:
		return "1 8 3 4 2 6"
	case model.ToolCaesar:
		return "Hello, World!"
	default:
		return "some text"
	}
}

func (m *Model) enterEditMode() tea.Cmd {
	m.editMode = true
	return m.setFieldIndex(fieldText)
}

func (m *Model) leaveEditMode() {
	m.editMode = false
	m.textInput.Blur()
	m.shiftInput.Blur()
}

func (m *Model) fieldCount() int {
	if m.tools[m.activeTool] == model.ToolCaesar {
		return 2
	}
	return 1
}

func (m *Model) setFieldIndex(idx int) tea.Cmd {
	count := m.fieldCount()
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.fieldIndex = idx
	m.textInput.Blur()
	m.shiftInput.Blur()
	if m.fieldIndex == fieldShift {
		return m.shiftInput.Focus()
	}
	return m.textInput.Focus()
}

func (m *Model) moveTool(delta int) {
	count := len(m.tools)
	next := m.activeTool + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	if next == m.activeTool {
		return
	}
	m.activeTool = next
	m.fieldIndex = fieldText
	m.result = ""
	m.hasResult = false
	m.errMsg = ""
	m.textInput.Placeholder = placeholderFor(m.tools[m.activeTool])
	m.loadHistory()
}

func (m *Model) moveCarousel(delta int) {
	count := len(m.entries)
	if count == 0 {
		return
	}
	next := m.carouselIdx + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.carouselIdx = next
}

func (m *Model) runActive() {
	input := m.textInput.Value()
	tool := m.tools[m.activeTool]
	started := time.Now()
	output, shift, err := evalTool(tool, input, m.shiftInput.Value())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	duration := time.Since(started)
	m.errMsg = ""
	m.result = output
	m.hasResult = true
	if m.cfg.SaveHistory {
		m.recordOperation(model.Operation{
			CreatedAt:  started.UTC(),
			Tool:       tool,
			Input:      input,
			Shift:      shift,
			Output:     output,
			DurationUs: duration.Microseconds(),
		})
	}
}

func (m *Model) recordOperation(op model.Operation) {
	if _, err := m.store.InsertOperation(context.Background(), op); err != nil {
		m.errMsg = fmt.Sprintf("failed to save history: %v", err)
		return
	}
	m.loadHistory()
}

func (m *Model) loadHistory() {
	filter := model.HistoryFilter{Tool: m.tools[m.activeTool], Last: m.cfg.HistoryLimit}
	entries, err := m.store.ListOperations(context.Background(), filter)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load history: %v", err)
		return
	}
	m.entries = entries
	m.carouselIdx = len(entries) - 1
	if m.carouselIdx < 0 {
		m.carouselIdx = 0
	}
}

func (m *Model) updateLayout() {
	if m.width <= 0 {
		return
	}
	inputWidth := m.width - sidebarWidth(m.tools) - 8
	if inputWidth < 16 {
		inputWidth = 16
	}
	m.textInput.Width = inputWidth
	m.shiftInput.Width = 8
}

func sidebarWidth(tools []string) int {
	width := 0
	for _, tool := range tools {
		if len(tool) > width {
			width = len(tool)
		}
	}
	return width + 4 // border and padding
}

func (m *Model) activeEntry() (model.Operation, bool) {
	if len(m.entries) == 0 || m.carouselIdx >= len(m.entries) {
		return model.Operation{}, false
	}
	return m.entries[m.carouselIdx], true
}

func summaryLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
