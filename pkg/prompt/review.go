package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// reviewModel represents the Bubble Tea model for unused file review.
type reviewModel struct {
	paths           []string
	kept            map[int]bool // indices excluded from deletion
	filteredPaths   []string
	filteredIndices []int // maps filtered index to original index
	cursor          int
	filter          string
	confirmed       bool
	quitting        bool
}

// initialReviewModel creates a new review model with every file marked for deletion.
func initialReviewModel(paths []string) reviewModel {
	return reviewModel{
		paths:           paths,
		kept:            make(map[int]bool),
		filteredPaths:   paths,
		filteredIndices: makeRange(len(paths)),
		cursor:          0,
		filter:          "",
		confirmed:       false,
		quitting:        false,
	}
}

// makeRange creates a slice of integers from 0 to n-1.
func makeRange(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Init initializes the model.
func (m reviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m *reviewModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Handle special keys
	if m.handleSpecialKeys(key) {
		return m, tea.Quit
	}

	// Handle navigation keys
	m.handleNavigationKeys(key)

	// Handle filter keys
	m.handleFilterKeys(key)

	return m, nil
}

// handleSpecialKeys handles special keys that cause the program to quit or toggle entries.
func (m *reviewModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return true
	case "enter":
		m.confirmed = true
		return true
	case " ":
		if len(m.filteredPaths) > 0 && m.cursor < len(m.filteredPaths) {
			idx := m.filteredIndices[m.cursor]
			m.kept[idx] = !m.kept[idx]
		}
	}
	return false
}

// handleNavigationKeys handles navigation keys (up/down).
func (m *reviewModel) handleNavigationKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filteredPaths)-1 {
			m.cursor++
		}
	}
}

// handleFilterKeys handles filter-related keys.
func (m *reviewModel) handleFilterKeys(key string) {
	switch key {
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredPaths()
		}
	case "esc":
		m.filter = ""
		m.updateFilteredPaths()
	default:
		// Handle regular character input for filtering
		if len(key) == 1 && key != " " {
			m.filter += key
			m.updateFilteredPaths()
		}
	}
}

// updateFilteredPaths updates the filtered paths based on the current filter.
func (m *reviewModel) updateFilteredPaths() {
	if m.filter == "" {
		m.filteredPaths = m.paths
		m.filteredIndices = makeRange(len(m.paths))
	} else {
		m.filteredPaths = []string{}
		m.filteredIndices = []int{}

		filterLower := strings.ToLower(m.filter)
		for i, path := range m.paths {
			if strings.Contains(strings.ToLower(path), filterLower) {
				m.filteredPaths = append(m.filteredPaths, path)
				m.filteredIndices = append(m.filteredIndices, i)
			}
		}
	}

	// Reset cursor if it's out of bounds
	if m.cursor >= len(m.filteredPaths) {
		m.cursor = 0
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedPaths returns the paths still marked for deletion.
func (m reviewModel) selectedPaths() []string {
	var result []string
	for i, path := range m.paths {
		if !m.kept[i] {
			result = append(result, path)
		}
	}
	return result
}

// View renders the UI.
func (m reviewModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	// Header
	s.WriteString("? Review unused files:  [Use arrows to move, type to filter, Space to keep a file]\n\n")

	// Show filter if active
	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	// Show paths with deletion markers
	for i, path := range m.filteredPaths {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		marker := "[delete]"
		if m.kept[m.filteredIndices[i]] {
			marker = "[keep]  "
		}
		s.WriteString(fmt.Sprintf("%s %s %s\n", cursor, marker, path))
	}

	// Footer
	s.WriteString("\nPress Enter to confirm, Ctrl+C or q to abort")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// promptReviewFilesBubbleTea runs the Bubble Tea program for file review.
func promptReviewFilesBubbleTea(paths []string) ([]string, error) {
	// Create and run the program
	p := tea.NewProgram(initialReviewModel(paths))

	// Run the program
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run review program: %w", err)
	}

	// Cast to our model type
	model, ok := finalModel.(reviewModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	// Check if user aborted without confirming
	if !model.confirmed {
		return nil, ErrReviewAborted
	}

	return model.selectedPaths(), nil
}
