//go:build unit

package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func drive(t *testing.T, m reviewModel, keys ...string) reviewModel {
	t.Helper()
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(keyMsg(k))
	}
	result, ok := model.(reviewModel)
	require.True(t, ok)
	return result
}

func TestReviewModel_ConfirmAll(t *testing.T) {
	paths := []string{"img/pictures/a.png", "audio/se/b.ogg"}
	m := drive(t, initialReviewModel(paths), "enter")

	assert.True(t, m.confirmed)
	assert.Equal(t, paths, m.selectedPaths())
}

func TestReviewModel_KeepOne(t *testing.T) {
	paths := []string{"img/pictures/a.png", "audio/se/b.ogg"}

	// Move to the second entry, mark it kept, confirm
	m := drive(t, initialReviewModel(paths), "down", " ", "enter")

	assert.True(t, m.confirmed)
	assert.Equal(t, []string{"img/pictures/a.png"}, m.selectedPaths())
}

func TestReviewModel_ToggleTwiceRestoresDeletion(t *testing.T) {
	paths := []string{"img/pictures/a.png"}

	m := drive(t, initialReviewModel(paths), " ", " ", "enter")

	assert.Equal(t, paths, m.selectedPaths())
}

func TestReviewModel_FilterNarrowsAndTogglesOriginalIndex(t *testing.T) {
	paths := []string{"img/pictures/a.png", "audio/se/b.ogg", "img/tilesets/c.png"}

	// Filter to audio entries, keep the match, clear filter and confirm
	m := drive(t, initialReviewModel(paths), "o", "g", "g", " ", "esc", "enter")

	assert.Equal(t, []string{"img/pictures/a.png", "img/tilesets/c.png"}, m.selectedPaths())
}

func TestReviewModel_QuitAborts(t *testing.T) {
	paths := []string{"img/pictures/a.png"}

	m := drive(t, initialReviewModel(paths), "q")

	assert.True(t, m.quitting)
	assert.False(t, m.confirmed)
}

func TestReviewModel_ViewShowsMarkers(t *testing.T) {
	paths := []string{"img/pictures/a.png", "audio/se/b.ogg"}

	m := drive(t, initialReviewModel(paths), " ")

	view := m.View()
	assert.Contains(t, view, "[keep]")
	assert.Contains(t, view, "[delete]")
	assert.Contains(t, view, "img/pictures/a.png")
}
