package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/debounce"
)

func typeRunes(t *testing.T, s *SearchBar, text string) []tea.Cmd {
	t.Helper()
	var cmds []tea.Cmd
	for _, r := range text {
		cmd, event := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		assert.Nil(t, event)
		cmds = append(cmds, cmd)
	}
	return cmds
}

// settle runs cmd and returns the debounce message it produced, if any
func settle(cmd tea.Cmd) (debounce.SettledMsg, bool) {
	if cmd == nil {
		return debounce.SettledMsg{}, false
	}
	switch msg := cmd().(type) {
	case debounce.SettledMsg:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if m, ok := settle(c); ok {
				return m, true
			}
		}
	}
	return debounce.SettledMsg{}, false
}

func TestSearchBarDebouncesTyping(t *testing.T) {
	s := NewSearchBar(time.Millisecond)
	s.Focus()

	cmds := typeRunes(t, &s, "up")
	require.Len(t, cmds, 2)
	assert.Equal(t, "up", s.Value())

	first, ok := settle(cmds[0])
	require.True(t, ok)
	_, event := s.Update(first)
	assert.Nil(t, event, "superseded keystroke must not search")

	last, ok := settle(cmds[1])
	require.True(t, ok)
	_, event = s.Update(last)
	require.NotNil(t, event)
	assert.Equal(t, "up", event.Query)
}

func TestSearchBarEnterSubmitsImmediately(t *testing.T) {
	s := NewSearchBar(time.Millisecond)
	s.Focus()

	cmds := typeRunes(t, &s, "jaws")

	_, event := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, event)
	assert.Equal(t, "jaws", event.Query)

	// The pending debounce was cancelled by Enter
	pending, ok := settle(cmds[len(cmds)-1])
	require.True(t, ok)
	_, event = s.Update(pending)
	assert.Nil(t, event)
}

func TestSearchBarIgnoresKeysWhenBlurred(t *testing.T) {
	s := NewSearchBar(time.Millisecond)

	cmd, event := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
	assert.Nil(t, event)
	assert.Empty(t, s.Value())
}

func TestSearchBarSetValueCancelsPending(t *testing.T) {
	s := NewSearchBar(time.Millisecond)
	s.Focus()

	cmds := typeRunes(t, &s, "a")
	s.SetValue("")

	pending, ok := settle(cmds[0])
	require.True(t, ok)
	_, event := s.Update(pending)
	assert.Nil(t, event)
	assert.Empty(t, s.Value())
}
