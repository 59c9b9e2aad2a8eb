package prompt

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_EnterWithValue(t *testing.T) {
	m := NewModel("File name to create:", "  main.go ")
	m.Init()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.done)
	assert.False(t, m.cancelled)
	assert.Equal(t, "main.go", m.Value())
}

func TestModel_EnterEmptyShowsError(t *testing.T) {
	m := NewModel("File name to create:", "")
	m.Init()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.done)
	assert.Equal(t, "file name must not be empty", m.errMsg)
}

func TestModel_EscCancels(t *testing.T) {
	m := NewModel("File name to create:", "x")
	m.Init()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.True(t, m.cancelled)
	assert.False(t, m.done)
}

func TestModel_TypingClearsError(t *testing.T) {
	m := NewModel("File name to create:", "")
	m.Init()
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotEmpty(t, m.errMsg)

	m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Empty(t, m.errMsg)
}
