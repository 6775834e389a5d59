package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodies(t *testing.T) {
	assert.Equal(t, "static", Text("static").View())

	n := 0
	f := BodyFunc(func() string {
		n++
		return "dynamic"
	})
	f.View()
	f.View()
	assert.Equal(t, 2, n, "BodyFunc renders on every view")
}

func TestMarkdown(t *testing.T) {
	md, err := NewMarkdown("Help", "# Keys\n\nPress **q** to quit.", 40)
	require.NoError(t, err)

	assert.Equal(t, "Help", md.Title())
	view := ansi.Strip(md.View())
	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "quit")
}

func TestNewStyles(t *testing.T) {
	s := New()
	require.NotNil(t, s)

	assert.Equal(t, lipgloss.RoundedBorder(), s.Popup.GetBorderStyle())
	assert.True(t, s.Title.GetBold())
	assert.True(t, s.ItemActive.GetBold())
	assert.False(t, s.Item.GetBold())
}
