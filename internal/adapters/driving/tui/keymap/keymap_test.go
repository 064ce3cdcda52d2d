package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"submit", km.Submit, []string{"enter"}},
		{"next tab", km.NextTab, []string{"tab"}},
		{"prev tab", km.PrevTab, []string{"shift+tab"}},
		{"finance", km.Finance, []string{"1"}},
		{"admin", km.Admin, []string{"2"}},
		{"manual review", km.ManualReview, []string{"3"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
		})
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("shift+tab", km.PrevTab))
	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("", km.Help))
}

func TestHelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 3)
	assert.NotEmpty(t, km.UploadHelp())
	assert.NotEmpty(t, km.DocumentsHelp())
	assert.Len(t, km.FullHelp(), 4)
}

func TestBindings_HaveHelp(t *testing.T) {
	for _, group := range DefaultKeyMap().FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
			assert.NotEmpty(t, b.Help().Desc)
		}
	}
}
