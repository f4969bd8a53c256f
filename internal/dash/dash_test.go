package dash

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eqgft/fieldviz/internal/metrics"
	"github.com/eqgft/fieldviz/internal/render"
)

func loadTable(t *testing.T, content string) *metrics.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	table, err := metrics.Load(path)
	require.NoError(t, err)
	return table
}

const threeKinds = `kind,timestamp,payload
a,1732400000,"{""value"": 1.0}"
b,1732400030,"{""value"": 2.0}"
c,1732400060,"{""value"": 3.0}"
a,1732400090,"{""value"": 1.5}"
b,1732400120,"{""value"": 2.5}"
c,1732400150,"{""value"": 3.5}"
`

func TestDefaultSelection(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, DefaultSelection([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"a"}, DefaultSelection([]string{"a"}))
	assert.Empty(t, DefaultSelection(nil))
}

func TestServer_DefaultSelectionRendered(t *testing.T) {
	table := loadTable(t, threeKinds)
	srv := NewServer(table, render.ThemePhosphor)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	page := string(body)

	// a and b checked by default, c listed but unchecked
	assert.Contains(t, page, `value="a" checked`)
	assert.Contains(t, page, `value="b" checked`)
	assert.Contains(t, page, `value="c"`)
	assert.False(t, strings.Contains(page, `value="c" checked`))
	assert.Contains(t, page, "<svg")
	// calendar time range of the plotted points
	assert.Contains(t, page, "2024-11-23")
}

func TestServer_SelectionFilter(t *testing.T) {
	table := loadTable(t, threeKinds)
	srv := NewServer(table, render.ThemePhosphor)

	req := httptest.NewRequest("GET", "/?kind=c", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	page := rec.Body.String()
	assert.Contains(t, page, `value="c" checked`)
	assert.False(t, strings.Contains(page, `value="a" checked`))
	// exactly one plotted series
	assert.Equal(t, 1, strings.Count(page, "<path"))
}

func TestServer_MalformedPayloadFailsRender(t *testing.T) {
	table := loadTable(t, `kind,timestamp,payload
a,1,"{""value"": 1.0}"
a,2,"{""unit"": ""%""}"
`)
	srv := NewServer(table, render.ThemePhosphor)

	req := httptest.NewRequest("GET", "/?kind=a", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, 500, rec.Code)
	assert.Contains(t, rec.Body.String(), "value")
}

func TestModel_DefaultSelection(t *testing.T) {
	table := loadTable(t, threeKinds)
	m := NewModel(table, render.ThemePhosphor)
	assert.Equal(t, []string{"a", "b"}, m.Selection())
}

func TestModel_ToggleRedraws(t *testing.T) {
	table := loadTable(t, threeKinds)
	m := NewModel(table, render.ThemePhosphor)

	// move to c and select it
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)

	assert.Equal(t, []string{"a", "b", "c"}, m.Selection())
	assert.Contains(t, m.View(), "c")
}

func TestModel_Quit(t *testing.T) {
	table := loadTable(t, threeKinds)
	m := NewModel(table, render.ThemePhosphor)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
