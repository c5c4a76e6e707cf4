package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	recorder, err := NewRecorder()
	require.NoError(t, err)
	defer recorder.Close()

	require.NoError(t, recorder.Record("PROJ-1", "**Business Value Score:** High"))
	require.NoError(t, recorder.Record("PROJ-2", "**Business Value Score:** Low"))
	require.NoError(t, recorder.Close())

	dir, err := Dir()
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "transcripts"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, "transcripts", entries[0].Name()))
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "## PROJ-1")
	assert.Contains(t, text, "## PROJ-2")
	assert.Contains(t, text, "**Business Value Score:** High")
	assert.True(t, strings.HasPrefix(entries[0].Name(), "assessments-"))
}

func TestHistoryFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := HistoryFile()
	require.NoError(t, err)
	assert.Equal(t, "history", filepath.Base(path))

	// The parent directory must exist so readline can create the file.
	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.Error(t, r.Record("PROJ-1", "text"))
	assert.NoError(t, r.Close())
}
