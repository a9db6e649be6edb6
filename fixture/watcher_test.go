// SPDX-License-Identifier: MIT
package fixture_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdwg/fixture"
)

// TestWatcher_Reload VERIFIES a failed reload keeps the previous document.
func TestWatcher_Reload(t *testing.T) {
	path := writeFile(t, "g.yaml", sampleYAML)
	w, err := fixture.NewWatcher(path, nil)
	require.NoError(t, err)
	require.Len(t, w.Document().Nodes, 3)

	var seen []*fixture.Document
	w.OnChange(func(d *fixture.Document) { seen = append(seen, d) })

	require.NoError(t, os.WriteFile(path, []byte(`nodes: ["7"]`), 0o644))
	doc, err := w.Reload()
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, doc.Nodes)
	assert.Same(t, doc, w.Document())
	require.Len(t, seen, 1)

	require.NoError(t, os.WriteFile(path, []byte("nodes: [unterminated"), 0o644))
	_, err = w.Reload()
	require.Error(t, err)
	assert.Equal(t, []string{"7"}, w.Document().Nodes)
	assert.Len(t, seen, 1)
}

// TestWatcher_Watch VERIFIES file writes trigger the change callback.
func TestWatcher_Watch(t *testing.T) {
	path := writeFile(t, "g.yaml", sampleYAML)
	w, err := fixture.NewWatcher(path, nil)
	require.NoError(t, err)

	changed := make(chan *fixture.Document, 8)
	w.OnChange(func(d *fixture.Document) { changed <- d })

	stop, err := w.Watch()
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte(`nodes: ["9"]`), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case d := <-changed:
			if len(d.Nodes) == 1 && d.Nodes[0] == "9" {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

// TestNewWatcher_MissingFile VERIFIES the initial load error surfaces.
func TestNewWatcher_MissingFile(t *testing.T) {
	_, err := fixture.NewWatcher(t.TempDir()+"/nope.yaml", nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}
