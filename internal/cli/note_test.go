package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTestUser(t *testing.T, a *App) {
	t.Helper()
	stubInputs(t, []string{"alice", ""}, []string{"pw12345!", "correct horse battery staple"})
	require.NoError(t, a.Register(context.Background()))
}

func stubMultiline(t *testing.T, text string) {
	t.Helper()
	orig := getMultiline
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	t.Cleanup(func() { getMultiline = orig })
}

func TestAddAndShowNote(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	registerTestUser(t, a)

	stubInputs(t, []string{"Groceries", ""}, nil)
	stubMultiline(t, "milk\neggs")
	require.NoError(t, a.AddNote(ctx))

	list, err := a.notes.List(ctx, a.session, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Groceries", list[0].Title)

	stubInputs(t, []string{list[0].ID}, nil)
	assert.NoError(t, a.ShowNote(ctx))

	t.Run("commands require a session", func(t *testing.T) {
		require.NoError(t, a.Logout(ctx))
		stubInputs(t, []string{"whatever", ""}, nil)
		assert.Error(t, a.AddNote(ctx))
	})
}

func TestAddAndSaveFile(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	registerTestUser(t, a)

	origRead := readFile
	readFile = func(name string) ([]byte, error) { return []byte("file payload"), nil }
	t.Cleanup(func() { readFile = origRead })

	stubInputs(t, []string{"/tmp/report.pdf", ""}, nil)
	require.NoError(t, a.AddFile(ctx))

	list, err := a.files.List(ctx, a.session, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "report.pdf", list[0].Name)
	assert.Equal(t, "application/pdf", list[0].MimeType)

	outPath := filepath.Join(t.TempDir(), "out.pdf")
	stubInputs(t, []string{list[0].ID, outPath}, nil)
	require.NoError(t, a.SaveFile(ctx))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("file payload"), data)
}
