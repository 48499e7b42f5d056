package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")

	t.Run("partial line at EOF is returned", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("no newline"))
		got, err := GetSimpleText(reader, "p", &out)
		require.NoError(t, err)
		assert.Equal(t, "no newline", got)
	})

	t.Run("empty input at EOF is an error", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader(""))
		_, err := GetSimpleText(reader, "p", &out)
		assert.Error(t, err)
	})
}

func TestGetSecret(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetSecret("Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), got)
	assert.Contains(t, out.String(), "Enter password")
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	got, err := GetMultiline(reader, "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)
}
