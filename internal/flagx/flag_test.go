package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-d", "vault.db", "-x", "ignored", "-b", "sqlite"}
	got := FilterArgs(args, []string{"-d", "-b"})
	assert.Equal(t, []string{"-d", "vault.db", "-b", "sqlite"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"-config=conf.json", "-other=zzz"}
	got := FilterArgs(args, []string{"-config"})
	assert.Equal(t, []string{"-config=conf.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-d", "vault.db"}
	got := FilterArgs(args, []string{"-v"})
	assert.Equal(t, []string{"-v"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-d"})
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"vaultnotes", "-c", "conf.json", "-d", "vault.db"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"vaultnotes", "-config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"vaultnotes", "-d", "vault.db"}
	assert.Equal(t, "", JsonConfigFlags())
}
