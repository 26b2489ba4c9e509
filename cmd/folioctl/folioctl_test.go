package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, interactive bool, answers ...string) {
	t.Helper()

	origRead, origIsTerminal := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origIsTerminal })

	isTerminal = func(int) bool { return interactive }
	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more input")
		}
		answer := answers[0]
		answers = answers[1:]

		return []byte(answer), nil
	}
}

func TestResolvePassword(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(passwordEnv, "from-env")

		secret, err := resolvePassword(&bytes.Buffer{}, "from-flag")

		require.NoError(t, err)
		assert.Equal(t, "from-flag", secret)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(passwordEnv, "from-env")

		secret, err := resolvePassword(&bytes.Buffer{}, "")

		require.NoError(t, err)
		assert.Equal(t, "from-env", secret)
	})

	t.Run("prompt with confirmation", func(t *testing.T) {
		t.Setenv(passwordEnv, "")
		stubTerminal(t, true, "hunter2", "hunter2")
		var out bytes.Buffer

		secret, err := resolvePassword(&out, "")

		require.NoError(t, err)
		assert.Equal(t, "hunter2", secret)
		assert.Contains(t, out.String(), "Confirm password: ")
	})

	t.Run("prompt mismatch", func(t *testing.T) {
		t.Setenv(passwordEnv, "")
		stubTerminal(t, true, "hunter2", "hunter3")

		_, err := resolvePassword(&bytes.Buffer{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "do not match")
	})

	t.Run("non interactive without password", func(t *testing.T) {
		t.Setenv(passwordEnv, "")
		stubTerminal(t, false)

		_, err := resolvePassword(&bytes.Buffer{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), passwordEnv)
	})
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"admin", "create"},
		{"admin", "reset-password"},
		{"migrate", "up"},
		{"migrate", "status"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	create, _, err := root.Find([]string{"admin", "create"})
	require.NoError(t, err)
	assert.NotNil(t, create.Flags().Lookup("password"))
	assert.Equal(t, "admin", create.Flags().Lookup("username").DefValue)
}
