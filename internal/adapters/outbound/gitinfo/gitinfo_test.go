package gitinfo

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGitRepo_NonRepo(t *testing.T) {
	assert.False(t, New().IsGitRepo(t.TempDir()))
}

func TestCommitHash_NonRepo(t *testing.T) {
	_, err := New().CommitHash(t.TempDir())
	assert.Error(t, err)
}

func TestChangedFiles_UntrackedCheckableFile(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.js"), []byte("let a;"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))

	g := New()
	assert.True(t, g.IsGitRepo(dir))

	files, err := g.ChangedFiles(dir)
	require.NoError(t, err)

	// only the checkable file shows up
	assert.Equal(t, []string{"notes.js"}, files)
}
