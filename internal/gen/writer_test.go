package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write_CreatesDirectories(t *testing.T) {
	fs := memfs.New()
	w := NewWriter(fs)

	err := w.Write(&GeneratedFile{Path: "include/regs/dev.hpp", Content: []byte("// dev\n")})
	require.NoError(t, err)

	got, err := util.ReadFile(fs, "include/regs/dev.hpp")
	require.NoError(t, err)
	assert.Equal(t, "// dev\n", string(got))

	fi, err := fs.Stat("include/regs")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestWriter_Write_Overwrites(t *testing.T) {
	fs := memfs.New()
	w := NewWriter(fs)

	require.NoError(t, w.Write(&GeneratedFile{Path: "dev.hpp", Content: []byte("old header with more bytes\n")}))
	require.NoError(t, w.Write(&GeneratedFile{Path: "dev.hpp", Content: []byte("new\n")}))

	got, err := util.ReadFile(fs, "dev.hpp")
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}

func TestWriter_Write_EmptyPath(t *testing.T) {
	err := NewWriter(memfs.New()).Write(&GeneratedFile{Content: []byte("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}

func TestWriter_Write_StaysInsideBaseDirectory(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(osfs.New(base))

	err := w.Write(&GeneratedFile{Path: "../escape/dev.hpp", Content: []byte("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, billy.ErrCrossedBoundary)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "creating directory", ioErr.Op)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(base), "escape"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_Write_AbsolutePathIsRebased(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(osfs.New(base))

	require.NoError(t, w.Write(&GeneratedFile{Path: "/gen/dev.hpp", Content: []byte("x")}))

	got, err := os.ReadFile(filepath.Join(base, "gen", "dev.hpp"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

func TestWriter_Write_ParentIsAFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "taken", []byte("file"), 0o644))

	err := NewWriter(fs).Write(&GeneratedFile{Path: "taken/dev.hpp", Content: []byte("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
