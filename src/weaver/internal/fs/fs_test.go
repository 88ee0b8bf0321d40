package fs

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp")
	fs := New()
	dir, err := fs.UserCacheDir()
	assert.NoError(t, err)
	assert.NotEmpty(t, dir)
}

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	err := fs.MkdirAll(path.Join(dir, "foo/bar"))
	assert.NoError(t, err)
}

func TestDirExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir + "foo")
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestFileExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		filePath := path.Join(dir, "a")
		os.WriteFile(filePath, []byte("contents"), 0666)
		fs := New()
		result, err := fs.FileExists(filePath)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		fs := New()
		result, err := fs.FileExists(path.Join(t.TempDir(), "missing"))
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestReadDir(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(path.Join(dir, "a"), []byte("a"), 0666)
		os.WriteFile(path.Join(dir, "b"), []byte("b"), 0666)
		fs := New()
		result, err := fs.ReadDir(dir)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		_, err := fs.ReadDir(dir + "foo")
		assert.Error(t, err)
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "a")
	os.WriteFile(file, []byte("contents"), 0666)
	fs := New()
	result, err := fs.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "contents", string(result))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "a")
	fs := New()
	err := fs.WriteFile(file, "data")
	assert.NoError(t, err)
	result, _ := os.ReadFile(file)
	assert.Equal(t, "data", string(result))
}

func TestTempFile(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	result, err := fs.TempFile(dir, "foo")
	defer os.Remove(result.Name())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Name(), path.Join(dir, "foo")))
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	src := path.Join(dir, "a")
	dst := path.Join(dir, "b")
	os.WriteFile(src, []byte("contents"), 0666)
	fs := New()
	err := fs.Rename(src, dst)
	assert.NoError(t, err)
	result, _ := os.ReadFile(dst)
	assert.Equal(t, "contents", string(result))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "a")
	os.WriteFile(file, []byte("contents"), 0666)
	fs := New()
	err := fs.Remove(file)
	assert.NoError(t, err)
}
