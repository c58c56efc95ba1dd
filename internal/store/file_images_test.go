package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
)

func TestNewImageFileStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")

	s, err := NewImageFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewImageFileStorage_EmptyDir(t *testing.T) {
	_, err := NewImageFileStorage("", logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidFileName)
}

func TestImageFileStorage_Save(t *testing.T) {
	dir := t.TempDir()
	s, err := NewImageFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	t.Run("writes file", func(t *testing.T) {
		n, err := s.Save(context.Background(), "cat.png", strings.NewReader("meow"))
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)

		got, err := os.ReadFile(filepath.Join(dir, "cat.png"))
		require.NoError(t, err)
		assert.Equal(t, "meow", string(got))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		_, err := s.Save(context.Background(), "cat.png", strings.NewReader("purr"))
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(dir, "cat.png"))
		require.NoError(t, err)
		assert.Equal(t, "purr", string(got))
	})

	t.Run("path components are stripped", func(t *testing.T) {
		for _, name := range []string{"../../escape.png", "a/b/escape.png", `..\..\escape.png`} {
			_, err := s.Save(context.Background(), name, strings.NewReader("x"))
			require.NoError(t, err, name)
		}

		_, err := os.Stat(filepath.Join(dir, "escape.png"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.png"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, name := range []string{"", "/", ".", "..", ".upload-123"} {
			_, err := s.Save(context.Background(), name, strings.NewReader("x"))
			assert.ErrorIs(t, err, ErrInvalidFileName, name)
		}
	})

	t.Run("cancelled context leaves no file", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Save(ctx, "never.png", strings.NewReader("x"))
		require.Error(t, err)

		_, statErr := os.Stat(filepath.Join(dir, "never.png"))
		assert.True(t, os.IsNotExist(statErr))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), ".upload-"), "temp file left behind: %s", e.Name())
		}
	})
}
