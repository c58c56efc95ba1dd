package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_Value(t *testing.T) {
	tests := []struct {
		name string
		in   Categories
		want string
	}{
		{name: "nil is empty array", in: nil, want: "[]"},
		{name: "empty", in: Categories{}, want: "[]"},
		{name: "two tags", in: Categories{"go", "music"}, want: `["go","music"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.in.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestCategories_Scan(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		var c Categories
		require.NoError(t, c.Scan([]byte(`["life","tech"]`)))
		assert.Equal(t, Categories{"life", "tech"}, c)
	})

	t.Run("string", func(t *testing.T) {
		var c Categories
		require.NoError(t, c.Scan(`["life"]`))
		assert.Equal(t, Categories{"life"}, c)
	})

	t.Run("nil", func(t *testing.T) {
		var c Categories
		require.NoError(t, c.Scan(nil))
		assert.Equal(t, Categories{}, c)
	})

	t.Run("json null", func(t *testing.T) {
		var c Categories
		require.NoError(t, c.Scan("null"))
		assert.Equal(t, Categories{}, c)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var c Categories
		assert.Error(t, c.Scan(42))
	})

	t.Run("malformed", func(t *testing.T) {
		var c Categories
		assert.Error(t, c.Scan("{oops"))
	})
}

func TestCategories_Contains(t *testing.T) {
	c := Categories{"music", "life"}
	assert.True(t, c.Contains("music"))
	assert.False(t, c.Contains("Music"))
	assert.False(t, Categories(nil).Contains("music"))
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	assert.True(t, UserUpdate{}.IsEmpty())

	name := "bob"
	assert.False(t, UserUpdate{Username: &name}.IsEmpty())
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
