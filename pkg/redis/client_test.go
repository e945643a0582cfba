package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("tls url with embedded credentials", func(t *testing.T) {
		opts, err := Options(Config{URL: "rediss://default:pw@eu1-upstash.io"})
		require.NoError(t, err)
		assert.Equal(t, "eu1-upstash.io:6379", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Equal(t, "default", opts.Username)
		require.NotNil(t, opts.TLSConfig)
	})

	t.Run("explicit password wins", func(t *testing.T) {
		opts, err := Options(Config{URL: "redis://localhost:6380", Password: "override"})
		require.NoError(t, err)
		assert.Equal(t, "localhost:6380", opts.Addr)
		assert.Equal(t, "override", opts.Password)
		assert.Nil(t, opts.TLSConfig)
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := Options(Config{})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("bad scheme", func(t *testing.T) {
		_, err := Options(Config{URL: "http://localhost"})
		assert.Error(t, err)
	})
}
