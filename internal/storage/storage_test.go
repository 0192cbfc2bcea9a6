package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	_, found, err := s.Get(ctx, KeyPredictions)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, KeyPredictions, []byte(`[{"id":"a"}]`)))

	value, found, err := s.Get(ctx, KeyPredictions)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":"a"}]`), value)

	require.NoError(t, s.Delete(ctx, KeyPredictions))
	_, found, err = s.Get(ctx, KeyPredictions)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreDefensiveCopies(t *testing.T) {
	s := NewMemoryStore()
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	in := []byte("original")
	require.NoError(t, s.Set(ctx, KeyTheme, in))
	in[0] = 'X'

	out, found, err := s.Get(ctx, KeyTheme)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("original"), out)

	out[0] = 'Y'
	again, _, err := s.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docai.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	_, found, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, KeyUser, []byte(`{"id":"d1"}`)))

	value, found, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"id":"d1"}`), value)
}

func TestSQLiteStoreUpsert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docai.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyTheme, []byte("light")))
	require.NoError(t, s.Set(ctx, KeyTheme, []byte("dark")))

	value, found, err := s.Get(ctx, KeyTheme)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("dark"), value)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docai.db")
	ctx := context.Background()

	s1, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, KeyOrganPledge, []byte(`{"organs":["kidney"]}`)))
	require.NoError(t, s1.Close())

	s2, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s2.Close() })

	value, found, err := s2.Get(ctx, KeyOrganPledge)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte(`{"organs":["kidney"]}`), value)
}

func TestSQLiteStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docai.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyUser, []byte("x")))
	require.NoError(t, s.Delete(ctx, KeyUser))

	_, found, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete(ctx, KeyUser))
}

func TestOpenSelectsBackend(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.StorageConfig
		wantErr bool
	}{
		{
			name: "memory backend",
			cfg:  domain.StorageConfig{Backend: "memory"},
		},
		{
			name: "sqlite backend",
			cfg:  domain.StorageConfig{Backend: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "open.db")},
		},
		{
			name:    "unknown backend",
			cfg:     domain.StorageConfig{Backend: "cassandra"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
			s.Close()
		})
	}
}
