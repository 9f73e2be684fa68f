package photo

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"nutriledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestBlobStore_Save(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(ctx, "log1", "application/octet-stream", []byte("jpeg-bytes")))

	data, err := store.bucket.ReadAll(ctx, Key("log1", "application/octet-stream"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestKey(t *testing.T) {
	assert.True(t, strings.HasPrefix(Key("abc", "image/png"), "meals/abc"))
	assert.Equal(t, "meals/abc.png", Key("abc", "image/png"))
	assert.Equal(t, "meals/abc", Key("abc", ""))
}

func TestNew_DisabledWithoutBucket(t *testing.T) {
	store, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Photos: &config.PhotosConfig{}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, discardStore{}, store)
	assert.NoError(t, store.Save(context.Background(), "l1", "image/jpeg", []byte{1}))
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nope://bucket")
	assert.Error(t, err)
}
