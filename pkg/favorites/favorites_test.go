package favorites_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnuuid"
	"github.com/namenest/namenest/pkg/errcode"
	"github.com/namenest/namenest/pkg/favorites"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	var store favorites.Store = favorites.NewMemory()
	defer store.Close()

	a := gnuuid.New("aarav|hindu|boy").String()
	b := gnuuid.New("diya|hindu|unisex").String()

	ok, err := store.Toggle(ctx, a)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = store.Toggle(ctx, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ids, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, ids)

	has, err := store.Has(ctx, a)
	require.NoError(t, err)
	assert.True(t, has)

	ok, err = store.Toggle(ctx, a)
	require.NoError(t, err)
	assert.False(t, ok)

	ids, _ = store.Get(ctx)
	assert.Equal(t, []string{b}, ids)
	has, _ = store.Has(ctx, a)
	assert.False(t, has)
}

func TestMemoryInvalidID(t *testing.T) {
	store := favorites.NewMemory()
	_, err := store.Toggle(context.Background(), "aarav")
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.FavoritesInvalidIDError, gnErr.Code)

	ids, _ := store.Get(context.Background())
	assert.Empty(t, ids)
}

func TestMemoryConcurrent(t *testing.T) {
	store := favorites.NewMemory()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gnuuid.New(string(rune('a' + i%26))).String()
			_, _ = store.Toggle(context.Background(), id)
		}()
	}
	wg.Wait()
	ids, err := store.Get(context.Background())
	require.NoError(t, err)
	// 24 letters toggled twice, 2 letters toggled once
	assert.Len(t, ids, 2)
}
