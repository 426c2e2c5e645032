package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "perpustakaan_backend/internals/features/library/model"
	store "perpustakaan_backend/internals/features/library/store"
	"perpustakaan_backend/internals/testutil"
)

func newAuthorStore(t *testing.T) *store.Store[model.AuthorModel] {
	t.Helper()
	return store.New[model.AuthorModel](testutil.NewTestDB(t), "author_id")
}

func TestCreateThenFindByID(t *testing.T) {
	s := newAuthorStore(t)
	ctx := context.Background()

	a := &model.AuthorModel{AuthorName: "Pramoedya Ananta Toer"}
	require.NoError(t, s.Create(ctx, a))
	require.NotZero(t, a.AuthorID)

	b := &model.AuthorModel{AuthorName: "Andrea Hirata"}
	require.NoError(t, s.Create(ctx, b))
	assert.NotEqual(t, a.AuthorID, b.AuthorID)

	got, err := s.FindByID(ctx, a.AuthorID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pramoedya Ananta Toer", got.AuthorName)
}

func TestFindByIDAbsentIsNotError(t *testing.T) {
	s := newAuthorStore(t)

	got, err := s.FindByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAllOrderedByID(t *testing.T) {
	s := newAuthorStore(t)
	ctx := context.Background()

	for _, name := range []string{"C", "A", "B"} {
		require.NoError(t, s.Create(ctx, &model.AuthorModel{AuthorName: name}))
	}

	items, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].AuthorID < items[1].AuthorID)
	assert.True(t, items[1].AuthorID < items[2].AuthorID)
}

func TestListAllEmpty(t *testing.T) {
	s := newAuthorStore(t)

	items, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateByIDPartial(t *testing.T) {
	s := newAuthorStore(t)
	ctx := context.Background()

	a := &model.AuthorModel{AuthorName: "Lama"}
	require.NoError(t, s.Create(ctx, a))

	got, err := s.UpdateByID(ctx, a.AuthorID, map[string]any{"author_name": "Baru"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Baru", got.AuthorName)
}

func TestUpdateByIDEmptyPatchIsNoOp(t *testing.T) {
	s := newAuthorStore(t)
	ctx := context.Background()

	a := &model.AuthorModel{AuthorName: "Tetap"}
	require.NoError(t, s.Create(ctx, a))

	got, err := s.UpdateByID(ctx, a.AuthorID, map[string]any{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tetap", got.AuthorName)

	// tidak ada mutasi tersembunyi
	again, err := s.FindByID(ctx, a.AuthorID)
	require.NoError(t, err)
	assert.Equal(t, "Tetap", again.AuthorName)
}

func TestUpdateByIDAbsent(t *testing.T) {
	s := newAuthorStore(t)

	got, err := s.UpdateByID(context.Background(), 4242, map[string]any{"author_name": "X"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteByID(t *testing.T) {
	s := newAuthorStore(t)
	ctx := context.Background()

	a := &model.AuthorModel{AuthorName: "Sementara"}
	require.NoError(t, s.Create(ctx, a))

	ok, err := s.DeleteByID(ctx, a.AuthorID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.FindByID(ctx, a.AuthorID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// hapus id yang sudah tidak ada: false, bukan error
	ok, err = s.DeleteByID(ctx, a.AuthorID)
	require.NoError(t, err)
	assert.False(t, ok)
}
