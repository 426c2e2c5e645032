package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dto "perpustakaan_backend/internals/features/library/dto"
	model "perpustakaan_backend/internals/features/library/model"
	service "perpustakaan_backend/internals/features/library/service"
	helper "perpustakaan_backend/internals/helpers"
	"perpustakaan_backend/internals/testutil"
)

func seedAuthor(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	a := model.AuthorModel{AuthorName: name}
	require.NoError(t, db.Create(&a).Error)
	return a.AuthorID
}

func seedGenre(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	g := model.GenreModel{GenreName: name}
	require.NoError(t, db.Create(&g).Error)
	return g.GenreID
}

func countJoinRows(t *testing.T, db *gorm.DB, table string, bookID int64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Where("book_id = ?", bookID).Count(&n).Error)
	return n
}

func TestCreateBookWithAssociations(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewBookService(db)
	ctx := context.Background()

	a1 := seedAuthor(t, db, "Penulis Satu")
	a2 := seedAuthor(t, db, "Penulis Dua")
	g1 := seedGenre(t, db, "Fiksi")

	detail, err := svc.Create(ctx, &dto.BookCreateRequest{
		Title:     "Bumi Manusia",
		ISBN:      "978-1",
		AuthorIDs: []int64{a1, a2},
		GenreIDs:  []int64{g1},
	})
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.NotZero(t, detail.BookID)

	require.Len(t, detail.Authors, 2)
	assert.Equal(t, a1, detail.Authors[0].AuthorID)
	assert.Equal(t, a2, detail.Authors[1].AuthorID)
	require.Len(t, detail.Genres, 1)
	assert.Equal(t, g1, detail.Genres[0].GenreID)
}

func TestCreateBookRejectsUnknownAuthor(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewBookService(db)

	_, err := svc.Create(context.Background(), &dto.BookCreateRequest{
		Title:     "Tanpa Penulis",
		ISBN:      "978-2",
		AuthorIDs: []int64{12345},
	})
	require.Error(t, err)
	var refErr *service.MissingRefError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "author_ids", refErr.Field)

	// transaksi dibatalkan: tidak ada buku yang tersisa
	var n int64
	require.NoError(t, db.Model(&model.BookModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdateReplacesAssociationSet(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewBookService(db)
	ctx := context.Background()

	a1 := seedAuthor(t, db, "A1")
	a2 := seedAuthor(t, db, "A2")
	a3 := seedAuthor(t, db, "A3")

	detail, err := svc.Create(ctx, &dto.BookCreateRequest{
		Title:     "Replace",
		ISBN:      "978-3",
		AuthorIDs: []int64{a1, a2},
	})
	require.NoError(t, err)

	// replace penuh, bukan merge
	updated, err := svc.Update(ctx, detail.BookID, &dto.BookUpdateRequest{
		AuthorIDs: helper.OptOf([]int64{a3}),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Len(t, updated.Authors, 1)
	assert.Equal(t, a3, updated.Authors[0].AuthorID)
	assert.EqualValues(t, 1, countJoinRows(t, db, "book_authors", detail.BookID))
}

func TestUpdateWithEmptySetClearsAssociations(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewBookService(db)
	ctx := context.Background()

	a1 := seedAuthor(t, db, "A1")
	detail, err := svc.Create(ctx, &dto.BookCreateRequest{
		Title:     "Clear",
		ISBN:      "978-4",
		AuthorIDs: []int64{a1},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, detail.BookID, &dto.BookUpdateRequest{
		AuthorIDs: helper.OptOf([]int64{}),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Authors)
	assert.EqualValues(t, 0, countJoinRows(t, db, "book_authors", detail.BookID))
}

func TestUpdateScalarPatchOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewBookService(db)
	ctx := context.Background()

	a1 := seedAuthor(t, db, "A1")
	detail, err := svc.Create(ctx, &dto.BookCreateRequest{
		Title:       "Judul Lama",
		ISBN:        "978-5",
		Description: strPtr("deskripsi"),
		AuthorIDs:   []int64{a1},
	})
	require.NoError(t, err)

	title := "Judul Baru"
	updated, err := svc.Update(ctx, detail.BookID, &dto.BookUpdateRequest{
		Title:       &title,
		Description: helper.OptNull[string](), // null eksplisit = kosongkan
	})
	require.NoError(t, err)
	assert.Equal(t, "Judul Baru", updated.Title)
	assert.Nil(t, updated.Description)
	// relasi tidak disentuh karena author_ids tidak dikirim
	require.Len(t, updated.Authors, 1)
}

func TestUpdateAbsentBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewBookService(db)

	title := "X"
	updated, err := svc.Update(context.Background(), 777, &dto.BookUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteBookCascadesAssociations(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewBookService(db)
	ctx := context.Background()

	a1 := seedAuthor(t, db, "A1")
	g1 := seedGenre(t, db, "G1")
	detail, err := svc.Create(ctx, &dto.BookCreateRequest{
		Title:     "Hapus",
		ISBN:      "978-6",
		AuthorIDs: []int64{a1},
		GenreIDs:  []int64{g1},
	})
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, detail.BookID)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.EqualValues(t, 0, countJoinRows(t, db, "book_authors", detail.BookID))
	assert.EqualValues(t, 0, countJoinRows(t, db, "book_genres", detail.BookID))

	got, err := svc.GetByID(ctx, detail.BookID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteAbsentBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewBookService(db)

	ok, err := svc.Delete(context.Background(), 808)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListOrderingAndFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewBookService(db)
	ctx := context.Background()

	y1984 := 1949
	_, err := svc.Create(ctx, &dto.BookCreateRequest{Title: "Zulu", ISBN: "978-7", PublicationYear: &y1984})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.BookCreateRequest{Title: "Alpha", ISBN: "978-8"})
	require.NoError(t, err)

	all, err := svc.List(ctx, service.BookListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// urut book_id naik, bukan judul
	assert.Equal(t, "Zulu", all[0].Title)
	assert.Equal(t, "Alpha", all[1].Title)

	byISBN, err := svc.List(ctx, service.BookListFilter{ISBN: "978-8"})
	require.NoError(t, err)
	require.Len(t, byISBN, 1)
	assert.Equal(t, "Alpha", byISBN[0].Title)

	byYear, err := svc.List(ctx, service.BookListFilter{Year: &y1984})
	require.NoError(t, err)
	require.Len(t, byYear, 1)
	assert.Equal(t, "Zulu", byYear[0].Title)

	byQ, err := svc.List(ctx, service.BookListFilter{Q: "lph"})
	require.NoError(t, err)
	require.Len(t, byQ, 1)
	assert.Equal(t, "Alpha", byQ[0].Title)
}

func strPtr(s string) *string { return &s }
