package repository

import (
	"context"
	"testing"

	"inventaris/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduk(t *testing.T, repo ProdukRepository, list ...*domain.Produk) {
	t.Helper()
	for _, p := range list {
		require.NoError(t, repo.Simpan(context.Background(), p))
	}
}

func TestProdukRepository_SimpanAndCariByKode(t *testing.T) {
	requireDB(t)
	resetTables(t)
	repo := NewProdukRepository(testDB)
	ctx := context.Background()

	laptop := domain.NewProduk("PROD001", "Laptop Gaming", "Elektronik", 15000000, 10, 5)
	require.NoError(t, repo.Simpan(ctx, laptop))

	found, err := repo.CariByKode(ctx, "PROD001")
	require.NoError(t, err)
	assert.Equal(t, laptop, found)

	_, err = repo.CariByKode(ctx, "MISSING")
	assert.ErrorIs(t, err, ErrProdukNotFound)

	assert.ErrorIs(t, repo.Simpan(ctx, laptop), ErrProdukAlreadyExists)
}

func TestProdukRepository_Search(t *testing.T) {
	requireDB(t)
	resetTables(t)
	repo := NewProdukRepository(testDB)
	ctx := context.Background()

	seedProduk(t, repo,
		domain.NewProduk("A1", "Laptop Gaming", "Elektronik", 15000000, 10, 5),
		domain.NewProduk("A2", "Laptop Kantor", "Elektronik", 8000000, 3, 5),
		domain.NewProduk("B1", "Kaos Polos", "Fashion", 50000, 0, 10),
	)

	byNama, err := repo.CariByNama(ctx, "laptop")
	require.NoError(t, err)
	assert.Len(t, byNama, 2)

	byKategori, err := repo.CariByKategori(ctx, "Fashion")
	require.NoError(t, err)
	require.Len(t, byKategori, 1)
	assert.Equal(t, "B1", byKategori[0].Kode)

	semua, err := repo.CariSemua(ctx)
	require.NoError(t, err)
	assert.Len(t, semua, 3)

	habis, err := repo.CariProdukStokHabis(ctx)
	require.NoError(t, err)
	require.Len(t, habis, 1)
	assert.Equal(t, "B1", habis[0].Kode)

	menipis, err := repo.CariProdukStokMenipis(ctx)
	require.NoError(t, err)
	require.Len(t, menipis, 1)
	assert.Equal(t, "A2", menipis[0].Kode)
}

func TestProdukRepository_UpdateStokAndHapus(t *testing.T) {
	requireDB(t)
	resetTables(t)
	repo := NewProdukRepository(testDB)
	ctx := context.Background()

	seedProduk(t, repo, domain.NewProduk("PROD001", "Laptop Gaming", "Elektronik", 15000000, 10, 5))

	require.NoError(t, repo.UpdateStok(ctx, "PROD001", 0))
	found, err := repo.CariByKode(ctx, "PROD001")
	require.NoError(t, err)
	assert.Equal(t, 0, found.Stok)

	assert.Error(t, repo.UpdateStok(ctx, "PROD001", -1), "negative stok must violate the check constraint")
	assert.ErrorIs(t, repo.UpdateStok(ctx, "MISSING", 5), ErrProdukNotFound)

	require.NoError(t, repo.Hapus(ctx, "PROD001"))
	assert.ErrorIs(t, repo.Hapus(ctx, "PROD001"), ErrProdukNotFound)
}

func TestProperty_ProdukRoundTripPreservesAttributes(t *testing.T) {
	requireDB(t)
	resetTables(t)
	repo := NewProdukRepository(testDB)
	ctx := context.Background()

	properties := gopter.NewProperties(nil)

	properties.Property("saving and loading a produk preserves every field", prop.ForAll(
		func(kode string, nama string, harga float64, stok int, stokMinimum int, aktif bool) bool {
			_, _ = testDB.Exec("DELETE FROM produk WHERE kode = $1", kode)

			p := domain.NewProduk(kode, nama, "Umum", harga, stok, stokMinimum)
			p.Aktif = aktif
			if err := repo.Simpan(ctx, p); err != nil {
				t.Logf("FAIL: Failed to save produk: %v", err)
				return false
			}

			found, err := repo.CariByKode(ctx, kode)
			if err != nil {
				t.Logf("FAIL: Failed to load produk: %v", err)
				return false
			}

			return *found == *p
		},
		gen.RegexMatch(`[A-Z0-9]{1,10}`),
		gen.RegexMatch(`[A-Z][a-z]{2,30}`),
		gen.Float64Range(1, 1e7),
		gen.IntRange(0, 10000),
		gen.IntRange(0, 100),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
