package mocks

import (
	"context"

	"inventaris/internal/domain"
	"inventaris/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockProdukRepository struct {
	mock.Mock
}

func (m *MockProdukRepository) CariByKode(ctx context.Context, kode string) (*domain.Produk, error) {
	args := m.Called(ctx, kode)
	if p := args.Get(0); p != nil {
		return p.(*domain.Produk), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdukRepository) CariByNama(ctx context.Context, nama string) ([]*domain.Produk, error) {
	args := m.Called(ctx, nama)
	return produkList(args)
}

func (m *MockProdukRepository) CariByKategori(ctx context.Context, kategori string) ([]*domain.Produk, error) {
	args := m.Called(ctx, kategori)
	return produkList(args)
}

func (m *MockProdukRepository) Simpan(ctx context.Context, produk *domain.Produk) error {
	args := m.Called(ctx, produk)
	return args.Error(0)
}

func (m *MockProdukRepository) Hapus(ctx context.Context, kode string) error {
	args := m.Called(ctx, kode)
	return args.Error(0)
}

func (m *MockProdukRepository) UpdateStok(ctx context.Context, kode string, stokBaru int) error {
	args := m.Called(ctx, kode, stokBaru)
	return args.Error(0)
}

func (m *MockProdukRepository) CariSemua(ctx context.Context) ([]*domain.Produk, error) {
	args := m.Called(ctx)
	return produkList(args)
}

func (m *MockProdukRepository) CariProdukStokHabis(ctx context.Context) ([]*domain.Produk, error) {
	args := m.Called(ctx)
	return produkList(args)
}

func (m *MockProdukRepository) CariProdukStokMenipis(ctx context.Context) ([]*domain.Produk, error) {
	args := m.Called(ctx)
	return produkList(args)
}

func produkList(args mock.Arguments) ([]*domain.Produk, error) {
	if list := args.Get(0); list != nil {
		return list.([]*domain.Produk), args.Error(1)
	}
	return nil, args.Error(1)
}

// Pastikan mock memenuhi interface
var _ repository.ProdukRepository = (*MockProdukRepository)(nil)
