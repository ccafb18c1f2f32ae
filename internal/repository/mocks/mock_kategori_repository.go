package mocks

import (
	"context"

	"inventaris/internal/domain"
	"inventaris/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockKategoriRepository struct {
	mock.Mock
}

func (m *MockKategoriRepository) Simpan(ctx context.Context, kategori *domain.Kategori) error {
	args := m.Called(ctx, kategori)
	return args.Error(0)
}

func (m *MockKategoriRepository) CariByKode(ctx context.Context, kode string) (*domain.Kategori, error) {
	args := m.Called(ctx, kode)
	if k := args.Get(0); k != nil {
		return k.(*domain.Kategori), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockKategoriRepository) CariSemua(ctx context.Context) ([]*domain.Kategori, error) {
	args := m.Called(ctx)
	if list := args.Get(0); list != nil {
		return list.([]*domain.Kategori), args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repository.KategoriRepository = (*MockKategoriRepository)(nil)
