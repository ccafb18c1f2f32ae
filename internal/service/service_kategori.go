package service

import (
	"context"
	"errors"

	"inventaris/internal/domain"
	"inventaris/internal/repository"
	"inventaris/internal/validation"

	"go.uber.org/zap"
)

// ServiceKategori defines the interface for category business logic
type ServiceKategori interface {
	TambahKategori(ctx context.Context, kategori *domain.Kategori) bool
	CariKategoriByKode(ctx context.Context, kode string) (*domain.Kategori, bool)
	GetSemuaKategori(ctx context.Context) ([]*domain.Kategori, error)
	GetKategoriAktif(ctx context.Context) ([]*domain.Kategori, error)
}

type serviceKategori struct {
	kategoriRepo repository.KategoriRepository
	logger       *zap.Logger
}

// NewServiceKategori creates a new instance of ServiceKategori
func NewServiceKategori(kategoriRepo repository.KategoriRepository, logger *zap.Logger) ServiceKategori {
	return &serviceKategori{
		kategoriRepo: kategoriRepo,
		logger:       logger,
	}
}

// TambahKategori stores a valid category whose code is not taken yet
func (s *serviceKategori) TambahKategori(ctx context.Context, kategori *domain.Kategori) bool {
	if !validation.IsValidKategori(kategori) {
		s.logger.Debug("Rejected invalid kategori", zap.Stringer("kategori", kategori))
		return false
	}

	_, err := s.kategoriRepo.CariByKode(ctx, kategori.Kode)
	if err == nil {
		s.logger.Debug("Kategori already exists", zap.String("kode", kategori.Kode))
		return false
	}
	if !errors.Is(err, repository.ErrKategoriNotFound) {
		s.logger.Error("Failed to check existing kategori", zap.String("kode", kategori.Kode), zap.Error(err))
		return false
	}

	if err := s.kategoriRepo.Simpan(ctx, kategori); err != nil {
		s.logger.Error("Failed to save kategori", zap.String("kode", kategori.Kode), zap.Error(err))
		return false
	}

	return true
}

func (s *serviceKategori) CariKategoriByKode(ctx context.Context, kode string) (*domain.Kategori, bool) {
	if isBlank(kode) {
		return nil, false
	}

	kategori, err := s.kategoriRepo.CariByKode(ctx, kode)
	if err != nil {
		if !errors.Is(err, repository.ErrKategoriNotFound) {
			s.logger.Error("Failed to find kategori", zap.String("kode", kode), zap.Error(err))
		}
		return nil, false
	}
	return kategori, kategori != nil
}

func (s *serviceKategori) GetSemuaKategori(ctx context.Context) ([]*domain.Kategori, error) {
	return s.kategoriRepo.CariSemua(ctx)
}

// GetKategoriAktif filters the full list down to active categories
func (s *serviceKategori) GetKategoriAktif(ctx context.Context) ([]*domain.Kategori, error) {
	semua, err := s.kategoriRepo.CariSemua(ctx)
	if err != nil {
		return nil, err
	}

	aktif := make([]*domain.Kategori, 0, len(semua))
	for _, k := range semua {
		if k.Aktif {
			aktif = append(aktif, k)
		}
	}
	return aktif, nil
}
