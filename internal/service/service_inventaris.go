package service

import (
	"context"
	"errors"
	"strings"

	"inventaris/internal/domain"
	"inventaris/internal/repository"
	"inventaris/internal/validation"

	"go.uber.org/zap"
)

// ServiceInventaris defines the stock and valuation business rules.
// Mutating operations report business-rule and repository failures as false.
type ServiceInventaris interface {
	TambahProduk(ctx context.Context, produk *domain.Produk) bool
	HapusProduk(ctx context.Context, kode string) bool
	UpdateStok(ctx context.Context, kode string, jumlah int) bool
	MasukStok(ctx context.Context, kode string, jumlah int) bool
	KeluarStok(ctx context.Context, kode string, jumlah int) bool

	HitungTotalNilaiInventaris(ctx context.Context) (float64, error)
	HitungTotalStok(ctx context.Context) (int, error)

	CariProdukByKode(ctx context.Context, kode string) (*domain.Produk, bool)
	CariProdukByNama(ctx context.Context, nama string) ([]*domain.Produk, error)
	CariProdukByKategori(ctx context.Context, kategori string) ([]*domain.Produk, error)
	GetProdukStokHabis(ctx context.Context) ([]*domain.Produk, error)
	GetProdukStokMenipis(ctx context.Context) ([]*domain.Produk, error)
}

type serviceInventaris struct {
	produkRepo repository.ProdukRepository
	logger     *zap.Logger
}

// NewServiceInventaris creates a new instance of ServiceInventaris
func NewServiceInventaris(produkRepo repository.ProdukRepository, logger *zap.Logger) ServiceInventaris {
	return &serviceInventaris{
		produkRepo: produkRepo,
		logger:     logger,
	}
}

// TambahProduk stores a valid product whose code is not taken yet
func (s *serviceInventaris) TambahProduk(ctx context.Context, produk *domain.Produk) bool {
	if !validation.IsValidProduk(produk) {
		s.logger.Debug("Rejected invalid produk", zap.Stringer("produk", produk))
		return false
	}

	_, err := s.produkRepo.CariByKode(ctx, produk.Kode)
	if err == nil {
		s.logger.Debug("Produk already exists", zap.String("kode", produk.Kode))
		return false
	}
	if !errors.Is(err, repository.ErrProdukNotFound) {
		s.logger.Error("Failed to check existing produk", zap.String("kode", produk.Kode), zap.Error(err))
		return false
	}

	if err := s.produkRepo.Simpan(ctx, produk); err != nil {
		s.logger.Error("Failed to save produk", zap.String("kode", produk.Kode), zap.Error(err))
		return false
	}

	return true
}

// HapusProduk deletes a product that has no stock left
func (s *serviceInventaris) HapusProduk(ctx context.Context, kode string) bool {
	if isBlank(kode) {
		return false
	}

	produk, ok := s.findProduk(ctx, kode)
	if !ok {
		return false
	}

	if produk.Stok > 0 {
		s.logger.Debug("Cannot delete produk with remaining stok",
			zap.String("kode", kode),
			zap.Int("stok", produk.Stok),
		)
		return false
	}

	if err := s.produkRepo.Hapus(ctx, kode); err != nil {
		s.logger.Error("Failed to delete produk", zap.String("kode", kode), zap.Error(err))
		return false
	}

	return true
}

// UpdateStok sets the absolute stock level
func (s *serviceInventaris) UpdateStok(ctx context.Context, kode string, jumlah int) bool {
	if isBlank(kode) || !validation.IsValidStok(jumlah) {
		return false
	}

	if _, ok := s.findProduk(ctx, kode); !ok {
		return false
	}

	return s.writeStok(ctx, kode, jumlah)
}

// MasukStok adds jumlah units to an active product
func (s *serviceInventaris) MasukStok(ctx context.Context, kode string, jumlah int) bool {
	if isBlank(kode) || !validation.IsValidKuantitas(jumlah) {
		return false
	}

	produk, ok := s.findActiveProduk(ctx, kode)
	if !ok {
		return false
	}

	return s.writeStok(ctx, kode, produk.Stok+jumlah)
}

// KeluarStok withdraws jumlah units from an active product with enough stock
func (s *serviceInventaris) KeluarStok(ctx context.Context, kode string, jumlah int) bool {
	if isBlank(kode) || !validation.IsValidKuantitas(jumlah) {
		return false
	}

	produk, ok := s.findActiveProduk(ctx, kode)
	if !ok {
		return false
	}

	if produk.Stok < jumlah {
		s.logger.Debug("Insufficient stok",
			zap.String("kode", kode),
			zap.Int("stok", produk.Stok),
			zap.Int("jumlah", jumlah),
		)
		return false
	}

	return s.writeStok(ctx, kode, produk.Stok-jumlah)
}

// HitungTotalNilaiInventaris sums harga * stok over active products
func (s *serviceInventaris) HitungTotalNilaiInventaris(ctx context.Context) (float64, error) {
	semua, err := s.produkRepo.CariSemua(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, p := range semua {
		if p.Aktif {
			total += p.Harga * float64(p.Stok)
		}
	}
	return total, nil
}

// HitungTotalStok sums stok over active products
func (s *serviceInventaris) HitungTotalStok(ctx context.Context) (int, error) {
	semua, err := s.produkRepo.CariSemua(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, p := range semua {
		if p.Aktif {
			total += p.Stok
		}
	}
	return total, nil
}

// CariProdukByKode returns false for a blank code or a missing product
func (s *serviceInventaris) CariProdukByKode(ctx context.Context, kode string) (*domain.Produk, bool) {
	if isBlank(kode) {
		return nil, false
	}
	return s.findProduk(ctx, kode)
}

func (s *serviceInventaris) CariProdukByNama(ctx context.Context, nama string) ([]*domain.Produk, error) {
	return s.produkRepo.CariByNama(ctx, nama)
}

func (s *serviceInventaris) CariProdukByKategori(ctx context.Context, kategori string) ([]*domain.Produk, error) {
	return s.produkRepo.CariByKategori(ctx, kategori)
}

func (s *serviceInventaris) GetProdukStokHabis(ctx context.Context) ([]*domain.Produk, error) {
	return s.produkRepo.CariProdukStokHabis(ctx)
}

func (s *serviceInventaris) GetProdukStokMenipis(ctx context.Context) ([]*domain.Produk, error) {
	return s.produkRepo.CariProdukStokMenipis(ctx)
}

// findProduk looks a product up, logging anything other than a plain miss
func (s *serviceInventaris) findProduk(ctx context.Context, kode string) (*domain.Produk, bool) {
	produk, err := s.produkRepo.CariByKode(ctx, kode)
	if err != nil {
		if errors.Is(err, repository.ErrProdukNotFound) {
			s.logger.Debug("Produk not found", zap.String("kode", kode))
		} else {
			s.logger.Error("Failed to find produk", zap.String("kode", kode), zap.Error(err))
		}
		return nil, false
	}
	if produk == nil {
		return nil, false
	}
	return produk, true
}

func (s *serviceInventaris) findActiveProduk(ctx context.Context, kode string) (*domain.Produk, bool) {
	produk, ok := s.findProduk(ctx, kode)
	if !ok {
		return nil, false
	}
	if !produk.Aktif {
		s.logger.Debug("Produk is inactive", zap.String("kode", kode))
		return nil, false
	}
	return produk, true
}

func (s *serviceInventaris) writeStok(ctx context.Context, kode string, stokBaru int) bool {
	if err := s.produkRepo.UpdateStok(ctx, kode, stokBaru); err != nil {
		s.logger.Error("Failed to update stok",
			zap.String("kode", kode),
			zap.Int("stok_baru", stokBaru),
			zap.Error(err),
		)
		return false
	}
	return true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
