package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"inventaris/internal/domain"
)

var (
	ErrProdukNotFound      = errors.New("produk not found")
	ErrProdukAlreadyExists = errors.New("produk with this kode already exists")
)

// ProdukRepository defines the interface for product data access
type ProdukRepository interface {
	CariByKode(ctx context.Context, kode string) (*domain.Produk, error)
	CariByNama(ctx context.Context, nama string) ([]*domain.Produk, error)
	CariByKategori(ctx context.Context, kategori string) ([]*domain.Produk, error)
	Simpan(ctx context.Context, produk *domain.Produk) error
	Hapus(ctx context.Context, kode string) error
	UpdateStok(ctx context.Context, kode string, stokBaru int) error
	CariSemua(ctx context.Context) ([]*domain.Produk, error)
	CariProdukStokHabis(ctx context.Context) ([]*domain.Produk, error)
	CariProdukStokMenipis(ctx context.Context) ([]*domain.Produk, error)
}

const produkColumns = `kode, nama, kategori, harga, stok, stok_minimum, aktif`

type produkRepository struct {
	db *sql.DB
}

// NewProdukRepository creates a new instance of ProdukRepository
func NewProdukRepository(db *sql.DB) ProdukRepository {
	return &produkRepository{db: db}
}

// CariByKode retrieves a product by its code
func (r *produkRepository) CariByKode(ctx context.Context, kode string) (*domain.Produk, error) {
	query := `SELECT ` + produkColumns + ` FROM produk WHERE kode = $1`

	produk, err := scanProduk(r.db.QueryRowContext(ctx, query, kode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProdukNotFound
		}
		return nil, fmt.Errorf("failed to find produk by kode: %w", err)
	}

	return produk, nil
}

// CariByNama returns products whose name contains nama, case-insensitively
func (r *produkRepository) CariByNama(ctx context.Context, nama string) ([]*domain.Produk, error) {
	if strings.TrimSpace(nama) == "" {
		return r.CariSemua(ctx)
	}

	query := `SELECT ` + produkColumns + ` FROM produk WHERE nama ILIKE $1 ORDER BY kode ASC`
	return r.queryProduk(ctx, "search produk by nama", query, "%"+nama+"%")
}

// CariByKategori returns products of the given category name
func (r *produkRepository) CariByKategori(ctx context.Context, kategori string) ([]*domain.Produk, error) {
	query := `SELECT ` + produkColumns + ` FROM produk WHERE kategori = $1 ORDER BY kode ASC`
	return r.queryProduk(ctx, "list produk by kategori", query, kategori)
}

// Simpan inserts a new product using parameterized queries
func (r *produkRepository) Simpan(ctx context.Context, produk *domain.Produk) error {
	query := `
		INSERT INTO produk (` + produkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		produk.Kode,
		produk.Nama,
		produk.Kategori,
		produk.Harga,
		produk.Stok,
		produk.StokMinimum,
		produk.Aktif,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrProdukAlreadyExists
		}
		return fmt.Errorf("failed to save produk: %w", err)
	}

	return nil
}

// Hapus removes a product by code
func (r *produkRepository) Hapus(ctx context.Context, kode string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM produk WHERE kode = $1`, kode)
	if err != nil {
		return fmt.Errorf("failed to delete produk: %w", err)
	}

	return expectAffected(result, ErrProdukNotFound)
}

// UpdateStok sets the absolute stock level of a product
func (r *produkRepository) UpdateStok(ctx context.Context, kode string, stokBaru int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE produk SET stok = $2 WHERE kode = $1`, kode, stokBaru)
	if err != nil {
		return fmt.Errorf("failed to update stok: %w", err)
	}

	return expectAffected(result, ErrProdukNotFound)
}

// CariSemua lists every product, active or not
func (r *produkRepository) CariSemua(ctx context.Context) ([]*domain.Produk, error) {
	query := `SELECT ` + produkColumns + ` FROM produk ORDER BY kode ASC`
	return r.queryProduk(ctx, "list produk", query)
}

// CariProdukStokHabis lists products with no stock left
func (r *produkRepository) CariProdukStokHabis(ctx context.Context) ([]*domain.Produk, error) {
	query := `SELECT ` + produkColumns + ` FROM produk WHERE stok = 0 ORDER BY kode ASC`
	return r.queryProduk(ctx, "list produk stok habis", query)
}

// CariProdukStokMenipis lists products with stock at or below their minimum but not empty
func (r *produkRepository) CariProdukStokMenipis(ctx context.Context) ([]*domain.Produk, error) {
	query := `SELECT ` + produkColumns + ` FROM produk WHERE stok > 0 AND stok <= stok_minimum ORDER BY kode ASC`
	return r.queryProduk(ctx, "list produk stok menipis", query)
}

func (r *produkRepository) queryProduk(ctx context.Context, op, query string, args ...interface{}) ([]*domain.Produk, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	produkList := []*domain.Produk{}
	for rows.Next() {
		produk, err := scanProduk(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan produk: %w", err)
		}
		produkList = append(produkList, produk)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating produk: %w", err)
	}

	return produkList, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduk(row rowScanner) (*domain.Produk, error) {
	produk := &domain.Produk{}
	err := row.Scan(
		&produk.Kode,
		&produk.Nama,
		&produk.Kategori,
		&produk.Harga,
		&produk.Stok,
		&produk.StokMinimum,
		&produk.Aktif,
	)
	if err != nil {
		return nil, err
	}
	return produk, nil
}

func expectAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
