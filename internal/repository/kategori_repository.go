package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventaris/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrKategoriNotFound      = errors.New("kategori not found")
	ErrKategoriAlreadyExists = errors.New("kategori with this kode already exists")
)

// pgUniqueViolation is the SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

// KategoriRepository defines the interface for category data access
type KategoriRepository interface {
	Simpan(ctx context.Context, kategori *domain.Kategori) error
	CariByKode(ctx context.Context, kode string) (*domain.Kategori, error)
	CariSemua(ctx context.Context) ([]*domain.Kategori, error)
}

type kategoriRepository struct {
	db *sql.DB
}

// NewKategoriRepository creates a new instance of KategoriRepository
func NewKategoriRepository(db *sql.DB) KategoriRepository {
	return &kategoriRepository{db: db}
}

// Simpan inserts a new category. An empty description is stored as NULL.
func (r *kategoriRepository) Simpan(ctx context.Context, kategori *domain.Kategori) error {
	query := `
		INSERT INTO kategori (kode, nama, deskripsi, aktif)
		VALUES ($1, $2, $3, $4)
	`

	deskripsi := sql.NullString{String: kategori.Deskripsi, Valid: kategori.Deskripsi != ""}

	_, err := r.db.ExecContext(ctx, query, kategori.Kode, kategori.Nama, deskripsi, kategori.Aktif)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrKategoriAlreadyExists
		}
		return fmt.Errorf("failed to save kategori: %w", err)
	}

	return nil
}

// CariByKode retrieves a category by its code
func (r *kategoriRepository) CariByKode(ctx context.Context, kode string) (*domain.Kategori, error) {
	query := `
		SELECT kode, nama, deskripsi, aktif
		FROM kategori
		WHERE kode = $1
	`

	kategori, err := scanKategori(r.db.QueryRowContext(ctx, query, kode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKategoriNotFound
		}
		return nil, fmt.Errorf("failed to find kategori by kode: %w", err)
	}

	return kategori, nil
}

// CariSemua retrieves all categories ordered by name
func (r *kategoriRepository) CariSemua(ctx context.Context) ([]*domain.Kategori, error) {
	query := `
		SELECT kode, nama, deskripsi, aktif
		FROM kategori
		ORDER BY nama ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list kategori: %w", err)
	}
	defer rows.Close()

	kategoriList := []*domain.Kategori{}
	for rows.Next() {
		kategori, err := scanKategori(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kategori: %w", err)
		}
		kategoriList = append(kategoriList, kategori)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kategori: %w", err)
	}

	return kategoriList, nil
}

func scanKategori(row rowScanner) (*domain.Kategori, error) {
	var (
		kategori  domain.Kategori
		deskripsi sql.NullString
	)
	if err := row.Scan(&kategori.Kode, &kategori.Nama, &deskripsi, &kategori.Aktif); err != nil {
		return nil, err
	}
	kategori.Deskripsi = deskripsi.String
	return &kategori, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
