// Package validation holds the pure field and entity checks used by the
// inventory services. None of the functions mutate their input.
package validation

import (
	"fmt"
	"strings"

	"inventaris/internal/domain"

	"github.com/go-playground/validator/v10"
)

const (
	MaxPanjangKode      = 10
	MaxPanjangNama      = 100
	MaxPanjangDeskripsi = 500
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

var (
	kodeRules      = fmt.Sprintf("alphanum,max=%d", MaxPanjangKode)
	namaRules      = fmt.Sprintf("max=%d", MaxPanjangNama)
	deskripsiRules = fmt.Sprintf("omitempty,max=%d", MaxPanjangDeskripsi)
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidKodeProduk accepts 1 to 10 ASCII letters or digits
func IsValidKodeProduk(kode string) bool {
	if isBlank(kode) {
		return false
	}
	return validate.Var(kode, kodeRules) == nil
}

// IsValidNama accepts any non-blank name up to 100 characters
func IsValidNama(nama string) bool {
	if isBlank(nama) {
		return false
	}
	return validate.Var(nama, namaRules) == nil
}

func IsValidHarga(harga float64) bool {
	return harga > 0
}

func IsValidStok(stok int) bool {
	return stok >= 0
}

func IsValidStokMinimum(stokMinimum int) bool {
	return stokMinimum >= 0
}

func IsValidPersentase(persentase float64) bool {
	return persentase >= 0 && persentase <= 100
}

func IsValidKuantitas(kuantitas int) bool {
	return kuantitas > 0
}

// IsValidKategori checks name, optional description and code of a category
func IsValidKategori(k *domain.Kategori) bool {
	if k == nil {
		return false
	}
	if !IsValidNama(k.Nama) {
		return false
	}
	if validate.Var(k.Deskripsi, deskripsiRules) != nil {
		return false
	}
	return IsValidKodeProduk(k.Kode)
}

// IsValidProduk checks the fields a product must carry before it is stored.
// The name is not checked here.
func IsValidProduk(p *domain.Produk) bool {
	if p == nil {
		return false
	}
	if !IsValidKodeProduk(p.Kode) {
		return false
	}
	if isBlank(p.Kategori) {
		return false
	}
	if !IsValidHarga(p.Harga) {
		return false
	}
	if !IsValidStok(p.Stok) {
		return false
	}
	return IsValidStokMinimum(p.StokMinimum)
}
