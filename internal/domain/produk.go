package domain

import (
	"errors"
	"fmt"
)

var (
	ErrJumlahTidakPositif = errors.New("jumlah harus positif")
	ErrStokTidakMencukupi = errors.New("stok tidak mencukupi")
)

// Produk represents an inventory item identified by its Kode
type Produk struct {
	Kode        string  `json:"kode" db:"kode"`
	Nama        string  `json:"nama" db:"nama"`
	Kategori    string  `json:"kategori" db:"kategori"`
	Harga       float64 `json:"harga" db:"harga"`
	Stok        int     `json:"stok" db:"stok"`
	StokMinimum int     `json:"stok_minimum" db:"stok_minimum"`
	Aktif       bool    `json:"aktif" db:"aktif"`
}

// NewProduk creates an active product
func NewProduk(kode, nama, kategori string, harga float64, stok, stokMinimum int) *Produk {
	return &Produk{
		Kode:        kode,
		Nama:        nama,
		Kategori:    kategori,
		Harga:       harga,
		Stok:        stok,
		StokMinimum: stokMinimum,
		Aktif:       true,
	}
}

// IsStokAman reports whether stock is above the reorder threshold
func (p *Produk) IsStokAman() bool {
	return p.Stok > p.StokMinimum
}

// IsStokMenipis reports whether stock is positive but at or below the reorder threshold
func (p *Produk) IsStokMenipis() bool {
	return p.Stok > 0 && p.Stok <= p.StokMinimum
}

// IsStokHabis reports whether the product is out of stock
func (p *Produk) IsStokHabis() bool {
	return p.Stok == 0
}

// KurangiStok decrements stock in place. Stock is left untouched on error.
func (p *Produk) KurangiStok(jumlah int) error {
	if jumlah <= 0 {
		return ErrJumlahTidakPositif
	}
	if jumlah > p.Stok {
		return ErrStokTidakMencukupi
	}
	p.Stok -= jumlah
	return nil
}

// TambahStok increments stock in place
func (p *Produk) TambahStok(jumlah int) error {
	if jumlah <= 0 {
		return ErrJumlahTidakPositif
	}
	p.Stok += jumlah
	return nil
}

// HitungTotalHarga returns the line total for jumlah units
func (p *Produk) HitungTotalHarga(jumlah int) (float64, error) {
	if jumlah <= 0 {
		return 0, ErrJumlahTidakPositif
	}
	return p.Harga * float64(jumlah), nil
}

// Equal compares products by Kode only
func (p *Produk) Equal(other *Produk) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.Kode == other.Kode
}

func (p *Produk) String() string {
	if p == nil {
		return "Produk<nil>"
	}
	return fmt.Sprintf("Produk{kode=%s, nama=%s, kategori=%s, harga=%.2f, stok=%d, stokMinimum=%d, aktif=%t}",
		p.Kode, p.Nama, p.Kategori, p.Harga, p.Stok, p.StokMinimum, p.Aktif)
}
