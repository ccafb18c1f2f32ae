package domain

import "fmt"

// Kategori represents a product category. An empty Deskripsi means none was given.
type Kategori struct {
	Kode      string `json:"kode" db:"kode"`
	Nama      string `json:"nama" db:"nama"`
	Deskripsi string `json:"deskripsi,omitempty" db:"deskripsi"`
	Aktif     bool   `json:"aktif" db:"aktif"`
}

// NewKategori creates an active category
func NewKategori(kode, nama, deskripsi string) *Kategori {
	return &Kategori{
		Kode:      kode,
		Nama:      nama,
		Deskripsi: deskripsi,
		Aktif:     true,
	}
}

// Equal compares categories by Kode only
func (k *Kategori) Equal(other *Kategori) bool {
	if k == other {
		return true
	}
	if k == nil || other == nil {
		return false
	}
	return k.Kode == other.Kode
}

func (k *Kategori) String() string {
	if k == nil {
		return "Kategori<nil>"
	}
	return fmt.Sprintf("Kategori{kode=%s, nama=%s, deskripsi=%s, aktif=%t}", k.Kode, k.Nama, k.Deskripsi, k.Aktif)
}
