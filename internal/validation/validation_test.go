package validation

import (
	"strings"
	"testing"

	"inventaris/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestIsValidKodeProduk(t *testing.T) {
	tests := []struct {
		kode  string
		valid bool
	}{
		{"", false},
		{"  ", false},
		{"!!@#", false},
		{"K!!", false},
		{"AB 12", false},
		{"ABC123456789", false},
		{"A12", true},
		{"ABC123", true},
		{"A", true},
		{"ABCDE12345", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidKodeProduk(tt.kode), "kode %q", tt.kode)
	}
}

func TestIsValidNama(t *testing.T) {
	assert.False(t, IsValidNama(""))
	assert.False(t, IsValidNama("   "))
	assert.False(t, IsValidNama(strings.Repeat("A", MaxPanjangNama+1)))

	assert.True(t, IsValidNama("Laptop"))
	assert.True(t, IsValidNama("Laptop Gaming 2025"))
	assert.True(t, IsValidNama(strings.Repeat("A", MaxPanjangNama)))
}

func TestIsValidAngka(t *testing.T) {
	assert.False(t, IsValidHarga(0))
	assert.False(t, IsValidHarga(-1))
	assert.True(t, IsValidHarga(15000))

	assert.True(t, IsValidStok(0))
	assert.True(t, IsValidStok(5))
	assert.False(t, IsValidStok(-1))

	assert.True(t, IsValidStokMinimum(0))
	assert.True(t, IsValidStokMinimum(10))
	assert.False(t, IsValidStokMinimum(-5))

	assert.False(t, IsValidPersentase(-1))
	assert.False(t, IsValidPersentase(101))
	assert.True(t, IsValidPersentase(0))
	assert.True(t, IsValidPersentase(50))
	assert.True(t, IsValidPersentase(100))

	assert.False(t, IsValidKuantitas(0))
	assert.False(t, IsValidKuantitas(-5))
	assert.True(t, IsValidKuantitas(1))
	assert.True(t, IsValidKuantitas(10))
}

func TestIsValidKategori(t *testing.T) {
	tests := []struct {
		name     string
		kategori *domain.Kategori
		valid    bool
	}{
		{"nil", nil, false},
		{"description too long", domain.NewKategori("K01", "Elektronik", strings.Repeat("X", 600)), false},
		{"description at limit", domain.NewKategori("K01", "Elektronik", strings.Repeat("X", MaxPanjangDeskripsi)), true},
		{"blank name", domain.NewKategori("K02", "", "Deskripsi valid"), false},
		{"no description", domain.NewKategori("K03", "Elektronik", ""), true},
		{"short description", domain.NewKategori("K04", "Fashion", "Pakaian dan aksesori"), true},
		{"invalid code", domain.NewKategori("K!!", "Fashion", "Pendek"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidKategori(tt.kategori))
		})
	}
}

func TestIsValidProduk(t *testing.T) {
	tests := []struct {
		name   string
		produk *domain.Produk
		valid  bool
	}{
		{"nil", nil, false},
		{"empty code", domain.NewProduk("", "Laptop", "Elektronik", 10000, 5, 2), false},
		{"blank category", domain.NewProduk("P01", "Laptop", "", 10000, 5, 2), false},
		{"zero price", domain.NewProduk("P02", "Laptop", "Elektronik", 0, 5, 2), false},
		{"negative stock", domain.NewProduk("P03", "Laptop", "Elektronik", 10000, -1, 2), false},
		{"negative minimum", domain.NewProduk("P04", "Laptop", "Elektronik", 10000, 5, -1), false},
		{"valid", domain.NewProduk("P05", "Laptop", "Elektronik", 15000, 5, 2), true},
		{"valid fields but negative minimum", domain.NewProduk("P06", "Laptop", "Elektronik", 15000, 10, -2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidProduk(tt.produk))
		})
	}
}

func TestProperty_KodeProdukPattern(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("alphanumeric codes of 1 to 10 characters are valid", prop.ForAll(
		func(kode string) bool {
			return IsValidKodeProduk(kode)
		},
		gen.RegexMatch(`[A-Za-z0-9]{1,10}`),
	))

	properties.Property("alphanumeric codes longer than 10 characters are invalid", prop.ForAll(
		func(kode string) bool {
			return !IsValidKodeProduk(kode)
		},
		gen.RegexMatch(`[A-Za-z0-9]{11,30}`),
	))

	properties.Property("percentages are valid exactly within 0 to 100", prop.ForAll(
		func(p float64) bool {
			return IsValidPersentase(p) == (p >= 0 && p <= 100)
		},
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
