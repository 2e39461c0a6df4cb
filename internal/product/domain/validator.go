package domain

import "strings"

// ValidateProdukInput memeriksa seluruh aturan secara independen (tidak
// short-circuit) dan mengembalikan daftar pesan terurut. Daftar kosong
// berarti payload valid.
func ValidateProdukInput(in ProdukInput) []string {
	var errs []string

	if strings.TrimSpace(in.KodeProduk) == "" {
		errs = append(errs, "kode_produk wajib diisi")
	}
	if len(strings.TrimSpace(in.NamaProduk)) < 3 {
		errs = append(errs, "nama_produk wajib diisi minimal 3 karakter")
	}
	if strings.TrimSpace(in.Kategori) == "" {
		errs = append(errs, "kategori wajib diisi")
	}
	if in.Harga == nil || *in.Harga <= 0 {
		errs = append(errs, "harga wajib diisi dan harus lebih dari 0")
	}
	if in.Stok == nil || *in.Stok < 0 {
		errs = append(errs, "stok wajib diisi dan tidak boleh negatif")
	}

	return errs
}
