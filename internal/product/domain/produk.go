package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StatusAktif = "aktif"

type Produk struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	KodeProduk      string             `json:"kode_produk" bson:"kode_produk"`
	NamaProduk      string             `json:"nama_produk" bson:"nama_produk"`
	Kategori        string             `json:"kategori" bson:"kategori"`
	Harga           float64            `json:"harga" bson:"harga"`
	Stok            int                `json:"stok" bson:"stok"`
	Deskripsi       string             `json:"deskripsi,omitempty" bson:"deskripsi,omitempty"`
	Supplier        string             `json:"supplier,omitempty" bson:"supplier,omitempty"`
	Status          string             `json:"status" bson:"status"`
	TanggalDibuat   time.Time          `json:"tanggal_dibuat" bson:"tanggal_dibuat"`
	TanggalDiupdate time.Time          `json:"tanggal_diupdate" bson:"tanggal_diupdate"`
}

// ProdukInput adalah payload create/update. Harga dan Stok memakai pointer
// supaya "tidak dikirim" bisa dibedakan dari nilai nol.
type ProdukInput struct {
	KodeProduk string   `json:"kode_produk"`
	NamaProduk string   `json:"nama_produk"`
	Kategori   string   `json:"kategori"`
	Harga      *float64 `json:"harga"`
	Stok       *int     `json:"stok"`
	Deskripsi  string   `json:"deskripsi"`
	Supplier   string   `json:"supplier"`
}

// ListProdukParams adalah filter yang dikenali endpoint list.
type ListProdukParams struct {
	Search   string
	Kategori string
	MinHarga string
	MaxHarga string
}

// SearchProdukParams adalah parameter advanced search yang dikenali.
// Semua opsional; minimal satu harus terisi.
type SearchProdukParams struct {
	// Query dicocokkan ke nama_produk, deskripsi, dan kode_produk sekaligus
	Query      string
	Kategori   string
	Supplier   string
	MinHarga   string
	MaxHarga   string
	StokKosong bool
}

func (p SearchProdukParams) IsEmpty() bool {
	return p.Query == "" && p.Kategori == "" && p.Supplier == "" &&
		p.MinHarga == "" && p.MaxHarga == "" && !p.StokKosong
}
