package domain

// Post disimpan sebagai dokumen bebas: tidak ada skema yang dipaksakan
// selain timestamp yang di-stamp server (created_at, updated_at) dan _id.
type Post map[string]interface{}

// SearchPostParams adalah parameter advanced search yang dikenali.
// Semua field opsional; minimal satu harus terisi.
type SearchPostParams struct {
	Title   string
	Content string
	Author  string
	// Query dicocokkan ke title, content, dan author sekaligus
	Query     string
	StartDate string
	EndDate   string
}

func (p SearchPostParams) IsEmpty() bool {
	return p.Title == "" && p.Content == "" && p.Author == "" &&
		p.Query == "" && p.StartDate == "" && p.EndDate == ""
}
