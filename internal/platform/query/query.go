package query

import "strconv"

// Op adalah operator perbandingan yang dimengerti lapisan penyimpanan.
type Op string

const (
	// OpContains: substring match tanpa memperhatikan huruf besar/kecil.
	OpContains Op = "contains"
	OpEq       Op = "eq"
	OpGte      Op = "gte"
	OpLte      Op = "lte"
)

// Condition adalah satu predikat (field, operator, nilai).
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Filter menggabungkan beberapa kondisi dengan semantik AND.
// Grup yang ditambahkan lewat Any digabung internal sebagai OR,
// lalu di-AND-kan dengan kondisi lainnya.
type Filter struct {
	Conditions []Condition
	OrGroups   [][]Condition
}

func (f *Filter) Where(field string, op Op, value interface{}) *Filter {
	f.Conditions = append(f.Conditions, Condition{Field: field, Op: op, Value: value})
	return f
}

func (f *Filter) Any(conditions ...Condition) *Filter {
	if len(conditions) > 0 {
		f.OrGroups = append(f.OrGroups, conditions)
	}
	return f
}

func (f *Filter) IsEmpty() bool {
	return len(f.Conditions) == 0 && len(f.OrGroups) == 0
}

type Sort struct {
	Field string
	Desc  bool
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination dibentuk dari query string mentah. Nilai yang tidak bisa
// di-parse jatuh ke default; nilai yang bisa di-parse dipakai apa adanya
// (tidak ada batas atas untuk limit).
type Pagination struct {
	Page  int
	Limit int
}

func ParsePagination(pageStr, limitStr string) Pagination {
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = DefaultLimit
	}
	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// PageInfo adalah metadata pagination yang ikut dikirim di response.
type PageInfo struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Total      int64 `json:"total"`
	Limit      int   `json:"limit"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func NewPageInfo(p Pagination, total int64) PageInfo {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return PageInfo{
		Page:       p.Page,
		TotalPages: totalPages,
		Total:      total,
		Limit:      p.Limit,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
