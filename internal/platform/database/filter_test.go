package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"tokoapi/internal/platform/query"
)

func TestBuildFilter(t *testing.T) {
	t.Run("Empty filter matches everything", func(t *testing.T) {
		got := BuildFilter(query.Filter{})
		assert.Equal(t, bson.M{}, got)
	})

	t.Run("Contains becomes case-insensitive regex", func(t *testing.T) {
		f := (&query.Filter{}).Where("kategori", query.OpContains, "Office")
		got := BuildFilter(*f)
		assert.Equal(t, bson.M{
			"kategori": bson.M{"$regex": "Office", "$options": "i"},
		}, got)
	})

	t.Run("Regex metacharacters in user input are escaped", func(t *testing.T) {
		f := (&query.Filter{}).Where("nama_produk", query.OpContains, "pen (biru)")
		got := BuildFilter(*f)
		assert.Equal(t, bson.M{
			"nama_produk": bson.M{"$regex": `pen \(biru\)`, "$options": "i"},
		}, got)
	})

	t.Run("Lone open paren stays a literal substring", func(t *testing.T) {
		f := (&query.Filter{}).Where("title", query.OpContains, "(")
		got := BuildFilter(*f)
		assert.Equal(t, bson.M{
			"title": bson.M{"$regex": `\(`, "$options": "i"},
		}, got)
	})

	t.Run("Range bounds on the same field are merged", func(t *testing.T) {
		f := (&query.Filter{}).
			Where("harga", query.OpGte, 10.0).
			Where("harga", query.OpLte, 20.0)
		got := BuildFilter(*f)
		assert.Equal(t, bson.M{
			"harga": bson.M{"$gte": 10.0, "$lte": 20.0},
		}, got)
	})

	t.Run("Lower bound alone", func(t *testing.T) {
		f := (&query.Filter{}).Where("harga", query.OpGte, 10.0)
		got := BuildFilter(*f)
		assert.Equal(t, bson.M{"harga": bson.M{"$gte": 10.0}}, got)
	})

	t.Run("Eq is a direct comparison", func(t *testing.T) {
		f := (&query.Filter{}).Where("status", query.OpEq, "aktif")
		got := BuildFilter(*f)
		assert.Equal(t, bson.M{"status": "aktif"}, got)
	})

	t.Run("Or group becomes $or", func(t *testing.T) {
		f := (&query.Filter{}).Any(
			query.Condition{Field: "title", Op: query.OpContains, Value: "go"},
			query.Condition{Field: "content", Op: query.OpContains, Value: "go"},
		)
		got := BuildFilter(*f)
		assert.Equal(t, bson.M{
			"$or": []bson.M{
				{"title": bson.M{"$regex": "go", "$options": "i"}},
				{"content": bson.M{"$regex": "go", "$options": "i"}},
			},
		}, got)
	})

	t.Run("Or group composes with AND conditions", func(t *testing.T) {
		f := (&query.Filter{}).
			Where("kategori", query.OpContains, "office").
			Any(
				query.Condition{Field: "nama_produk", Op: query.OpContains, Value: "pen"},
				query.Condition{Field: "deskripsi", Op: query.OpContains, Value: "pen"},
			)
		got := BuildFilter(*f)
		assert.Len(t, got, 2)
		assert.Contains(t, got, "kategori")
		assert.Contains(t, got, "$or")
	})

	t.Run("Multiple or groups are wrapped in $and", func(t *testing.T) {
		f := (&query.Filter{}).
			Any(query.Condition{Field: "title", Op: query.OpContains, Value: "a"}).
			Any(query.Condition{Field: "author", Op: query.OpContains, Value: "b"})
		got := BuildFilter(*f)
		ands, ok := got["$and"].([]bson.M)
		assert.True(t, ok)
		assert.Len(t, ands, 2)
	})
}
