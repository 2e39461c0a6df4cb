package database

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"tokoapi/internal/platform/query"
)

// BuildFilter menerjemahkan query.Filter yang store-agnostic menjadi dokumen
// filter Mongo. Lapisan HTTP dan service tidak pernah menyentuh sintaks bson.
func BuildFilter(f query.Filter) bson.M {
	out := bson.M{}
	for _, c := range f.Conditions {
		applyCondition(out, c)
	}

	switch len(f.OrGroups) {
	case 0:
	case 1:
		out["$or"] = orClauses(f.OrGroups[0])
	default:
		ands := make([]bson.M, 0, len(f.OrGroups))
		for _, group := range f.OrGroups {
			ands = append(ands, bson.M{"$or": orClauses(group)})
		}
		out["$and"] = ands
	}
	return out
}

func orClauses(group []query.Condition) []bson.M {
	clauses := make([]bson.M, 0, len(group))
	for _, c := range group {
		clause := bson.M{}
		applyCondition(clause, c)
		clauses = append(clauses, clause)
	}
	return clauses
}

func applyCondition(doc bson.M, c query.Condition) {
	switch c.Op {
	case query.OpContains:
		// Substring match literal: metakarakter dari input user di-escape
		// supaya tidak menjadi pola regex yang rusak atau disalahgunakan
		doc[c.Field] = bson.M{"$regex": regexp.QuoteMeta(fmt.Sprintf("%v", c.Value)), "$options": "i"}
	case query.OpGte, query.OpLte:
		// Batas bawah dan atas untuk field yang sama digabung ke satu dokumen range
		bounds, ok := doc[c.Field].(bson.M)
		if !ok {
			bounds = bson.M{}
			doc[c.Field] = bounds
		}
		bounds["$"+string(c.Op)] = c.Value
	default:
		doc[c.Field] = c.Value
	}
}
