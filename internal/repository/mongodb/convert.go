package mongodb

import (
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/realty-catalog/internal/domain"
)

// toDocument переводит bson.D в domain.Document с сохранением порядка ключей
func toDocument(d bson.D) domain.Document {
	out := make(domain.Document, 0, len(d))
	for _, e := range d {
		out = append(out, domain.Field{Key: e.Key, Value: toValue(e.Value)})
	}
	return out
}

func toValue(v any) any {
	switch t := v.(type) {
	case bson.D:
		return toDocument(t)
	case bson.M:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(domain.Document, 0, len(t))
		for _, k := range keys {
			out = append(out, domain.Field{Key: k, Value: toValue(t[k])})
		}
		return out
	case bson.A:
		return toArray(t)
	case []any:
		return toArray(t)
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return t.String()
		}
		return f
	case primitive.Null, primitive.Undefined:
		return nil
	default:
		return v
	}
}

func toArray(a []any) []any {
	out := make([]any, len(a))
	for i, e := range a {
		out[i] = toValue(e)
	}
	return out
}
