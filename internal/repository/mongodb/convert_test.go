package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/realty-catalog/internal/domain"
)

func TestToDocument_ConvertsNestedValues(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	raw := bson.D{
		{Key: "_id", Value: oid},
		{Key: "development", Value: bson.D{
			{Key: "name", Value: "ЖК Солнечный"},
			{Key: "photos", Value: bson.A{"a.jpg", "b.jpg"}},
			{Key: "parameters", Value: bson.M{"Класс жилья": "Комфорт", "Срок сдачи": "2025"}},
		}},
		{Key: "latitude", Value: 54.7},
		{Key: "updated_at", Value: primitive.NewDateTimeFromTime(created)},
		{Key: "nothing", Value: primitive.Null{}},
	}

	doc := toDocument(raw)

	assert.Equal(t, oid.Hex(), doc.String("_id"))
	assert.Equal(t, "ЖК Солнечный", doc.String("development", "name"))
	assert.Equal(t, []any{"a.jpg", "b.jpg"}, doc.Array("development", "photos"))

	params := doc.Doc("development", "parameters")
	require.Len(t, params, 2)
	assert.Equal(t, "Класс жилья", params[0].Key)

	updated, ok := doc.Get("updated_at")
	require.True(t, ok)
	assert.Equal(t, created, updated)

	nothing, ok := doc.Get("nothing")
	require.True(t, ok)
	assert.Nil(t, nothing)

	_, isDoc := any(doc.Doc("development")).(domain.Document)
	assert.True(t, isDoc)
}

func TestSearchFilter(t *testing.T) {
	assert.Empty(t, SearchFilter(""))

	filter := SearchFilter("солн.")
	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 4)

	first := or[0].(bson.M)
	re := first["domrf.name"].(primitive.Regex)
	assert.Equal(t, `солн\.`, re.Pattern)
	assert.Equal(t, "i", re.Options)

	last := or[3].(bson.M)
	assert.Contains(t, last, "development.name")
}
