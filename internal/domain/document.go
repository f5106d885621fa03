package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Field - пара ключ/значение документа
type Field struct {
	Key   string
	Value any
}

// Document - документ из документного хранилища с сохранённым порядком ключей.
// Значения: string, bool, числа, nil, time.Time, Document и []any.
type Document []Field

// Get возвращает значение верхнего уровня
func (d Document) Get(key string) (any, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (d Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Path проходит по вложенным документам
func (d Document) Path(keys ...string) (any, bool) {
	cur := d
	for i, k := range keys {
		v, ok := cur.Get(k)
		if !ok {
			return nil, false
		}
		if i == len(keys)-1 {
			return v, true
		}
		next, ok := v.(Document)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// Doc возвращает вложенный документ или nil
func (d Document) Doc(keys ...string) Document {
	v, ok := d.Path(keys...)
	if !ok {
		return nil
	}
	doc, _ := v.(Document)
	return doc
}

// String возвращает строку по пути или пустую строку
func (d Document) String(keys ...string) string {
	v, ok := d.Path(keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Array возвращает массив по пути или nil
func (d Document) Array(keys ...string) []any {
	v, ok := d.Path(keys...)
	if !ok {
		return nil
	}
	arr, _ := v.([]any)
	return arr
}

// Number возвращает число по пути; false если значение отсутствует или не числовое
func (d Document) Number(keys ...string) (float64, bool) {
	v, ok := d.Path(keys...)
	if !ok {
		return 0, false
	}
	return ToFloat(v)
}

// Clone - глубокая копия документа
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for i, f := range d {
		out[i] = Field{Key: f.Key, Value: CloneValue(f.Value)}
	}
	return out
}

// CloneValue копирует вложенные документы и массивы, скаляры возвращаются как есть
func CloneValue(v any) any {
	switch t := v.(type) {
	case Document:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = CloneValue(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON сохраняет порядок ключей
func (d Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToFloat приводит числовые типы к float64
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// ScalarString - строковое представление скалярного значения, пустая строка для остального
func ScalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return ""
	}
}
