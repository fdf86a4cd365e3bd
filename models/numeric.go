package models

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// FlexInt is an integer field that tolerates numeric-looking strings in
// listing documents. A value that cannot be parsed is kept as invalid rather
// than failing the whole decode; the ranker treats invalid values as failing
// every numeric comparison.
type FlexInt struct {
	Value int
	Valid bool
}

// FlexFloat is the float counterpart of FlexInt, used for price and surface.
type FlexFloat struct {
	Value float64
	Valid bool
}

// NewFlexInt returns a valid FlexInt holding v.
func NewFlexInt(v int) FlexInt { return FlexInt{Value: v, Valid: true} }

// NewFlexFloat returns a valid FlexFloat holding v.
func NewFlexFloat(v float64) FlexFloat { return FlexFloat{Value: v, Valid: true} }

func parseFlexible(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = FlexInt{}
		return nil
	}
	s = strings.Trim(s, `"`)
	v, ok := parseFlexible(s)
	if !ok {
		*f = FlexInt{}
		return nil
	}
	*f = FlexInt{Value: int(v), Valid: true}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

func (f *FlexInt) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*f = FlexInt{}
	switch t {
	case bsontype.Int32:
		if v, _, ok := bsoncore.ReadInt32(data); ok {
			*f = FlexInt{Value: int(v), Valid: true}
		}
	case bsontype.Int64:
		if v, _, ok := bsoncore.ReadInt64(data); ok {
			*f = FlexInt{Value: int(v), Valid: true}
		}
	case bsontype.Double:
		if v, _, ok := bsoncore.ReadDouble(data); ok {
			*f = FlexInt{Value: int(v), Valid: true}
		}
	case bsontype.String:
		if s, _, ok := bsoncore.ReadString(data); ok {
			if v, parsed := parseFlexible(s); parsed {
				*f = FlexInt{Value: int(v), Valid: true}
			}
		}
	}
	return nil
}

func (f FlexInt) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !f.Valid {
		return bsontype.Null, nil, nil
	}
	return bsontype.Int64, bsoncore.AppendInt64(nil, int64(f.Value)), nil
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = FlexFloat{}
		return nil
	}
	s = strings.Trim(s, `"`)
	v, ok := parseFlexible(s)
	if !ok {
		*f = FlexFloat{}
		return nil
	}
	*f = FlexFloat{Value: v, Valid: true}
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f.Value, 'f', -1, 64)), nil
}

func (f *FlexFloat) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*f = FlexFloat{}
	switch t {
	case bsontype.Double:
		if v, _, ok := bsoncore.ReadDouble(data); ok {
			*f = FlexFloat{Value: v, Valid: true}
		}
	case bsontype.Int32:
		if v, _, ok := bsoncore.ReadInt32(data); ok {
			*f = FlexFloat{Value: float64(v), Valid: true}
		}
	case bsontype.Int64:
		if v, _, ok := bsoncore.ReadInt64(data); ok {
			*f = FlexFloat{Value: float64(v), Valid: true}
		}
	case bsontype.String:
		if s, _, ok := bsoncore.ReadString(data); ok {
			if v, parsed := parseFlexible(s); parsed {
				*f = FlexFloat{Value: v, Valid: true}
			}
		}
	}
	return nil
}

func (f FlexFloat) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !f.Valid {
		return bsontype.Null, nil, nil
	}
	return bsontype.Double, bsoncore.AppendDouble(nil, f.Value), nil
}
