package query

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var uuidType = reflect.TypeOf(uuid.UUID{})

// DecodeRow maps a row onto T using `db` struct tags. Embedded structs are
// flattened, so joined projections decode into composite views.
func DecodeRow[T any](row Row) (T, error) {
	var out T
	if err := decodeInto(map[string]any(row), &out); err != nil {
		return out, decodeError(err)
	}
	return out, nil
}

// DecodeRows is DecodeRow for every row. A nil input yields an empty slice.
func DecodeRows[T any](rows []Row) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		var v T
		if err := decodeInto(map[string]any(row), &v); err != nil {
			return nil, decodeError(fmt.Errorf("row %d: %w", i, err))
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeInto(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "db",
		Squash:     true,
		Result:     out,
		DecodeHook: uuidHook,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// uuidHook accepts the shapes pgx and callers hand us for uuid columns.
func uuidHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != uuidType {
		return data, nil
	}
	switch v := data.(type) {
	case [16]byte:
		return uuid.UUID(v), nil
	case pgtype.UUID:
		if !v.Valid {
			return uuid.Nil, nil
		}
		return uuid.UUID(v.Bytes), nil
	case string:
		return uuid.Parse(v)
	case []byte:
		return uuid.FromBytes(v)
	}
	return data, nil
}
