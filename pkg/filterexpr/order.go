package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type orderParams struct {
	Key  string
	Desc bool
}

// parseOrderBy accepts "<key>" or "<key> asc|desc". Adapters append an id
// tiebreaker themselves so a single key is always enough for stable paging.
func parseOrderBy(raw string, schema OrderSchema) (orderParams, error) {
	if schema.Default == "" {
		return orderParams{}, errors.New("order schema default key required")
	}
	if _, ok := schema.Fields[schema.Default]; !ok {
		return orderParams{}, fmt.Errorf("order key %q missing from schema fields", schema.Default)
	}

	ord := orderParams{Key: schema.Default, Desc: schema.DefaultDesc}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ord, nil
	}

	parts := strings.Fields(raw)
	if len(parts) > 2 {
		return orderParams{}, fmt.Errorf("invalid order_by %q", raw)
	}

	key := parts[0]
	if _, ok := schema.Fields[key]; !ok {
		return orderParams{}, fmt.Errorf("field %q cannot be used for ordering", key)
	}
	ord.Key = key
	ord.Desc = false

	if len(parts) == 2 {
		switch strings.ToLower(parts[1]) {
		case "asc":
		case "desc":
			ord.Desc = true
		default:
			return orderParams{}, fmt.Errorf("invalid direction %q for field %q", parts[1], key)
		}
	}

	return ord, nil
}

func setOrder(params any, ord orderParams) error {
	rv := reflect.ValueOf(params)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("params must be a non-nil pointer")
	}
	dest := rv.Elem()
	if dest.Kind() != reflect.Struct {
		return errors.New("params must point to a struct")
	}

	key := dest.FieldByName("OrderKey")
	if !key.IsValid() || key.Kind() != reflect.String || !key.CanSet() {
		return fmt.Errorf("params struct %s needs a settable string field OrderKey", dest.Type())
	}
	desc := dest.FieldByName("OrderDesc")
	if !desc.IsValid() || desc.Kind() != reflect.Bool || !desc.CanSet() {
		return fmt.Errorf("params struct %s needs a settable bool field OrderDesc", dest.Type())
	}

	key.SetString(ord.Key)
	desc.SetBool(ord.Desc)
	return nil
}
