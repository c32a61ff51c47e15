package apiclient

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Params is a query-string source. Nil, nil-pointer and empty-string values
// are dropped when encoded.
type Params map[string]any

func (p Params) Values() url.Values {
	values := url.Values{}
	for key, raw := range p {
		if s, ok := stringify(raw); ok {
			values.Add(key, s)
		}
	}
	return values
}

func (p Params) Encode() string {
	return p.Values().Encode()
}

// ToParams flattens a filter struct (mapstructure tags) or map into Params.
func ToParams(obj any) (Params, error) {
	switch v := obj.(type) {
	case nil:
		return nil, nil
	case Params:
		return v, nil
	case map[string]any:
		return Params(v), nil
	}

	out := map[string]any{}
	if err := mapstructure.Decode(obj, &out); err != nil {
		return nil, fmt.Errorf("flatten params: %w", err)
	}
	return Params(out), nil
}

// GenParams renders obj as "?k=v&..." or "" when nothing survives filtering.
func GenParams(obj any) string {
	params, err := ToParams(obj)
	if err != nil || len(params) == 0 {
		return ""
	}
	if q := params.Encode(); q != "" {
		return "?" + q
	}
	return ""
}

func stringify(raw any) (string, bool) {
	if raw == nil {
		return "", false
	}
	rv := reflect.ValueOf(raw)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}

	var s string
	if rv.Kind() == reflect.String {
		s = rv.String()
	} else {
		converted, err := cast.ToStringE(rv.Interface())
		if err != nil {
			converted = fmt.Sprint(rv.Interface())
		}
		s = converted
	}
	if s == "" {
		return "", false
	}
	return s, true
}
