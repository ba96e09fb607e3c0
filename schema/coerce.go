package schema

import (
	"fmt"
	"strconv"
)

// Coerce converts value to the declared type. JSON decoding delivers
// numbers as float64, so integer coercion accepts whole floats;
// numeric and boolean strings are accepted for their respective types.
// A value that cannot be represented in the declared type returns an
// error.
func Coerce(t Type, value any) (any, error) {
	switch t {
	case TypeString:
		return coerceString(value)
	case TypeInteger:
		return coerceInteger(value)
	case TypeNumber:
		return coerceNumber(value)
	case TypeBoolean:
		return coerceBoolean(value)
	default:
		return nil, fmt.Errorf("unsupported type %q", t)
	}
}

func coerceString(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", value)
	}
	return s, nil
}

func coerceInteger(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		if v != float64(int64(v)) {
			return nil, fmt.Errorf("expected integer, got decimal number %v", v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected integer, got %q", v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", value)
	}
}

func coerceNumber(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("expected number, got %q", v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected number, got %T", value)
	}
}

func coerceBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("expected boolean, got %q", v)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("expected boolean, got %T", value)
	}
}
