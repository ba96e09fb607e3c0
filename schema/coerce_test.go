package schema

import "testing"

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		value   any
		want    any
		wantErr bool
	}{
		{"string passes through", TypeString, "hi", "hi", false},
		{"string rejects number", TypeString, 3.0, nil, true},
		{"string rejects bool", TypeString, true, nil, true},

		{"integer from whole float", TypeInteger, float64(42), int64(42), false},
		{"integer from int", TypeInteger, 7, int64(7), false},
		{"integer from numeric string", TypeInteger, "19", int64(19), false},
		{"integer rejects decimal", TypeInteger, 1.5, nil, true},
		{"integer rejects word", TypeInteger, "seven", nil, true},
		{"integer rejects bool", TypeInteger, true, nil, true},

		{"number from float", TypeNumber, 2.5, 2.5, false},
		{"number from int", TypeNumber, 2, 2.0, false},
		{"number from string", TypeNumber, "3.14", 3.14, false},
		{"number rejects word", TypeNumber, "pi", nil, true},

		{"boolean passes through", TypeBoolean, true, true, false},
		{"boolean from string", TypeBoolean, "true", true, false},
		{"boolean from zero string", TypeBoolean, "0", false, false},
		{"boolean rejects number", TypeBoolean, 1.0, nil, true},
		{"boolean rejects word", TypeBoolean, "yes", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.typ, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Coerce(%v, %v) = %v, want error", tt.typ, tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Coerce(%v, %v) = %v (%T), want %v (%T)", tt.typ, tt.value, got, got, tt.want, tt.want)
			}
		})
	}

	t.Run("rejects unsupported type", func(t *testing.T) {
		if _, err := Coerce(Type("object"), map[string]any{}); err == nil {
			t.Error("expected error for unsupported type")
		}
	})
}

func TestValid(t *testing.T) {
	for _, typ := range []Type{TypeString, TypeInteger, TypeNumber, TypeBoolean} {
		if !Valid(typ) {
			t.Errorf("Valid(%q) = false, want true", typ)
		}
	}
	if Valid(Type("array")) {
		t.Error(`Valid("array") = true, want false`)
	}
}
