package formula

import "testing"

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"Int", int(3), 3, true},
		{"Int8", int8(-4), -4, true},
		{"Int16", int16(300), 300, true},
		{"Int32", int32(-70000), -70000, true},
		{"Int64", int64(1 << 40), 1 << 40, true},
		{"Uint", uint(9), 9, true},
		{"Uint8", uint8(255), 255, true},
		{"Uint16", uint16(65535), 65535, true},
		{"Uint32", uint32(1 << 31), 1 << 31, true},
		{"Uint64", uint64(1 << 50), 1 << 50, true},
		{"Float32", float32(1.5), 1.5, true},
		{"Float64", 2.25, 2.25, true},
		{"String", "3", 0, false},
		{"Bool", true, 0, false},
		{"Nil", nil, 0, false},
		{"Slice", []any{1.0}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toFloat64(tt.value)
			if ok != tt.ok || got != tt.want {
				t.Errorf("toFloat64(%v) = (%v, %v), want (%v, %v)", tt.value, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"Nil equals nil", nil, nil, true},
		{"Nil never equals zero", nil, 0.0, false},
		{"Nil never equals empty string", nil, "", false},
		{"Int equals float", 3, 3.0, true},
		{"Numbers differ", 3, 4.0, false},
		{"Number never equals its string form", 1, "1", false},
		{"Strings equal", "abc", "abc", true},
		{"Strings are case sensitive", "abc", "Abc", false},
		{"Bools equal", true, true, true},
		{"Bool never equals one", true, 1, false},
		{"Slices compare deeply", []any{1.0, "a"}, []any{1.0, "a"}, true},
		{"Slices differ", []any{1.0}, []any{2.0}, false},
		{"Slice never equals string", []any{"a"}, "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valueEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("valueEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValueLess(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"Nil before numbers", nil, -1000.0, true},
		{"Numbers after nil", -1000.0, nil, false},
		{"Nil before bools", nil, false, true},
		{"Bools before numbers", true, 0, true},
		{"False before true", false, true, true},
		{"True not before false", true, false, false},
		{"Numbers before strings", 1000, "", true},
		{"Strings after numbers", "", 1000, false},
		{"Numeric order", 2, 10, true},
		{"Mixed numeric kinds", int64(2), 2.5, true},
		{"String order", "a", "b", true},
		{"String order reversed", "b", "a", false},
		{"Equal numbers not less", 3, 3.0, false},
		{"Compound values are unordered", []any{1.0}, []any{2.0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valueLess(tt.a, tt.b); got != tt.want {
				t.Errorf("valueLess(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
