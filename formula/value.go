package formula

import "reflect"

// Field values are dynamically typed. Comparisons follow one explicit total
// order over value classes, null < bool < number < string, and compare within
// a class by native ordering. Equality across classes is always false, so a
// numeric literal never equals a string field and an absent field never
// equals any literal.
const (
	classNull = iota
	classBool
	classNumber
	classString
	classOther
)

func classOf(v any) int {
	if v == nil {
		return classNull
	}
	switch v.(type) {
	case bool:
		return classBool
	case string:
		return classString
	}
	if _, ok := toFloat64(v); ok {
		return classNumber
	}
	return classOther
}

// toFloat64 promotes any Go numeric kind to float64 so that records populated
// from Go code compare the same as records decoded from JSON.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func valueEqual(a, b any) bool {
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return false
	}
	switch ca {
	case classNull:
		return true
	case classBool:
		return a.(bool) == b.(bool)
	case classNumber:
		fa, _ := toFloat64(a)
		fb, _ := toFloat64(b)
		return fa == fb
	case classString:
		return a.(string) == b.(string)
	}
	// Compound values (slices, maps) only ever compare equal or not.
	return reflect.DeepEqual(a, b)
}

func valueLess(a, b any) bool {
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return ca < cb
	}
	switch ca {
	case classBool:
		return !a.(bool) && b.(bool)
	case classNumber:
		fa, _ := toFloat64(a)
		fb, _ := toFloat64(b)
		return fa < fb
	case classString:
		return a.(string) < b.(string)
	}
	return false
}
