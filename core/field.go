package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	Float64Type
	BoolType
	DurationType
	ErrorType
	AnyType
)

// Field represents a key-value pair attached to a log record
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case DurationType:
		return time.Duration(f.Int64).String()
	case ErrorType:
		return f.Str
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// Field constructor helpers

// String creates a string field
func String(key, val string) Field {
	return Field{Key: key, Type: StringType, Str: val}
}

// Int64 creates an int64 field
func Int64(key string, val int64) Field {
	return Field{Key: key, Type: Int64Type, Int64: val}
}

// Float64 creates a float64 field
func Float64(key string, val float64) Field {
	return Field{Key: key, Type: Float64Type, Float64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) Field {
	int64Val := int64(0)
	if val {
		int64Val = 1
	}
	return Field{Key: key, Type: BoolType, Int64: int64Val}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Type: DurationType, Int64: int64(val)}
}

// Err creates an error field
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Type: ErrorType, Str: ""}
	}
	return Field{Key: "error", Type: ErrorType, Str: err.Error()}
}

// Any creates a field with any value
func Any(key string, val interface{}) Field {
	return Field{Key: key, Type: AnyType, Any: val}
}
