package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

// FieldInfo describes one exported field of a component struct.
type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

// FieldLine is a rendered field: its name and formatted value.
type FieldLine struct {
	Name  string
	Value string
}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

var fields = &fieldCache{fields: make(map[reflect.Type][]FieldInfo)}

func (c *fieldCache) get(t reflect.Type) []FieldInfo {
	c.mu.RLock()
	cached, ok := c.fields[t]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var infos []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			infos = append(infos, FieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	c.fields[t] = infos
	return infos
}

// FormatFields formats the exported fields of a struct, or a pointer to one.
// Floats use two decimals; nil pointers print as nil. Anything that is not a
// struct yields a single line named after its type.
func FormatFields(v any) []FieldLine {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return []FieldLine{{Name: val.Type().Name(), Value: formatValue(val)}}
	}

	infos := fields.get(val.Type())
	lines := make([]FieldLine, 0, len(infos))
	for _, info := range infos {
		fieldVal := val.Field(info.Index)
		if info.IsPointer {
			if fieldVal.IsNil() {
				lines = append(lines, FieldLine{Name: info.Name, Value: "nil"})
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		lines = append(lines, FieldLine{Name: info.Name, Value: formatValue(fieldVal)})
	}
	return lines
}

func formatValue(val reflect.Value) string {
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", val.Float())
	case reflect.Slice:
		return fmt.Sprintf("[%d items]", val.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len())
	case reflect.Func, reflect.Interface:
		if val.IsNil() {
			return "nil"
		}
		return val.Type().String()
	default:
		return fmt.Sprintf("%v", val.Interface())
	}
}
