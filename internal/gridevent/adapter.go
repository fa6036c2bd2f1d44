// Package gridevent normalizes "cell edited" events emitted by a grid front
// end into sheet.EditRequest values. The event shape varies between grid
// versions, so several keys are tried for each value:
//
//	row index: row, rowIndex, rowIdx
//	field:     prop, column.prop, column.name
//	value:     val, model[field]
//
// The payload may sit under a "detail" object or at the top level. The first
// non-null key wins even if its type is wrong, in which case the event is
// rejected as malformed.
package gridevent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/alexanderramin/capgrid/internal/sheet"
)

// Normalize converts a raw event into an EditRequest. It returns false for
// events missing a usable row index or field id.
func Normalize(raw map[string]any) (sheet.EditRequest, bool) {
	if raw == nil {
		return sheet.EditRequest{}, false
	}
	detail := raw
	if d, ok := raw["detail"].(map[string]any); ok {
		detail = d
	}

	row, ok := rowIndex(first(detail, "row", "rowIndex", "rowIdx"))
	if !ok {
		return sheet.EditRequest{}, false
	}

	fieldVal := detail["prop"]
	if fieldVal == nil {
		column, _ := detail["column"].(map[string]any)
		fieldVal = first(column, "prop", "name")
	}
	field, ok := fieldVal.(string)
	if !ok {
		return sheet.EditRequest{}, false
	}

	val := detail["val"]
	if val == nil {
		if model, isMap := detail["model"].(map[string]any); isMap {
			val = model[field]
		}
	}

	return sheet.EditRequest{RowIndex: row, FieldID: field, RawValue: rawString(val)}, true
}

// Decode parses a JSON event and normalizes it.
func Decode(data []byte) (sheet.EditRequest, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return sheet.EditRequest{}, false
	}
	return Normalize(raw)
}

func first(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v := m[k]; v != nil {
			return v
		}
	}
	return nil
}

func rowIndex(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		return n, n >= 0
	case int64:
		return int(n), n >= 0
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func rawString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(x)
	}
}
