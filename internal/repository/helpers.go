package repository

import (
	"strconv"
	"strings"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// rowsFrom flattens the per-statement response wrappers returned by the
// database layer into a list of record maps.
func rowsFrom(result []interface{}) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					if row, ok := item.(map[string]interface{}); ok {
						rows = append(rows, row)
					}
				}
				continue
			}
		}

		if row, ok := res.(map[string]interface{}); ok {
			if _, wrapper := row["status"]; !wrapper {
				rows = append(rows, row)
			}
		}
	}

	return rows
}

// createdRow returns the record produced by the CREATE statement of a
// multi-statement transaction. LET statements yield no rows, so the created
// record is the last row in the response.
func createdRow(result []interface{}) (map[string]interface{}, bool) {
	rows := rowsFrom(result)
	if len(rows) == 0 {
		return nil, false
	}
	return rows[len(rows)-1], true
}

// recordIDInt extracts the integer part of a SurrealDB record ID
// (e.g. camper:42 -> 42) from the shapes the driver may return.
func recordIDInt(id interface{}) int64 {
	switch v := id.(type) {
	case models.RecordID:
		return idValueInt(v.ID)
	case *models.RecordID:
		if v != nil {
			return idValueInt(v.ID)
		}
	case map[string]interface{}:
		// Handle {"tb": "camper", "id": 42} format
		if inner, ok := v["id"]; ok {
			return idValueInt(inner)
		}
		if inner, ok := v["ID"]; ok {
			return idValueInt(inner)
		}
	default:
		return idValueInt(id)
	}
	return 0
}

// idValueInt converts the ID part of a record ID to int64
func idValueInt(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	case string:
		// Either a bare number or a full "table:42" record id
		s := n
		if i := strings.LastIndex(s, ":"); i >= 0 {
			s = s[i+1:]
		}
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			return parsed
		}
	}
	return 0
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt extracts an int value from a map
func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}
