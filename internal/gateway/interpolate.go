package gateway

import (
	"fmt"
	"regexp"
	"strings"
)

// varPattern matches ${varname} placeholders.
var varPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Interpolate replaces ${var} placeholders with values from the variables map.
// Returns an error if any referenced variable is missing.
// This function operates on raw file content BEFORE YAML parsing.
func Interpolate(content string, variables map[string]any) (string, error) {
	var missingVars []string

	result := varPattern.ReplaceAllStringFunc(content, func(match string) string {
		key := varPattern.FindStringSubmatch(match)[1]

		value, ok := variables[key]
		if !ok {
			missingVars = append(missingVars, key)
			return match // Keep original if missing
		}

		return toString(value)
	})

	if len(missingVars) > 0 {
		return "", fmt.Errorf("missing variables: ${%s}", strings.Join(missingVars, "}, ${"))
	}

	return result, nil
}

// toString converts any value to its string representation.
func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%v", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
