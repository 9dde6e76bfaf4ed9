package model

import "strconv"

// CompanyInfo is a loosely-typed mapping of provider-supplied company fields.
// Every field is optional; readers must degrade to a placeholder when a key
// is missing or holds an unusable value.
type CompanyInfo map[string]any

// Str returns the string value for key, or "" when absent or non-string.
func (c CompanyInfo) Str(key string) string {
	if c == nil {
		return ""
	}
	s, _ := c[key].(string)
	return s
}

// Num returns the numeric value for key. Providers deliver numbers as
// arbitrary JSON scalars, so ints and numeric strings coerce too.
func (c CompanyInfo) Num(key string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	switch v := c[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
