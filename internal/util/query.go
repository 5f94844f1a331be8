package util //nolint:revive // package name util hosts shared helpers used across layers

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParam is a single key of a generated query string.
// Only one of Values or Value is used: Values when non-nil, Value otherwise.
type QueryParam struct {
	Key    string
	Values []string
	Value  *string
}

// ListParam builds a QueryParam for a filter list. Empty lists are omitted from the output.
func ListParam(key string, values []string) QueryParam {
	return QueryParam{Key: key, Values: values}
}

// IntParam builds a QueryParam for an integer value.
func IntParam(key string, value int) QueryParam {
	v := strconv.Itoa(value)
	return QueryParam{Key: key, Value: &v}
}

// StringParam builds a QueryParam for a scalar string. Empty strings are omitted from the output.
func StringParam(key, value string) QueryParam {
	if value == "" {
		return QueryParam{Key: key}
	}
	return QueryParam{Key: key, Value: &value}
}

// GenerateQueryStr renders params in the given order as key=value pairs joined by "&".
// List values are comma-joined after escaping each element, so an element containing
// a comma stays distinguishable from the separator. Params without values are skipped.
func GenerateQueryStr(params ...QueryParam) string {
	var b strings.Builder
	for _, p := range params {
		rendered, ok := renderParam(p)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(rendered)
	}
	return b.String()
}

func renderParam(p QueryParam) (string, bool) {
	if p.Values != nil {
		escaped := make([]string, 0, len(p.Values))
		for _, v := range p.Values {
			if v == "" {
				continue
			}
			escaped = append(escaped, url.QueryEscape(v))
		}
		if len(escaped) == 0 {
			return "", false
		}
		return strings.Join(escaped, ","), true
	}
	if p.Value == nil {
		return "", false
	}
	return url.QueryEscape(*p.Value), true
}
