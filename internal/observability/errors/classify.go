// Package errors derives low-cardinality error labels for metrics and logs.
package errors

import (
	goerrors "errors"
	"reflect"
	"strings"

	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
)

// Classify returns a normalized error label suitable for tagging metrics and logs.
// SDK errors are labelled by their code; anything else by the innermost concrete type.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	if code := sdkerrors.GetCode(err); code != "" {
		return string(code)
	}

	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	name := strings.ToLower(strings.ReplaceAll(t.String(), "*", ""))
	name = strings.ReplaceAll(name, ".", "_")
	if name == "" {
		return "unknown"
	}
	return name
}
