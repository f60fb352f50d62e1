package cssvar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidOptions is returned when rule options have an unrecognized shape
var ErrInvalidOptions = errors.New("invalid rule options")

// Options is the normalized, read-only rule configuration
type Options struct {
	Props         Comparison // Properties the rule polices
	FunctionNames []string   // Extra accepted function-name prefixes
}

// objectOptions is the structured form {props, functionNames}
type objectOptions struct {
	Props         []string `validate:"required,min=1,dive,required"`
	FunctionNames []string `validate:"dive,required,fnname"`
}

// functionNameList validates names handed in as ready-made Options
type functionNameList struct {
	FunctionNames []string `validate:"dive,required,fnname"`
}

var optionsValidate *validator.Validate

func init() {
	optionsValidate = validator.New()
	// Function names become literal prefixes; whitespace would never match a value start.
	_ = optionsValidate.RegisterValidation("fnname", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
}

// knownOptionKeys are the keys accepted in the object form
var knownOptionKeys = map[string]bool{
	"props":         true,
	"functionNames": true,
}

// ParseOptions normalizes the accepted option shapes:
//
//	"color"                                  // single selector
//	"/^border/"                              // single pattern selector
//	[]any{"color", "/^background/"}          // list of selectors
//	map[string]any{"props": ..., "functionNames": []any{"theme"}}
//
// Any other shape fails with an error wrapping ErrInvalidOptions.
func ParseOptions(raw any) (Options, error) {
	switch v := raw.(type) {
	case string, []string, []any:
		selectors, err := selectorList(v)
		if err != nil {
			return Options{}, err
		}
		return buildOptions(objectOptions{Props: selectors}, isList(v))
	case map[string]any:
		return parseObjectOptions(v)
	case Options:
		if v.Props == nil {
			return Options{}, fmt.Errorf("%w: props is required", ErrInvalidOptions)
		}
		if err := optionsValidate.Struct(functionNameList{FunctionNames: v.FunctionNames}); err != nil {
			return Options{}, fmt.Errorf("%w: %s", ErrInvalidOptions, describeValidation(err))
		}
		return Options{Props: v.Props, FunctionNames: dedupeNames(v.FunctionNames)}, nil
	case nil:
		return Options{}, fmt.Errorf("%w: no options given", ErrInvalidOptions)
	default:
		return Options{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidOptions, raw)
	}
}

func parseObjectOptions(m map[string]any) (Options, error) {
	var unknown []string
	for key := range m {
		if !knownOptionKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Options{}, fmt.Errorf("%w: unknown option(s) %s", ErrInvalidOptions, strings.Join(unknown, ", "))
	}

	props, ok := m["props"]
	if !ok || props == nil {
		return Options{}, fmt.Errorf("%w: props is required", ErrInvalidOptions)
	}
	selectors, err := selectorList(props)
	if err != nil {
		return Options{}, err
	}

	var functionNames []string
	if fn, ok := m["functionNames"]; ok && fn != nil {
		functionNames, err = stringList(fn, "functionNames")
		if err != nil {
			return Options{}, err
		}
	}

	return buildOptions(objectOptions{Props: selectors, FunctionNames: functionNames}, isList(props))
}

// buildOptions validates the structured form and compiles the selectors
func buildOptions(obj objectOptions, list bool) (Options, error) {
	if err := optionsValidate.Struct(obj); err != nil {
		return Options{}, fmt.Errorf("%w: %s", ErrInvalidOptions, describeValidation(err))
	}

	comparisons := make(List, 0, len(obj.Props))
	for _, selector := range obj.Props {
		c, err := ParseComparison(selector)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
		comparisons = append(comparisons, c)
	}

	var props Comparison = comparisons
	if !list {
		props = comparisons[0]
	}

	return Options{
		Props:         props,
		FunctionNames: dedupeNames(obj.FunctionNames),
	}, nil
}

// selectorList accepts a single selector string or a list of them
func selectorList(v any) ([]string, error) {
	if s, ok := v.(string); ok {
		return []string{s}, nil
	}
	return stringList(v, "props")
}

// stringList accepts []string or []any holding only strings
func stringList(v any, field string) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be a string, got %T", ErrInvalidOptions, field, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a string or list of strings, got %T", ErrInvalidOptions, field, v)
	}
}

func isList(v any) bool {
	switch v.(type) {
	case []string, []any:
		return true
	}
	return false
}

// describeValidation turns validator errors into one readable line
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := optionFieldName(fe.StructField())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" must not be empty")
		case "min":
			parts = append(parts, field+" needs at least one selector")
		case "fnname":
			parts = append(parts, fmt.Sprintf("%s entry %q contains whitespace", field, fe.Value()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %q", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func optionFieldName(structField string) string {
	name := structField
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "Props":
		return "props"
	case "FunctionNames":
		return "functionNames"
	}
	return name
}
