package analyze

import (
	"fmt"
	"strings"

	"builder-generator/internal/schema"
)

// DirectivePrefix marks a struct type for builder generation. Arguments
// follow as space-separated key=value pairs, e.g.
//
//	//builder:generate prefix=With build=Create entry=Name
const DirectivePrefix = "//builder:generate"

// recordOptions are the per-record arguments of a generate directive.
type recordOptions struct {
	BuilderName  string
	SetterPrefix string
	BuildMethod  string
	EntryField   string
}

// parseDirective parses the argument list of a generate directive line.
func parseDirective(args string) (recordOptions, error) {
	var opts recordOptions

	for _, arg := range strings.Fields(args) {
		key, value, found := strings.Cut(arg, "=")
		if !found || value == "" {
			return opts, fmt.Errorf("malformed directive argument %q, want key=value", arg)
		}

		switch key {
		case "name":
			opts.BuilderName = value
		case "prefix":
			opts.SetterPrefix = value
		case "build":
			opts.BuildMethod = value
		case "entry":
			opts.EntryField = value
		default:
			return opts, fmt.Errorf("unknown directive argument %q", key)
		}
	}

	return opts, nil
}

// fieldOptions are the parsed `builder:"..."` tag options of one field.
type fieldOptions struct {
	Exclude    bool
	Required   bool
	Default    string
	Setter     string
	SkipSetter bool
	Transform  *schema.Transform
}

// parseFieldTag parses the value of a builder struct tag. Options are
// comma-separated; commas nested in brackets or quotes do not split, so
// defaults like `default=[]string{"a", "b"}` stay intact.
func parseFieldTag(tag string) (fieldOptions, error) {
	var opts fieldOptions

	if tag == "" {
		return opts, nil
	}

	if tag == "-" {
		opts.Exclude = true
		return opts, nil
	}

	for _, option := range splitOptions(tag) {
		key, value, hasValue := strings.Cut(option, "=")

		switch key {
		case "required":
			if hasValue {
				return opts, fmt.Errorf("option %q takes no value", key)
			}

			opts.Required = true

		case "skip":
			if hasValue {
				return opts, fmt.Errorf("option %q takes no value", key)
			}

			opts.SkipSetter = true

		case "default":
			if value == "" {
				return opts, fmt.Errorf("option %q needs a value", key)
			}

			opts.Default = value

		case "setter":
			if value == "" {
				return opts, fmt.Errorf("option %q needs a value", key)
			}

			opts.Setter = value

		case "transform":
			tr, err := parseTransform(value)
			if err != nil {
				return opts, err
			}

			opts.Transform = tr

		default:
			return opts, fmt.Errorf("unknown builder tag option %q", option)
		}
	}

	return opts, nil
}

// parseTransform parses a transform option value of the form func(param),
// e.g. transform=asTimeout(int).
func parseTransform(value string) (*schema.Transform, error) {
	open := strings.IndexByte(value, '(')
	if open <= 0 || !strings.HasSuffix(value, ")") {
		return nil, fmt.Errorf("malformed transform %q, want func(paramType)", value)
	}

	fn := value[:open]
	param := value[open+1 : len(value)-1]

	if param == "" {
		return nil, fmt.Errorf("transform %q is missing its parameter type", value)
	}

	return &schema.Transform{Func: fn, Param: param}, nil
}

// splitOptions splits a tag value on top-level commas, tracking bracket
// depth and string literals so composite default expressions survive.
func splitOptions(tag string) []string {
	var (
		parts    []string
		start    int
		depth    int
		inString bool
	)

	for i := 0; i < len(tag); i++ {
		switch c := tag[i]; {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(tag[start:i]))
			start = i + 1
		}
	}

	parts = append(parts, strings.TrimSpace(tag[start:]))

	return parts
}
