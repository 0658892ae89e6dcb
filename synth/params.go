package synth

import "fmt"

// Parameter is one resolved operation parameter with a display-ready
// placeholder value.
type Parameter struct {
	Name     string `json:"name"`
	In       string `json:"in"`
	Required bool   `json:"required"`
	// Value is the string placeholder shown in an editable parameter field.
	Value string `json:"value"`
}

// ParameterSet groups an operation's parameters by location.
type ParameterSet struct {
	Path   []Parameter `json:"path,omitempty"`
	Query  []Parameter `json:"query,omitempty"`
	Header []Parameter `json:"header,omitempty"`
}

// BuildParameters resolves an operation's parameter list against doc and
// groups path, query, and header parameters, each with a placeholder value.
// $ref parameters (e.g. "#/components/parameters/acceptLanguage") are
// resolved in place; unresolvable ones are skipped. Entries without a name
// are skipped. Never returns an error.
func BuildParameters(params []any, doc Document) *ParameterSet {
	if len(params) == 0 {
		return nil
	}

	set := &ParameterSet{}
	for _, raw := range params {
		m := asMap(raw)
		if m == nil {
			continue
		}
		if ref := asString(m["$ref"]); ref != "" {
			target, _, ok := lookupPointer(doc, ref)
			if !ok {
				continue
			}
			if m = asMap(target); m == nil {
				continue
			}
		}

		name := asString(m["name"])
		if name == "" {
			continue
		}
		p := Parameter{
			Name:     name,
			In:       asString(m["in"]),
			Required: asBool(m["required"]),
			Value:    parameterPlaceholder(m),
		}

		switch p.In {
		case "path":
			set.Path = append(set.Path, p)
		case "query":
			set.Query = append(set.Query, p)
		case "header":
			set.Header = append(set.Header, p)
		}
	}
	if len(set.Path) == 0 && len(set.Query) == 0 && len(set.Header) == 0 {
		return nil
	}
	return set
}

// parameterPlaceholder derives a string placeholder for one parameter:
// the schema's example, then the parameter's own example, then a
// type-driven default.
func parameterPlaceholder(param map[string]any) string {
	schema := asMap(param["schema"])

	example := param["example"]
	if schema != nil && schema["example"] != nil {
		example = schema["example"]
	}
	if example != nil {
		return stringifyParam(example)
	}

	var typ string
	if schema != nil {
		typ = asString(schema["type"])
	}
	switch typ {
	case "integer", "number":
		return "0"
	case "boolean":
		return "true"
	default:
		return ""
	}
}

func stringifyParam(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return fmt.Sprintf("%t", t)
	case float64, float32, int, int64, uint64:
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
