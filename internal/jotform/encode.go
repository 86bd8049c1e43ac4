package jotform

import (
	"fmt"
	"net/url"
	"strings"
)

// flatten turns a flat map into form parameters, stringifying values.
func flatten(fields map[string]any) url.Values {
	params := url.Values{}
	for key, value := range fields {
		params.Set(key, stringify(value))
	}
	return params
}

// prefixed nests every key under the given prefix: prefix[key]=value.
func prefixed(prefix string, fields map[string]any) url.Values {
	params := url.Values{}
	for key, value := range fields {
		params.Set(fmt.Sprintf("%s[%s]", prefix, key), stringify(value))
	}
	return params
}

// encodeSubmission encodes answer data into the submission[qid] parameter
// layout. A key like "1_first" addresses the "first" sub-field of question 1
// and becomes submission[1][first].
func encodeSubmission(submission map[string]any) url.Values {
	params := url.Values{}
	for key, value := range submission {
		if qid, field, ok := strings.Cut(key, "_"); ok {
			params.Set(fmt.Sprintf("submission[%s][%s]", qid, field), stringify(value))
		} else {
			params.Set(fmt.Sprintf("submission[%s]", key), stringify(value))
		}
	}
	return params
}

// encodeFormDefinition encodes a form definition of the shape
//
//	{"questions": {"1": {"type": "control_textbox", ...}},
//	 "properties": {"title": "My Form"}}
//
// into the nested parameter layout the create-form endpoint expects.
// A "questions" list is also accepted and keyed by index.
func encodeFormDefinition(form map[string]any) url.Values {
	params := url.Values{}
	for section, value := range form {
		switch content := value.(type) {
		case map[string]any:
			for key, inner := range content {
				if section == "properties" {
					params.Set(fmt.Sprintf("%s[%s]", section, key), stringify(inner))
					continue
				}
				nested, ok := inner.(map[string]any)
				if !ok {
					params.Set(fmt.Sprintf("%s[%s]", section, key), stringify(inner))
					continue
				}
				for attr, attrValue := range nested {
					params.Set(fmt.Sprintf("%s[%s][%s]", section, key, attr), stringify(attrValue))
				}
			}
		case []any:
			for i, item := range content {
				nested, ok := item.(map[string]any)
				if !ok {
					continue
				}
				for attr, attrValue := range nested {
					params.Set(fmt.Sprintf("%s[%d][%s]", section, i, attr), stringify(attrValue))
				}
			}
		default:
			params.Set(section, stringify(value))
		}
	}
	return params
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; render integers without the
		// trailing ".0" so question orders and limits survive round trips.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
