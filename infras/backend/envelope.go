package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedShape is returned when a response matches none of the
// envelopes the backend is known to produce.
var ErrUnexpectedShape = errors.New("unexpected backend response shape")

// DefaultListKeys are probed after the caller's keys.
var DefaultListKeys = []string{"items", "results", "rows"}

// Page is the pagination metadata found alongside a list, if any.
type Page struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	Known      bool `json:"-"`
}

type pageFields struct {
	Total      *int `json:"total"`
	Count      *int `json:"count"`
	Page       *int `json:"page"`
	Limit      *int `json:"limit"`
	TotalPages *int `json:"totalPages"`
}

// Decode unmarshals raw into T.
func Decode[T any](raw json.RawMessage) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode backend response: %w", err)
	}

	return out, nil
}

// UnwrapList extracts a list from any of the envelopes the backend returns:
//
//	[...]
//	{"success": true, "data": [...]}
//	{"data": [...]}
//	{"data": {"<key>": [...]}}
//	{"<key>": [...]}
//
// keys name the domain property (e.g. "expenses") and are tried before
// DefaultListKeys. A null body or a null list yields an empty slice.
func UnwrapList[T any](raw json.RawMessage, keys ...string) ([]T, Page, error) {
	var page Page

	list, err := findList(raw, &page, append(append([]string{}, keys...), DefaultListKeys...))
	if err != nil {
		return nil, page, err
	}

	out := make([]T, 0)
	if list == nil {
		return out, page, nil
	}

	if err := json.Unmarshal(list, &out); err != nil {
		return nil, page, fmt.Errorf("failed to decode backend list: %w", err)
	}

	if out == nil {
		out = make([]T, 0)
	}

	return out, page, nil
}

// UnwrapObject extracts a single object from {"success", "data": {...}},
// {"data": {...}} or a bare object. keys name an optional inner property
// (e.g. {"data": {"booking": {...}}}).
func UnwrapObject[T any](raw json.RawMessage, keys ...string) (T, error) {
	var out T

	object, err := findObject(raw, keys)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(object, &out); err != nil {
		return out, fmt.Errorf("failed to decode backend object: %w", err)
	}

	return out, nil
}

func findList(raw json.RawMessage, page *Page, keys []string) (json.RawMessage, error) {
	switch kindOf(raw) {
	case '[':
		return raw, nil
	case 'n':
		return nil, nil
	case '{':
	default:
		return nil, ErrUnexpectedShape
	}

	top, err := asObject(raw)
	if err != nil {
		return nil, err
	}

	if err := checkSuccess(top); err != nil {
		return nil, err
	}

	readPage(top, page)

	if data, ok := top["data"]; ok {
		switch kindOf(data) {
		case '[':
			return data, nil
		case 'n':
			return nil, nil
		case '{':
			inner, err := asObject(data)
			if err != nil {
				return nil, err
			}

			readPage(inner, page)

			if list, ok := pickList(inner, keys); ok {
				return list, nil
			}
		}
	}

	if list, ok := pickList(top, keys); ok {
		return list, nil
	}

	return nil, ErrUnexpectedShape
}

func findObject(raw json.RawMessage, keys []string) (json.RawMessage, error) {
	if kindOf(raw) != '{' {
		return nil, ErrUnexpectedShape
	}

	top, err := asObject(raw)
	if err != nil {
		return nil, err
	}

	if err := checkSuccess(top); err != nil {
		return nil, err
	}

	object := raw

	if data, ok := top["data"]; ok && kindOf(data) == '{' {
		object = data
	}

	if len(keys) > 0 {
		inner, err := asObject(object)
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			if value, ok := inner[key]; ok && kindOf(value) == '{' {
				return value, nil
			}
		}
	}

	return object, nil
}

// checkSuccess turns {"success": false, ...} on a 2xx response into an Error.
func checkSuccess(top map[string]json.RawMessage) error {
	flag, ok := top["success"]
	if !ok {
		return nil
	}

	var success bool
	if err := json.Unmarshal(flag, &success); err != nil || success {
		return nil
	}

	body, _ := json.Marshal(top)

	return &Error{Status: 200, Message: messageFromBody(200, body), Body: body}
}

func pickList(object map[string]json.RawMessage, keys []string) (json.RawMessage, bool) {
	for _, key := range keys {
		if value, ok := object[key]; ok {
			switch kindOf(value) {
			case '[':
				return value, true
			case 'n':
				return json.RawMessage("[]"), true
			}
		}
	}

	return nil, false
}

// readPage collects pagination from the object and from a nested
// pagination or meta block, the nested block winning. A bare count is only
// trusted inside the nested block; at top level it usually counts the
// current page.
func readPage(object map[string]json.RawMessage, page *Page) {
	encoded, err := json.Marshal(object)
	if err == nil {
		applyPage(encoded, page, false)
	}

	for _, key := range []string{"pagination", "meta"} {
		if nested, ok := object[key]; ok && kindOf(nested) == '{' {
			applyPage(nested, page, true)
		}
	}
}

func applyPage(raw json.RawMessage, page *Page, countIsTotal bool) {
	var fields pageFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return
	}

	total := fields.Total
	if total == nil && countIsTotal {
		total = fields.Count
	}

	if total != nil {
		page.Total = *total
		page.Known = true
	}

	if fields.Page != nil {
		page.Page = *fields.Page
	}

	if fields.Limit != nil {
		page.Limit = *fields.Limit
	}

	if fields.TotalPages != nil {
		page.TotalPages = *fields.TotalPages
		page.Known = true
	}
}

func asObject(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	return object, nil
}

// kindOf returns the first significant byte of a JSON value, or 'n' for
// null and empty input.
func kindOf(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 'n'
	}

	return trimmed[0]
}
