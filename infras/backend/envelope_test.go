package backend_test

import (
	"encoding/json"
	"glamp/infras/backend"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestUnwrapList_ShapesAreEquivalent(t *testing.T) {
	shapes := map[string]string{
		"bare array":       `[{"id":"a","title":"Diesel"},{"id":"b","title":"Linen"}]`,
		"success envelope": `{"success":true,"data":[{"id":"a","title":"Diesel"},{"id":"b","title":"Linen"}]}`,
		"data array":       `{"data":[{"id":"a","title":"Diesel"},{"id":"b","title":"Linen"}]}`,
		"data named key":   `{"data":{"expenses":[{"id":"a","title":"Diesel"},{"id":"b","title":"Linen"}]}}`,
		"top named key":    `{"expenses":[{"id":"a","title":"Diesel"},{"id":"b","title":"Linen"}]}`,
		"data items":       `{"success":true,"data":{"items":[{"id":"a","title":"Diesel"},{"id":"b","title":"Linen"}]}}`,
	}

	expected := []row{{ID: "a", Title: "Diesel"}, {ID: "b", Title: "Linen"}}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			got, _, err := backend.UnwrapList[row](json.RawMessage(body), "expenses")
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestUnwrapList_Pagination(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected backend.Page
	}{
		{
			name:     "top level",
			body:     `{"data":[],"total":42,"page":2,"limit":10,"totalPages":5}`,
			expected: backend.Page{Total: 42, Page: 2, Limit: 10, TotalPages: 5, Known: true},
		},
		{
			name:     "inside data",
			body:     `{"success":true,"data":{"income":[],"total":7,"page":1,"limit":5,"totalPages":2}}`,
			expected: backend.Page{Total: 7, Page: 1, Limit: 5, TotalPages: 2, Known: true},
		},
		{
			name:     "pagination object",
			body:     `{"data":[],"pagination":{"total":12,"page":1,"limit":10,"totalPages":2}}`,
			expected: backend.Page{Total: 12, Page: 1, Limit: 10, TotalPages: 2, Known: true},
		},
		{
			name:     "top level count is the page size",
			body:     `{"data":[{"id":"a"},{"id":"b"}],"count":2}`,
			expected: backend.Page{},
		},
		{
			name:     "top level count next to a total",
			body:     `{"data":[],"count":10,"total":35,"limit":10}`,
			expected: backend.Page{Total: 35, Limit: 10, Known: true},
		},
		{
			name:     "count inside meta is the total",
			body:     `{"data":[],"meta":{"count":64,"page":1,"limit":20}}`,
			expected: backend.Page{Total: 64, Page: 1, Limit: 20, Known: true},
		},
		{
			name:     "nested block wins over top level",
			body:     `{"data":[],"page":9,"pagination":{"total":30,"page":3,"limit":10}}`,
			expected: backend.Page{Total: 30, Page: 3, Limit: 10, Known: true},
		},
		{
			name:     "bare array has none",
			body:     `[]`,
			expected: backend.Page{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, page, err := backend.UnwrapList[row](json.RawMessage(tt.body), "income")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page)
		})
	}
}

func TestUnwrapList_EmptyAndInvalid(t *testing.T) {
	got, _, err := backend.UnwrapList[row](json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got, _, err = backend.UnwrapList[row](json.RawMessage(`{"data":null}`))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, _, err = backend.UnwrapList[row](json.RawMessage(`{"data":{"unknown":[]}}`))
	assert.ErrorIs(t, err, backend.ErrUnexpectedShape)

	_, _, err = backend.UnwrapList[row](json.RawMessage(`"text"`))
	assert.ErrorIs(t, err, backend.ErrUnexpectedShape)
}

func TestUnwrapList_SuccessFalse(t *testing.T) {
	_, _, err := backend.UnwrapList[row](json.RawMessage(`{"success":false,"message":"Not allowed"}`))

	var be *backend.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Not allowed", be.Message)
}

func TestUnwrapObject(t *testing.T) {
	shapes := map[string]string{
		"bare":             `{"id":"a","title":"Diesel"}`,
		"data":             `{"data":{"id":"a","title":"Diesel"}}`,
		"success envelope": `{"success":true,"data":{"id":"a","title":"Diesel"}}`,
		"named key":        `{"success":true,"data":{"expense":{"id":"a","title":"Diesel"}}}`,
	}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			got, err := backend.UnwrapObject[row](json.RawMessage(body), "expense")
			require.NoError(t, err)
			assert.Equal(t, row{ID: "a", Title: "Diesel"}, got)
		})
	}

	_, err := backend.UnwrapObject[row](json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, backend.ErrUnexpectedShape)
}

func TestTemplate(t *testing.T) {
	assert.Equal(t, "/glamps/:id", backend.Template("/glamps/3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e"))
	assert.Equal(t, "/finance/expenses/:id/submit", backend.Template("/finance/expenses/42/submit"))
	assert.Equal(t, "/finance/expenses", backend.Template("/finance/expenses?page=2"))
}
