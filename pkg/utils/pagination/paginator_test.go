package pagination

import (
	"encoding/json"
	"reflect"
	"slices"
	"testing"
)

func TestPaginatePassesMetadataThrough(t *testing.T) {
	docs := []string{"a", "b"}
	req := Request{
		Page:       4,
		TotalPages: 9,
		Metadata: map[string]any{
			"baseUrl": "/promotions?",
			"docs":    docs,
			"limit":   10,
		},
	}

	result := Paginate(req, Options{})

	if result.Page != 4 || result.TotalPages != 9 {
		t.Fatalf("expected page 4 of 9, got page %d of %d", result.Page, result.TotalPages)
	}
	if !slices.Equal(result.VisiblePages, []int{2, 3, 4, 5, 6}) {
		t.Fatalf("expected [2 3 4 5 6], got %v", result.VisiblePages)
	}
	if !reflect.DeepEqual(result.Metadata, req.Metadata) {
		t.Fatalf("expected metadata %v, got %v", req.Metadata, result.Metadata)
	}
}

func TestPaginateDoesNotMutateInput(t *testing.T) {
	req := Request{Page: 1, TotalPages: 3, Metadata: map[string]any{"title": "Pages"}}

	result := Paginate(req, Options{})
	result.Metadata["title"] = "changed"
	result.Metadata["extra"] = true

	if req.Metadata["title"] != "Pages" {
		t.Fatalf("expected input metadata untouched, got %v", req.Metadata)
	}
	if _, ok := req.Metadata["extra"]; ok {
		t.Fatal("expected no key added to input metadata")
	}
}

func TestPaginateIdempotent(t *testing.T) {
	req := Request{Page: 10, TotalPages: 10, Metadata: map[string]any{"k": "v"}}

	first := Paginate(req, strict)
	second := Paginate(req, strict)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestPaginateNilMetadata(t *testing.T) {
	result := Paginate(Request{Page: 1, TotalPages: 0}, Options{})
	if result.Metadata != nil {
		t.Fatalf("expected nil metadata, got %v", result.Metadata)
	}
	if result.VisiblePages == nil || len(result.VisiblePages) != 0 {
		t.Fatalf("expected empty visible pages, got %v", result.VisiblePages)
	}
}

func TestResultJSONKeepsExtraFields(t *testing.T) {
	input := `{"page":3,"totalPages":10,"baseUrl":"/promotions?","docs":[{"id":1}],"hasNextPage":true}`

	var req Request
	if err := json.Unmarshal([]byte(input), &req); err != nil {
		t.Fatalf("unmarshal request: %v", err)
	}
	if req.Page != 3 || req.TotalPages != 10 {
		t.Fatalf("expected page 3 of 10, got page %d of %d", req.Page, req.TotalPages)
	}
	if _, ok := req.Metadata["page"]; ok {
		t.Fatal("expected page to be removed from metadata")
	}

	data, err := json.Marshal(Paginate(req, Options{}))
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if out["baseUrl"] != "/promotions?" {
		t.Fatalf("expected baseUrl to pass through, got %v", out["baseUrl"])
	}
	if out["hasNextPage"] != true {
		t.Fatalf("expected hasNextPage to pass through, got %v", out["hasNextPage"])
	}
	docs, ok := out["docs"].([]any)
	if !ok || len(docs) != 1 {
		t.Fatalf("expected docs to pass through, got %v", out["docs"])
	}
	if out["page"] != float64(3) || out["totalPages"] != float64(10) {
		t.Fatalf("expected page 3 of 10, got %v of %v", out["page"], out["totalPages"])
	}
	if !reflect.DeepEqual(out["visiblePages"], []any{float64(1), float64(2), float64(3), float64(4), float64(5)}) {
		t.Fatalf("expected visiblePages [1 2 3 4 5], got %v", out["visiblePages"])
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !slices.Equal(decoded.VisiblePages, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("expected decoded visible pages, got %v", decoded.VisiblePages)
	}
	if _, ok := decoded.Metadata["visiblePages"]; ok {
		t.Fatal("expected visiblePages to be lifted out of metadata")
	}
}

func TestRequestJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing page", `{"totalPages":3}`},
		{"missing totalPages", `{"page":1}`},
		{"string page", `{"page":"1","totalPages":3}`},
		{"fractional page", `{"page":1.5,"totalPages":3}`},
		{"not an object", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			if err := json.Unmarshal([]byte(tt.input), &req); err == nil {
				t.Fatalf("expected error for %s", tt.input)
			}
		})
	}
}

func TestRequestJSONAcceptsIntegralFloat(t *testing.T) {
	var req Request
	if err := json.Unmarshal([]byte(`{"page":2.0,"totalPages":7}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Page != 2 {
		t.Fatalf("expected page 2, got %d", req.Page)
	}
}
