package pagination

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/bytedance/sonic"
)

const (
	keyPage         = "page"
	keyTotalPages   = "totalPages"
	keyVisiblePages = "visiblePages"
)

var codec = sonic.Config{UseNumber: true, SortMapKeys: true}.Froze()

// Request is the pagination metadata of a list response. Metadata carries any
// additional caller fields, which Paginate passes through untouched.
type Request struct {
	Page       int
	TotalPages int
	Metadata   map[string]any
}

// Result is a Request extended with the page numbers to render.
type Result struct {
	Request
	VisiblePages []int
}

// Paginate returns a copy of req with its visible pages computed. req is not modified.
func Paginate(req Request, opts Options) Result {
	return Result{
		Request: Request{
			Page:       req.Page,
			TotalPages: req.TotalPages,
			Metadata:   maps.Clone(req.Metadata),
		},
		VisiblePages: VisiblePages(req.Page, req.TotalPages, opts),
	}
}

func (r Request) fields(extra int) map[string]any {
	out := make(map[string]any, len(r.Metadata)+2+extra)
	maps.Copy(out, r.Metadata)
	out[keyPage] = r.Page
	out[keyTotalPages] = r.TotalPages
	return out
}

func (r Request) MarshalJSON() ([]byte, error) {
	return codec.Marshal(r.fields(0))
}

func (r *Request) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := codec.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errors.New("pagination request must be a JSON object")
	}

	page, err := popInt(raw, keyPage)
	if err != nil {
		return err
	}
	totalPages, err := popInt(raw, keyTotalPages)
	if err != nil {
		return err
	}

	r.Page = page
	r.TotalPages = totalPages
	r.Metadata = nil
	if len(raw) > 0 {
		r.Metadata = raw
	}
	return nil
}

func (r Result) MarshalJSON() ([]byte, error) {
	out := r.Request.fields(1)
	visible := r.VisiblePages
	if visible == nil {
		visible = []int{}
	}
	out[keyVisiblePages] = visible
	return codec.Marshal(out)
}

func (r *Result) UnmarshalJSON(data []byte) error {
	if err := r.Request.UnmarshalJSON(data); err != nil {
		return err
	}

	r.VisiblePages = []int{}
	rawPages, ok := r.Metadata[keyVisiblePages]
	if !ok {
		return nil
	}
	delete(r.Metadata, keyVisiblePages)
	if len(r.Metadata) == 0 {
		r.Metadata = nil
	}

	items, ok := rawPages.([]any)
	if !ok {
		return fmt.Errorf("%s must be an array", keyVisiblePages)
	}
	for _, item := range items {
		n, err := toInt(item)
		if err != nil {
			return fmt.Errorf("invalid %s entry: %w", keyVisiblePages, err)
		}
		r.VisiblePages = append(r.VisiblePages, n)
	}
	return nil
}

func popInt(raw map[string]any, key string) (int, error) {
	v, ok := raw[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	delete(raw, key)
	return n, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%s is not a number", n)
		}
		return toInt(f)
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
