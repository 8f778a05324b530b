package pagination

import "testing"

func TestCurrentURL(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"/promotions", "/promotions?"},
		{"/promotions?", "/promotions?"},
		{"/promotions?page=3", "/promotions?"},
		{"/promotions?page=3&limit=20", "/promotions?limit=20&"},
		{"/settings/currencies?search=usd&page=2&limit=5", "/settings/currencies?limit=5&search=usd&"},
		{"/pages?page=1&page=2", "/pages?"},
	}

	for _, tt := range tests {
		if got := CurrentURL(tt.uri); got != tt.expected {
			t.Fatalf("CurrentURL(%q): expected %q, got %q", tt.uri, tt.expected, got)
		}
	}
}

func TestPageURL(t *testing.T) {
	if got := PageURL("/promotions?limit=20&page=1", 4); got != "/promotions?limit=20&page=4" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := PageURL("/users", 2); got != "/users?page=2" {
		t.Fatalf("unexpected url %q", got)
	}
}
