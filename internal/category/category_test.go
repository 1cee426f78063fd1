package category_test

import (
	"testing"

	"schedula/internal/category"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		ok      bool
	}{
		{name: "Training keyword", message: "book training tomorrow", want: "Training", ok: true},
		{name: "Meeting keyword", message: "set up a meeting", want: "Meeting", ok: true},
		{name: "Azure keyword", message: "azure fundamentals session", want: "Azure", ok: true},
		{name: "Python keyword", message: "python workshop please", want: "Python", ok: true},
		{name: "Declaration order wins", message: "azure training session", want: "Training", ok: true},
		{name: "No keyword", message: "hello there", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := category.Match(tt.message)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.message, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestTypesAreCopied(t *testing.T) {
	first := category.Types()
	first[0].Name = "mutated"
	if category.Types()[0].Name == "mutated" {
		t.Error("Types() must return a copy, not the underlying slice")
	}
}
