package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E301")
	if err.Code != "E301" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Category != CategorySession {
		t.Errorf("Category = %q", err.Category)
	}
	if err.Message == "" || err.Detail == "" {
		t.Errorf("registered code missing message or detail: %+v", err)
	}
	if got := err.Error(); got != "E301: "+err.Message {
		t.Errorf("Error() = %q", got)
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" || err.Message != "unknown error" {
		t.Errorf("unexpected error for unknown code: %+v", err)
	}
}

func TestWithDetailAndSuggestion(t *testing.T) {
	err := New("E101").
		WithDetail("rule %s requires step >= 1, got %d", "increase", 0).
		WithSuggestion("pass a positive step")
	if err.Detail != "rule increase requires step >= 1, got 0" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion != "pass a positive step" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("disk on fire")
	err := New("E201").WithWrapped(inner)
	if !stderrors.Is(err, inner) {
		t.Errorf("errors.Is failed to see wrapped error")
	}

	var coded *Error
	wrapped := fmt.Errorf("loading: %w", err)
	if !stderrors.As(wrapped, &coded) || coded.Code != "E201" {
		t.Errorf("errors.As failed through wrapping")
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryRender, "cannot render node kind %d", 9)
	if err.Code != "" {
		t.Errorf("Newf must not assign a code, got %q", err.Code)
	}
	if err.Error() != "cannot render node kind 9" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRegistryCategories(t *testing.T) {
	wantPrefix := map[byte]Category{
		'1': CategoryTransition,
		'2': CategoryConfig,
		'3': CategorySession,
		'4': CategoryProtocol,
	}
	for code, tmpl := range registry {
		want, ok := wantPrefix[code[1]]
		if !ok {
			continue
		}
		if tmpl.Category != want {
			t.Errorf("%s: category %q, want %q", code, tmpl.Category, want)
		}
	}
}
