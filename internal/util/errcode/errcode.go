package errcode

import (
	"fmt"
	"net/http"
	"sort"
)

// Error is a terminal request failure with a stable machine code.
// Status decides the HTTP mapping: 400 validation, 403 permission, 404 lookup.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"error_code"`
	Message string `json:"detail"`
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func newError(status int, code string) *Error {
	return &Error{Status: status, Code: code, Message: Message(code)}
}

// Forbidden builds a 403 permission denial from a catalogued code.
func Forbidden(code string) *Error { return newError(http.StatusForbidden, code) }

// NotFound builds a 404 for an unresolvable path parameter.
func NotFound(code string) *Error { return newError(http.StatusNotFound, code) }

// BadRequest builds a 400 for request-level failures that are not tied to
// a single body field (bad search filters and the like).
func BadRequest(code string) *Error { return newError(http.StatusBadRequest, code) }

// FieldErrors collects per-field validation failures. Each field keeps the
// first code reported against it; independent fields fail independently.
type FieldErrors map[string]*Error

func (f FieldErrors) Add(field, code string) {
	if _, ok := f[field]; ok {
		return
	}
	f[field] = &Error{Status: http.StatusBadRequest, Code: code, Message: Message(code)}
}

func (f FieldErrors) Has(field string) bool { _, ok := f[field]; return ok }

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %v", fields)
}

// Message resolves a code to its human readable text. Unknown codes keep the
// code itself so a miswired call site is still visible to the caller.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
