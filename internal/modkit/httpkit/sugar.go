package httpkit

import (
	"net/http"

	phttp "tallybook/internal/platform/net/http"
)

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON binds and validates T then mounts h under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// CreateJSON is PostJSON answering 201
func CreateJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.CreateJSON(r, path, h)
}

// PutJSON binds and validates T then mounts h under PUT
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, phttp.JSONHandler(http.StatusOK, h))
}
