package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "tallybook/internal/platform/errors"
	"tallybook/internal/platform/logger"
	pnet "tallybook/internal/platform/net"
	"tallybook/internal/platform/net/http/bind"
)

// Envelope wraps every response body
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return style handlers produce
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201 with data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// Error derives status and envelope from err
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return style handler
func Handle(h func(r *stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).write(w, r) }
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	env := Envelope{RequestID: pnet.RequestID(r.Context())}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		status = perr.HTTPStatus(err)
		wire := perr.WireFrom(err)
		env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
		if status >= stdhttp.StatusInternalServerError {
			logger.C(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		}
	} else {
		env.Data = resp.Body
	}
	env.StatusCode, env.Status = status, stdhttp.StatusText(status)
	JSON(w, status, env)
}

// JSONHandler binds and validates T from the body, then wraps fn's result
func JSONHandler[T any](status int, fn func(*stdhttp.Request, T) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return Response{Status: status, Body: out}
	})
}

// NoBodyHandler wraps fn's result without reading a body
func NoBodyHandler(fn func(*stdhttp.Request) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}

// GetJSON mounts fn for GET
func GetJSON(r Router, path string, fn func(*stdhttp.Request) (any, error)) {
	r.Get(path, NoBodyHandler(fn))
}

// PostJSON mounts fn for POST, answering 200
func PostJSON[T any](r Router, path string, fn func(*stdhttp.Request, T) (any, error)) {
	r.Post(path, JSONHandler(stdhttp.StatusOK, fn))
}

// CreateJSON mounts fn for POST, answering 201
func CreateJSON[T any](r Router, path string, fn func(*stdhttp.Request, T) (any, error)) {
	r.Post(path, JSONHandler(stdhttp.StatusCreated, fn))
}
