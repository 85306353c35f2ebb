// Package httpkit re-exports the platform http seam for modules and adds
// route sugar and the per API middleware stack
package httpkit

import (
	"net/http"

	phttp "tallybook/internal/platform/net/http"
)

type (
	// Envelope is the wire envelope
	Envelope = phttp.Envelope

	// Response is what return style handlers produce
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Error maps err to its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a Response returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }
