// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function replaces that with HTTP 400 and the body
// "Invalid request method", the uniform answer for every method other than
// the ones a resource registers.
//
// The lookup compares each registered route pattern against the raw request
// path. A path with no exact pattern match gets the 404 "Invalid URL" answer.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path

		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				writeText(w, r, http.StatusBadRequest, msgInvalidRequestMethod)
				return
			}
		}

		writeText(w, r, http.StatusNotFound, msgInvalidURL)
	}
}
