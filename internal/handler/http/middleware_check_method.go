// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// It answers 404 instead of chi's 405 so that a wrong method does not reveal
// that the path exists. A method that is registered for the exact path is
// served normally.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if methodRegistered(router, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		utils.WriteError(w, http.StatusNotFound, service.CodeNotFound, http.StatusText(http.StatusNotFound))
	}
}

func methodRegistered(router chi.Routes, method, path string) bool {
	found := false
	_ = chi.Walk(router, func(m, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if m == method && route == path {
			found = true
		}
		return nil
	})
	return found
}
