// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-wise/internal/utils"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler. A
// known path requested with an unregistered method gets 404 instead of chi's
// default 405, hiding which methods exist.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteDetail(w, "Not Found", http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
