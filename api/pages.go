package api

import "net/http"

// PagesHandler serves the navigation views that carry no data yet: the home
// dashboard and the history/inventory/stringers/customers placeholders.
type PagesHandler struct{}

func (h *PagesHandler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"page": name}, http.StatusOK)
	}
}
