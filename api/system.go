package api

import (
	"fmt"
	"net/http"

	"github.com/netpost/stringshop/internal/db"
)

type SystemHandler struct {
	db *db.DB
}

func NewSystemHandler(database *db.DB) *SystemHandler {
	return &SystemHandler{db: database}
}

// HealthHandler runs a trivial query against the database and nothing more.
func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	var one int
	if err := h.db.QueryRow(r.Context(), `SELECT 1`).Scan(&one); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"status":"broken","error":%q}`+"\n", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"status":"ok","message":"It works."}`)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","buildTime":"%s"}`, version, buildTime)
	}
}
