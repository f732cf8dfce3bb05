package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/netpost/stringshop/pkg/models"
	"github.com/netpost/stringshop/pkg/repository"
)

type RacketsHandler struct {
	racketRepo repository.RacketRepo
}

func NewRacketsHandler(rr repository.RacketRepo) *RacketsHandler {
	return &RacketsHandler{racketRepo: rr}
}

type racketListResponse struct {
	OrdersToday   int64           `json:"orders_today"`
	FinishedToday int64           `json:"finished_today"`
	Items         []models.Racket `json:"items"`
}

// List returns every job ordered by status descending then creation time
// descending, with the same-day counters for the queue view.
func (h *RacketsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.racketRepo.ListRackets(ctx)
	if err != nil {
		http.Error(w, "failed to list rackets", http.StatusInternalServerError)
		return
	}

	since := startOfDayUTC(time.Now())
	ordersToday, err := h.racketRepo.CountCreatedSince(ctx, since)
	if err != nil {
		http.Error(w, "failed to count orders", http.StatusInternalServerError)
		return
	}
	finishedToday, err := h.racketRepo.CountFinishedSince(ctx, since)
	if err != nil {
		http.Error(w, "failed to count finished orders", http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []models.Racket{}
	}

	writeJSON(w, racketListResponse{
		OrdersToday:   ordersToday,
		FinishedToday: finishedToday,
		Items:         items,
	}, http.StatusOK)
}

func (h *RacketsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"page": "racket_form"}, http.StatusOK)
}

// Create inserts a new job from the submitted form. Status, stringer and
// timestamps are server-assigned; whatever the client sends for them is
// ignored. Payment comes from the presence of the paid checkbox.
func (h *RacketsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	racket := models.Racket{
		PlayerName:  strings.TrimSpace(r.PostFormValue("player_name")),
		PhoneNumber: strings.TrimSpace(r.PostFormValue("phone_number")),
		RacketBrand: strings.TrimSpace(r.PostFormValue("racket_brand")),
		RacketModel: strings.TrimSpace(r.PostFormValue("racket_model")),
		StringMain:  strings.TrimSpace(r.PostFormValue("string_main")),
		StringCross: strings.TrimSpace(r.PostFormValue("string_cross")),
		Status:      models.StatusInProgress,
		Payment:     r.PostFormValue("paid") == "on",
	}
	if racket.PlayerName == "" || racket.PhoneNumber == "" || racket.RacketBrand == "" ||
		racket.RacketModel == "" || racket.StringMain == "" || racket.StringCross == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	tension, err := strconv.Atoi(r.PostFormValue("tension"))
	if err != nil || tension <= 0 {
		http.Error(w, "Invalid tension", http.StatusBadRequest)
		return
	}
	racket.Tension = tension

	if _, err := h.racketRepo.CreateRacket(r.Context(), &racket); err != nil {
		http.Error(w, "failed to create racket", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/racket", http.StatusSeeOther)
}

// Update overwrites status, stringer and payment on one job. Customer and
// equipment fields stay as they are.
func (h *RacketsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := racketID(r)
	if !ok {
		http.Error(w, "Invalid racket id", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	status := models.Status(r.PostFormValue("status"))
	if !status.Valid() {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}
	stringer := strings.TrimSpace(r.PostFormValue("stringer"))
	payment := r.PostFormValue("paid") == "on"

	applied, err := h.racketRepo.UpdateWorkflow(r.Context(), id, status, stringer, payment)
	if err != nil {
		http.Error(w, "failed to update racket", http.StatusInternalServerError)
		return
	}
	if !applied {
		http.Error(w, "Racket not found", http.StatusNotFound)
		return
	}

	http.Redirect(w, r, "/racket", http.StatusSeeOther)
}

// ConfirmDelete is the first phase of deletion: it shows the target job so
// staff can confirm before the POST commits.
func (h *RacketsHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := racketID(r)
	if !ok {
		http.Error(w, "Invalid racket id", http.StatusBadRequest)
		return
	}

	racket, err := h.racketRepo.GetRacket(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to load racket", http.StatusInternalServerError)
		return
	}
	if racket == nil {
		http.Error(w, "Racket not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{"page": "delete_confirmation", "racket": racket}, http.StatusOK)
}

// Delete commits the deletion. Deleting an already-gone job is a clean 404.
func (h *RacketsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := racketID(r)
	if !ok {
		http.Error(w, "Invalid racket id", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	racket, err := h.racketRepo.GetRacket(ctx, id)
	if err != nil {
		http.Error(w, "failed to load racket", http.StatusInternalServerError)
		return
	}
	if racket == nil {
		http.Error(w, "Racket not found", http.StatusNotFound)
		return
	}

	applied, err := h.racketRepo.DeleteRacket(ctx, id)
	if err != nil {
		http.Error(w, "failed to delete racket", http.StatusInternalServerError)
		return
	}
	if !applied {
		http.Error(w, "Racket not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{"page": "delete_success", "racket": racket}, http.StatusOK)
}

func racketID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func startOfDayUTC(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).UnixMilli()
}
