package api

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/netpost/stringshop/pkg/models"
	"github.com/netpost/stringshop/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 4
	maxUsernameLen = 20
	minPasswordLen = 8
	maxPasswordLen = 20
)

type AuthHandler struct {
	userRepo        repository.UserRepo
	sessionSecret   string
	sessionDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.UserRepo, sessionSecret string, sessionDuration time.Duration) *AuthHandler {
	return &AuthHandler{userRepo: ur, sessionSecret: sessionSecret, sessionDuration: sessionDuration}
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"page": "register"}, http.StatusOK)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		http.Error(w, "Username must be between 4 and 20 characters", http.StatusBadRequest)
		return
	}
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		http.Error(w, "Password must be between 8 and 20 characters", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	existing, err := h.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, "That username already exists. Please choose a different one.", http.StatusConflict)
		return
	}

	// Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if _, err := h.userRepo.CreateUser(ctx, &user); err != nil {
		// the unique constraint on username backs up the pre-check
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"page": "login"}, http.StatusOK)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	// Unknown username and wrong password answer identically so the
	// response does not reveal which usernames exist.
	user, err := h.userRepo.GetUserByUsername(r.Context(), username)
	if err != nil || user == nil {
		http.Error(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		http.Error(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	cookie, err := SessionCookie(h.sessionSecret, user.ID, user.Username, h.sessionDuration)
	if err != nil {
		logger.Error("issue session", slog.Any("err", err))
		http.Error(w, "Error signing session token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, cookie)
	http.Redirect(w, r, "/racket", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, clearedSessionCookie())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
