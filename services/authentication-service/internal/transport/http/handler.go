// Package httptransport exposes registration and login over HTTP/JSON.
package httptransport

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/app/auth"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/app/commands"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/domain/user"
	"github.com/Muskhoops/FRETXPRESS/shared/httpx"
	"github.com/Muskhoops/FRETXPRESS/shared/validation"
)

type registerer interface {
	Handle(ctx context.Context, params commands.RegisterParams) (*user.User, error)
}

type authenticator interface {
	Handle(ctx context.Context, params commands.LoginParams) (*commands.LoginResult, error)
}

type currentUser interface {
	Handle(ctx context.Context, token string) (*user.User, error)
}

type Handler struct {
	register       registerer
	login          authenticator
	me             currentUser
	validate       *validation.Validator
	requestTimeout time.Duration
}

// New panics on nil dependencies. The timeout must leave room for the login latency.
func New(register registerer, login authenticator, me currentUser, requestTimeout time.Duration) *Handler {
	if register == nil || login == nil || me == nil {
		panic("httptransport.New: nil dependency")
	}
	if requestTimeout <= commands.LoginLatency {
		requestTimeout = commands.LoginLatency + 4*time.Second
	}
	return &Handler{
		register:       register,
		login:          login,
		me:             me,
		validate:       validation.New(),
		requestTimeout: requestTimeout,
	}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /auth/account-types", h.accountTypes)
	mux.HandleFunc("POST /auth/register", h.registerUser)
	mux.HandleFunc("POST /auth/login", h.loginUser)
	mux.HandleFunc("GET /auth/me", h.currentUser)
	return mux
}

type registerRequest struct {
	AccountType string `json:"account_type" validate:"required,oneof=personal business"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name" validate:"notblank"`
	LastName    string `json:"last_name" validate:"notblank"`
}

// login only checks presence; format problems read as bad credentials
type loginRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

type userView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountType string `json:"account_type"`
	AccountName string `json:"account_label"`
	CreatedAt   string `json:"created_at"`
}

func toUserView(u *user.User) userView {
	return userView{
		ID:          u.UserID.String(),
		Email:       u.UserEmail,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		AccountType: string(u.AccountType),
		AccountName: u.AccountType.Label(),
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

type loginResponse struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresAt string   `json:"expires_at"`
	User      userView `json:"user"`
}

func (h *Handler) accountTypes(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"account_types": user.AccountOptions()})
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	u, err := h.register.Handle(ctx, commands.RegisterParams{
		AccountType: req.AccountType,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserView(u))
}

func (h *Handler) loginUser(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	res, err := h.login.Handle(ctx, commands.LoginParams{Email: req.Email, Password: req.Password})
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Token:     res.Token,
		TokenType: res.TokenType,
		ExpiresAt: res.ExpiresAt.Format(time.RFC3339),
		User:      toUserView(res.User),
	})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing bearer token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	u, err := h.me.Handle(ctx, strings.TrimSpace(token))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserView(u))
}

func writeErr(w http.ResponseWriter, err error) {
	m := auth.MapError(err)
	httpx.WriteError(w, m.Status, m.Kind, m.Message)
}
