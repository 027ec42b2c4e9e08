package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"movingdata.com/p/apiscaffold/modelutil"
)

// Routes returns the account handlers: register, login and the profile of
// the signed in user.
func Routes(deps *modelutil.Deps) chi.Router {
	router := chi.NewRouter()
	svc := New(deps).Service

	router.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		var in RegisterInput
		if !modelutil.Bind(w, r, &in) {
			return
		}
		session, err := svc.Register(r.Context(), in)
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) || modelutil.IsDuplicate(err) {
			modelutil.Conflict(w, "User already exists")
			return
		}
		if err != nil {
			modelutil.InternalError(w, err)
			return
		}
		modelutil.Created(w, session)
	})

	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var in LoginInput
		if !modelutil.Bind(w, r, &in) {
			return
		}
		session, err := svc.Login(r.Context(), in)
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			modelutil.Unauthorized(w, "Invalid credentials")
			return
		case errors.Is(err, ErrInactive):
			modelutil.Forbidden(w, "Account is inactive")
			return
		case err != nil:
			modelutil.InternalError(w, err)
			return
		}
		modelutil.SuccessMessage(w, session, "Login successful")
	})

	router.With(deps.Auth.Required()).Get("/profile", func(w http.ResponseWriter, r *http.Request) {
		claim, err := modelutil.UserID(r)
		if err != nil {
			modelutil.Unauthorized(w, "Unauthorized")
			return
		}
		id, err := strconv.ParseInt(claim, 10, 64)
		if err != nil {
			modelutil.Unauthorized(w, "Unauthorized")
			return
		}
		u, err := svc.Profile(r.Context(), id)
		if err != nil {
			modelutil.InternalError(w, err)
			return
		}
		if u == nil {
			modelutil.NotFound(w, "User not found")
			return
		}
		modelutil.Success(w, u)
	})

	return router
}
