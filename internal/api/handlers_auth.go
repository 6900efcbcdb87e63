// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package api

import (
	"errors"
	"net/http"

	"github.com/artscout/artscout/internal/auth"
	"github.com/artscout/artscout/internal/database"
	"github.com/artscout/artscout/internal/logging"
	"github.com/artscout/artscout/internal/validation"
)

// User-facing copy for the auth pages.
const (
	msgUserNotFound      = "User not found! Please check spelling or click below to register."
	msgWrongPassword     = "Incorrect username or password."
	msgLoginError        = "An error occurred during login. Please try again."
	msgRegistrationError = "An error occurred during registration. Please try again."
	msgLoggedOut         = "Logged out Successfully!"
)

type authPage struct {
	Message string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.templates.Render(w, r, http.StatusOK, "login", authPage{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeRequest(r, &req, func(get func(string) string) {
		req.Username = get("username")
		req.Password = get("password")
	}); err != nil {
		s.templates.Render(w, r, http.StatusOK, "login", authPage{Message: msgLoginError})
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		s.templates.Render(w, r, http.StatusOK, "login", authPage{Message: msgWrongPassword})
		return
	}

	user, err := s.store.GetUserByUsername(r.Context(), req.Username)
	if errors.Is(err, database.ErrNotFound) {
		s.templates.Render(w, r, http.StatusOK, "login", authPage{Message: msgUserNotFound})
		return
	}
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("login lookup failed")
		s.templates.Render(w, r, http.StatusOK, "login", authPage{Message: msgLoginError})
		return
	}

	if !auth.VerifyPassword(user.Password, req.Password) {
		s.templates.Render(w, r, http.StatusOK, "login", authPage{Message: msgWrongPassword})
		return
	}

	if _, err := s.sessions.Login(r.Context(), w, user); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("session creation failed")
		s.templates.Render(w, r, http.StatusOK, "login", authPage{Message: msgLoginError})
		return
	}

	logging.Ctx(r.Context()).Info().Str("username", user.Username).Msg("user logged in")
	http.Redirect(w, r, "/discover", http.StatusFound)
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	s.templates.Render(w, r, http.StatusOK, "register", authPage{})
}

// handleRegister creates the account and redirects to the login page;
// registration does not authenticate. All failures, including duplicate
// usernames, come back as a 400 on the register page.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeRequest(r, &req, func(get func(string) string) {
		req.Username = get("username")
		req.Password = get("password")
		req.Email = get("email")
	}); err != nil {
		s.templates.Render(w, r, http.StatusBadRequest, "register", authPage{Message: msgRegistrationError})
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		s.templates.Render(w, r, http.StatusBadRequest, "register", authPage{Message: msgRegistrationError})
		return
	}

	hash, err := auth.HashPassword(req.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("password hashing failed")
		s.templates.Render(w, r, http.StatusBadRequest, "register", authPage{Message: msgRegistrationError})
		return
	}

	if _, err := s.store.CreateUser(r.Context(), req.Username, hash, req.Email); err != nil {
		if !errors.Is(err, database.ErrUsernameTaken) {
			logging.Ctx(r.Context()).Error().Err(err).Msg("user creation failed")
		}
		s.templates.Render(w, r, http.StatusBadRequest, "register", authPage{Message: msgRegistrationError})
		return
	}

	logging.Ctx(r.Context()).Info().Str("username", req.Username).Msg("user registered")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Logout(r.Context(), w, r); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("session deletion failed")
	}
	s.templates.Render(w, r, http.StatusOK, "logout", authPage{Message: msgLoggedOut})
}
