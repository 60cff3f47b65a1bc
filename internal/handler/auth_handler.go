/*
Package handler provides the HTTP handlers and routing setup for the Whispeer server.

This file implements the login endpoint. Login doubles as signup: a
never-before-seen username creates the account, an existing one is checked
against the stored password.
*/
package handler

import (
	"errors"
	"net/http"

	"whispeer/internal/app/store"
	"whispeer/internal/pkg/errs"
	"whispeer/internal/pkg/logx"
	"whispeer/internal/pkg/req"
	"whispeer/internal/pkg/resp"
)

type LoginInput struct {
	Username    string `json:"username" validate:"required,max=50"`
	Password    string `json:"password" validate:"required,max=100"`
	AvatarColor string `json:"avatarColor" validate:"omitempty,max=30"`
}

type loginResponse struct {
	Message     string `json:"message"`
	Username    string `json:"username"`
	AvatarColor string `json:"avatarColor"`
}

// HandleLogin fetches or creates the user for the submitted credentials.
// An existing user must match the stored password exactly; a differing,
// non-empty avatar color is persisted as part of the login.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if fieldErrs := deps.Val.Struct(input); fieldErrs != nil {
			logx.Warn("login: invalid payload", "fields", fieldNames(fieldErrs))
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		u, err := deps.Store.FindByUsername(r.Context(), input.Username)
		if errors.Is(err, store.ErrUserNotFound) {
			created, createErr := deps.Store.Create(r.Context(), input.Username, input.Password, input.AvatarColor)
			if createErr == nil {
				logx.Info("login: new user created", "username", created.Username)
				resp.RespondJSON(w, r, http.StatusOK, loginResponse{
					Message:     "login successful",
					Username:    created.Username,
					AvatarColor: created.AvatarColor,
				})
				return
			}

			if !errors.Is(createErr, store.ErrUserAlreadyExists) {
				logx.Error(createErr, "login: failed to create user", "username", input.Username)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}

			// Two first logins raced on the same username; the row exists now.
			u, err = deps.Store.FindByUsername(r.Context(), input.Username)
		}

		if err != nil {
			logx.Error(err, "login: store failure", "username", input.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if u.Password != input.Password {
			logx.Warn("login: password mismatch", "username", input.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrWrongPassword))
			return
		}

		if input.AvatarColor != "" && input.AvatarColor != u.AvatarColor {
			u.AvatarColor = input.AvatarColor
			if saveErr := deps.Store.Save(r.Context(), u); saveErr != nil {
				logx.Error(saveErr, "login: failed to save avatar color", "username", u.Username)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}
		}

		resp.RespondJSON(w, r, http.StatusOK, loginResponse{
			Message:     "login successful",
			Username:    u.Username,
			AvatarColor: u.AvatarColor,
		})
	}
}
