/*
Package handler provides the HTTP handlers and routing setup for the Whispeer server.

This file implements the read-only user endpoints: the profile projection
and username search.
*/
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"whispeer/internal/app/store"
	"whispeer/internal/pkg/errs"
	"whispeer/internal/pkg/logx"
	"whispeer/internal/pkg/resp"
)

type userResponse struct {
	Username    string   `json:"username"`
	AvatarColor string   `json:"avatarColor"`
	Messages    []string `json:"messages"`
}

type searchResult struct {
	Username string `json:"username"`
}

// HandleGetUser returns the user's profile projection: username, avatar
// color, and message texts only. Pin state and replies are deliberately
// omitted from this view; the feed client renders from texts alone.
func HandleGetUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		u, err := deps.Store.FindByUsername(r.Context(), username)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}

			logx.Error(err, "get_user: store failure", "username", username)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, userResponse{
			Username:    u.Username,
			AvatarColor: u.AvatarColor,
			Messages:    u.MessageTexts(),
		})
	}
}

// HandleSearchUsers returns every user whose name contains the fragment,
// case-insensitively. No match is an empty list, not an error.
func HandleSearchUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fragment := chi.URLParam(r, "fragment")

		usernames, err := deps.Store.SearchByUsername(r.Context(), fragment)
		if err != nil {
			logx.Error(err, "search_users: store failure", "fragment", fragment)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		results := make([]searchResult, 0, len(usernames))
		for _, name := range usernames {
			results = append(results, searchResult{Username: name})
		}

		resp.RespondJSON(w, r, http.StatusOK, results)
	}
}
