/*
Package handler provides the HTTP handlers and routing setup for the Whispeer server.

This file implements the message mutations: anonymous send, positional
delete, pin toggle, and reply. Every mutation is one fetch-mutate-save
cycle against the user's whole document; nothing is persisted when the
addressed index is out of range.
*/
package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"whispeer/internal/app/store"
	"whispeer/internal/app/user"
	"whispeer/internal/pkg/errs"
	"whispeer/internal/pkg/logx"
	"whispeer/internal/pkg/req"
	"whispeer/internal/pkg/resp"
)

type SendMessageInput struct {
	TargetUsername string `json:"targetUsername" validate:"required,max=50"`
	Message        string `json:"message" validate:"max=2000"`
}

type ReplyInput struct {
	Username     string `json:"username" validate:"required,max=50"`
	MessageIndex int    `json:"messageIndex"`
	Reply        string `json:"reply" validate:"max=2000"`
}

type pinResponse struct {
	Message  string `json:"message"`
	IsPinned bool   `json:"isPinned"`
}

// HandleSendMessage appends an anonymous message to the target user's feed.
// The sender identity is never recorded.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SendMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if fieldErrs := deps.Val.Struct(input); fieldErrs != nil {
			logx.Warn("send_message: invalid payload", "fields", fieldNames(fieldErrs))
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if strings.TrimSpace(input.Message) == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageEmpty))
			return
		}

		u, err := deps.Store.FindByUsername(r.Context(), input.TargetUsername)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}

			logx.Error(err, "send_message: store failure", "target", input.TargetUsername)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		u.AppendMessage(input.Message, time.Now().UTC())

		if err := deps.Store.Save(r.Context(), u); err != nil {
			logx.Error(err, "send_message: failed to save", "target", u.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondMessage(w, r, "message sent")
	}
}

// HandleDeleteMessage removes the message at the addressed position.
// Later messages shift down one index, so clients must not cache indices
// across a delete.
func HandleDeleteMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		idx, ok := parseIndex(chi.URLParam(r, "index"))
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageIndexInvalid))
			return
		}

		u, err := fetchUser(deps, w, r, username, "delete_message")
		if err != nil {
			return
		}

		if err := u.RemoveMessage(idx); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageIndexInvalid))
			return
		}

		if err := deps.Store.Save(r.Context(), u); err != nil {
			logx.Error(err, "delete_message: failed to save", "username", u.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondMessage(w, r, "message deleted")
	}
}

// HandleTogglePin flips the pin flag on the addressed message and returns
// the new state. Stored order is untouched.
func HandleTogglePin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		idx, ok := parseIndex(chi.URLParam(r, "index"))
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageIndexInvalid))
			return
		}

		u, err := fetchUser(deps, w, r, username, "toggle_pin")
		if err != nil {
			return
		}

		pinned, err := u.TogglePin(idx)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageIndexInvalid))
			return
		}

		if err := deps.Store.Save(r.Context(), u); err != nil {
			logx.Error(err, "toggle_pin: failed to save", "username", u.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, pinResponse{
			Message:  "pin status updated",
			IsPinned: pinned,
		})
	}
}

// HandleAddReply appends a reply to the addressed message.
func HandleAddReply(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ReplyInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if fieldErrs := deps.Val.Struct(input); fieldErrs != nil {
			logx.Warn("add_reply: invalid payload", "fields", fieldNames(fieldErrs))
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if strings.TrimSpace(input.Reply) == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageEmpty))
			return
		}

		u, err := fetchUser(deps, w, r, input.Username, "add_reply")
		if err != nil {
			return
		}

		if err := u.AppendReply(input.MessageIndex, input.Reply, time.Now().UTC()); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageIndexInvalid))
			return
		}

		if err := deps.Store.Save(r.Context(), u); err != nil {
			logx.Error(err, "add_reply: failed to save", "username", u.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondMessage(w, r, "reply added")
	}
}

// fetchUser loads the aggregate and writes the 404/500 response itself on
// failure. Callers bail out when the returned error is non-nil.
func fetchUser(deps *AppDeps, w http.ResponseWriter, r *http.Request, username, op string) (*user.User, error) {
	u, err := deps.Store.FindByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return nil, err
		}

		logx.Error(err, op+": store failure", "username", username)
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
		return nil, err
	}

	return u, nil
}
