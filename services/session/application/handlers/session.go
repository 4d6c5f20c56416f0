package handlers

import (
	"context"
	"net/http"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/pkg/httpx"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/notice"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	"github.com/ghuser/backoffice/pkg/viewmodel"
)

// Domain labels session notices.
const Domain = "session"

// MessageBadCredentials is surfaced when the backend rejects a login.
const MessageBadCredentials = "Invalid username or password."

// Authenticator exchanges credentials for a backend token.
type Authenticator interface {
	Login(ctx context.Context, creds gateway.Credentials) (gateway.Response[string], error)
}

// Resolver finds the caller's workspace.
type Resolver func(r *http.Request) (*app.Workspace, error)

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	errhttp.Classification
	LoggedIn bool `json:"loggedIn"`
} // @name LoginResponse

// NoticeResponse is returned by GET /notice.
type NoticeResponse struct {
	Present bool           `json:"present"`
	Notice  *notice.Notice `json:"notice,omitempty"`
} // @name NoticeResponse

// ShowDetailsRequest is the request body for POST /details.
type ShowDetailsRequest struct {
	Kind viewmodel.Kind `json:"kind" validate:"required" example:"product"`
	ID   entity.ID      `json:"id,omitempty" example:"12"`
} // @name ShowDetailsRequest

// SessionHandler serves login, logout and the per-workspace view state that
// is not owned by a single domain.
type SessionHandler struct {
	auth    Authenticator
	resolve Resolver
	forget  func(*app.Workspace)
	log     logger.Logger
}

// NewSessionHandler returns a SessionHandler. forget, when non-nil, runs after
// logout so the workspace's fetched state is dropped with the token.
func NewSessionHandler(auth Authenticator, resolve Resolver, forget func(*app.Workspace), log logger.Logger) *SessionHandler {
	return &SessionHandler{auth: auth, resolve: resolve, forget: forget, log: log}
}

func (h *SessionHandler) workspace(w http.ResponseWriter, r *http.Request) (*app.Workspace, bool) {
	ws, err := h.resolve(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return nil, false
	}
	return ws, true
}

// Login posts the credentials to the backend and stores the returned token
// on the workspace.
//
//	@Summary		Log in
//	@Description	Exchanges credentials for a backend token held by the session workspace
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gateway.Credentials	true	"Backend credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	LoginResponse
//	@Failure		422		{object}	entityhttp.ErrorResponse
//	@Failure		502		{object}	LoginResponse
//	@Router			/auth/login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	creds, ok := pkgvalidator.ValidateRequest[gateway.Credentials](w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	resp, err := h.auth.Login(ctx, *creds)
	c := errhttp.Classify(resp.Status, resp.StatusText)
	if err != nil {
		c = errhttp.ClassifyError(err)
	}
	if c.OK() {
		if err := ws.Tokens.Login(ctx, resp.Data); err != nil {
			h.log.ErrorContext(ctx, "failed to store token", "error", err)
			c = errhttp.ClassifyError(err)
		}
	}

	if !c.OK() {
		h.log.WarnContext(ctx, "login failed", "status", c.Status, "outcome", c.Outcome)
		n := notice.Notice{Domain: Domain, Outcome: c.Outcome.String(), Status: c.Status, Message: errhttp.MessageGeneric}
		if c.Outcome != errhttp.ServerError {
			n.Message = MessageBadCredentials
		}
		ws.Banner.Notify(ctx, n)
		httpx.JSON(w, errhttp.StatusFor(c.Outcome), LoginResponse{Classification: c})
		return
	}

	ws.Banner.Clear()
	ws.Details.Hide()
	h.log.InfoContext(ctx, "logged in")
	httpx.JSON(w, http.StatusOK, LoginResponse{Classification: c, LoggedIn: true})
}

// Logout drops the workspace token.
//
//	@Summary	Log out
//	@Tags		session
//	@Success	204
//	@Failure	401	{object}	entityhttp.ErrorResponse
//	@Router		/auth/logout [post]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	if err := ws.Tokens.Logout(r.Context()); err != nil {
		h.log.ErrorContext(r.Context(), "failed to drop token", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	if h.forget != nil {
		h.forget(ws)
	}
	httpx.NoContent(w)
}

// Notice returns the last surfaced notice.
//
//	@Summary	Current notice
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	NoticeResponse
//	@Router		/notice [get]
func (h *SessionHandler) Notice(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	n, present := ws.Banner.Current()
	resp := NoticeResponse{Present: present}
	if present {
		resp.Notice = &n
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// DismissNotice clears the surfaced notice.
//
//	@Summary	Dismiss notice
//	@Tags		session
//	@Success	204
//	@Router		/notice [delete]
func (h *SessionHandler) DismissNotice(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	ws.Banner.Clear()
	httpx.NoContent(w)
}

// Details returns the details pane state.
//
//	@Summary	Details pane
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	viewmodel.Panel
//	@Router		/details [get]
func (h *SessionHandler) Details(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, ws.Details.Current())
}

// ShowDetails opens the details pane on a record, or on a new draft when id
// is empty.
//
//	@Summary	Open details pane
//	@Tags		session
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ShowDetailsRequest	true	"Record to show"
//	@Success	200		{object}	viewmodel.Panel
//	@Failure	422		{object}	entityhttp.ErrorResponse
//	@Router		/details [post]
func (h *SessionHandler) ShowDetails(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ShowDetailsRequest](w, r)
	if !ok {
		return
	}
	if !req.Kind.Valid() {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": map[string]string{"kind": "Unknown kind"},
		})
		return
	}
	ws.Details.Show(req.Kind, req.ID)
	httpx.JSON(w, http.StatusOK, ws.Details.Current())
}

// HideDetails closes the details pane.
//
//	@Summary	Close details pane
//	@Tags		session
//	@Success	204
//	@Router		/details [delete]
func (h *SessionHandler) HideDetails(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	ws.Details.Hide()
	httpx.NoContent(w)
}
