// Package groups serves the community group endpoints: browsing, joining
// and leaving, notification preferences, and per-group discussion threads.
package groups

import (
	"context"
	"net/http"

	discussionstore "github.com/gatherpoint/gatherpoint/internal/app/store/discussions"
	groupstore "github.com/gatherpoint/gatherpoint/internal/app/store/groups"
	membershipstore "github.com/gatherpoint/gatherpoint/internal/app/store/memberships"
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/gatherpoint/gatherpoint/internal/app/system/httpjson"
	"github.com/gatherpoint/gatherpoint/internal/app/system/timeouts"
	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves group and membership endpoints.
type Handler struct {
	Groups      *groupstore.Store
	Memberships *membershipstore.Store
	Discussions *discussionstore.Store
	Log         *zap.Logger
}

// NewHandler constructs the groups Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Groups:      groupstore.New(db),
		Memberships: membershipstore.New(db),
		Discussions: discussionstore.New(db),
		Log:         logger,
	}
}

// ServeList handles GET /groups. A store failure degrades to an empty
// list so the client's browse screens never hard-fail.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Groups.List(ctx)
	if err != nil {
		h.Log.Error("groups: list failed", zap.Error(err))
		groups = []models.Group{}
	}
	httpjson.Respond(w, http.StatusOK, groups)
}

// ServeDetail handles GET /groups/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	group, err := h.Groups.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fault(w, h.Log, "groups: fetch failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, group)
}

// ServeJoined handles GET /groups/joined for the signed-in user.
func (h *Handler) ServeJoined(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	groups, err := h.Memberships.JoinedGroups(r.Context(), user.ID)
	if err != nil {
		h.Log.Error("groups: joined list failed", zap.String("user_id", user.ID), zap.Error(err))
		groups = []models.Group{}
	}
	httpjson.Respond(w, http.StatusOK, groups)
}

type newGroupRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	Language    string `json:"language"`
}

// HandleCreate handles POST /groups. The creator is recorded on the group
// but does not become a member until they join.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req newGroupRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	group, err := h.Groups.Create(r.Context(), req.Title, req.Description, req.Image, req.Category, req.Country, req.Language, user.ID)
	if err != nil {
		httpjson.Fault(w, h.Log, "groups: create failed", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, group)
}

// HandleJoin handles POST /groups/{id}/join.
func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	groupID := chi.URLParam(r, "id")

	if _, err := h.Groups.GetByID(r.Context(), groupID); err != nil {
		httpjson.Fault(w, h.Log, "groups: join target fetch failed", err)
		return
	}

	if err := h.Memberships.Join(r.Context(), user.ID, groupID); err != nil {
		httpjson.Fault(w, h.Log, "groups: join failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "joined"})
}

// HandleLeave handles POST /groups/{id}/leave.
func (h *Handler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	if err := h.Memberships.Leave(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		httpjson.Fault(w, h.Log, "groups: leave failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "left"})
}

// membershipResponse reports whether the signed-in user is an active
// member of the group and, when so, the notification preference.
type membershipResponse struct {
	IsMember                  bool `json:"isMember"`
	SubscribedToNotifications bool `json:"subscribedToNotifications"`
}

// ServeMembership handles GET /groups/{id}/membership.
func (h *Handler) ServeMembership(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	m, err := h.Memberships.CheckMembership(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		if faults.IsNotFound(err) {
			httpjson.Respond(w, http.StatusOK, membershipResponse{})
			return
		}
		httpjson.Fault(w, h.Log, "groups: membership check failed", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, membershipResponse{
		IsMember:                  true,
		SubscribedToNotifications: m.SubscribedToNotifications,
	})
}

type notificationsRequest struct {
	Subscribed bool `json:"subscribed"`
}

// HandleNotifications handles PUT /groups/{id}/notifications.
func (h *Handler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req notificationsRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	err := h.Memberships.ToggleNotifications(r.Context(), user.ID, chi.URLParam(r, "id"), req.Subscribed)
	if err != nil {
		httpjson.Fault(w, h.Log, "groups: notification toggle failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]bool{"subscribed": req.Subscribed})
}

// ServeDiscussions handles GET /groups/{id}/discussions.
func (h *Handler) ServeDiscussions(w http.ResponseWriter, r *http.Request) {
	discussions, err := h.Discussions.ListByGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fault(w, h.Log, "groups: discussion list failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, discussions)
}

type newDiscussionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HandleNewDiscussion handles POST /groups/{id}/discussions. Starting a
// thread requires active membership in the group.
func (h *Handler) HandleNewDiscussion(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	groupID := chi.URLParam(r, "id")

	member, err := h.Memberships.IsMember(r.Context(), user.ID, groupID)
	if err != nil {
		httpjson.Fault(w, h.Log, "groups: membership check failed", err)
		return
	}
	if !member {
		httpjson.Error(w, http.StatusForbidden, "group membership required")
		return
	}

	var req newDiscussionRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	discussion, err := h.Discussions.CreateDiscussion(r.Context(), groupID, req.Title, req.Content, user.ID, user.Name)
	if err != nil {
		httpjson.Fault(w, h.Log, "groups: discussion create failed", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, discussion)
}
