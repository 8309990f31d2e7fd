// Package discussions serves discussion thread detail and replies.
package discussions

import (
	"net/http"

	discussionstore "github.com/gatherpoint/gatherpoint/internal/app/store/discussions"
	membershipstore "github.com/gatherpoint/gatherpoint/internal/app/store/memberships"
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/gatherpoint/gatherpoint/internal/app/system/httpjson"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves discussion thread endpoints.
type Handler struct {
	Discussions *discussionstore.Store
	Memberships *membershipstore.Store
	Log         *zap.Logger
}

// NewHandler constructs the discussions Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Discussions: discussionstore.New(db),
		Memberships: membershipstore.New(db),
		Log:         logger,
	}
}

// ServeDetail handles GET /discussions/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	discussion, err := h.Discussions.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fault(w, h.Log, "discussions: fetch failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, discussion)
}

// ServeReplies handles GET /discussions/{id}/replies, oldest first.
func (h *Handler) ServeReplies(w http.ResponseWriter, r *http.Request) {
	replies, err := h.Discussions.ListReplies(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fault(w, h.Log, "discussions: reply list failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, replies)
}

type newReplyRequest struct {
	Content       string `json:"content"`
	ParentReplyID string `json:"parentReplyId"`
}

// HandleNewReply handles POST /discussions/{id}/replies. Posting requires
// active membership in the discussion's group.
func (h *Handler) HandleNewReply(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	discussionID := chi.URLParam(r, "id")

	discussion, err := h.Discussions.GetByID(r.Context(), discussionID)
	if err != nil {
		httpjson.Fault(w, h.Log, "discussions: fetch failed", err)
		return
	}

	member, err := h.Memberships.IsMember(r.Context(), user.ID, discussion.GroupID)
	if err != nil {
		httpjson.Fault(w, h.Log, "discussions: membership check failed", err)
		return
	}
	if !member {
		httpjson.Error(w, http.StatusForbidden, "group membership required")
		return
	}

	var req newReplyRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	reply, err := h.Discussions.CreateReply(r.Context(), discussionID, req.Content, user.ID, user.Name, req.ParentReplyID)
	if err != nil {
		httpjson.Fault(w, h.Log, "discussions: reply create failed", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, reply)
}
