package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AlexHopeIT/notes-servise-test/internal/domain"
	"github.com/AlexHopeIT/notes-servise-test/internal/metrics"
	"github.com/gin-gonic/gin"
)

type noteUsecaser interface {
	CreateNote(ctx context.Context, ownerID int64, title, content string) (*domain.Note, error)
	ListNotes(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Note, error)
}

type NoteHandler struct {
	noteUsecase noteUsecaser
	logger      *slog.Logger
}

func NewNoteHandler(noteUsecase noteUsecaser, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
		logger:      logger.With("component", "note_handler"),
	}
}

type createNoteRequest struct {
	Title   string `json:"title"   binding:"required"`
	Content string `json:"content" binding:"required"`
}

type noteResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	OwnerID int64  `json:"owner_id"`
}

// Create handles POST /notes/. Requires a resolved user in the gin context.
func (h *NoteHandler) Create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.GetInt64("userID")

	note, err := h.noteUsecase.CreateNote(c.Request.Context(), ownerID, req.Title, req.Content)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create note", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.NotesCreatedTotal.Inc()
	c.JSON(http.StatusOK, toNoteResponse(note))
}

// List handles GET /notes/?skip=&limit= for the authenticated user.
func (h *NoteHandler) List(c *gin.Context) {
	h.list(c, c.GetInt64("userID"))
}

// ListByUser handles GET /users/:user_id/notes/. The route is served
// without auth, replicating the source API's asymmetry; see DESIGN.md.
func (h *NoteHandler) ListByUser(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be an integer"})
		return
	}
	h.list(c, ownerID)
}

func (h *NoteHandler) list(c *gin.Context, ownerID int64) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be an integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	notes, err := h.noteUsecase.ListNotes(c.Request.Context(), ownerID, skip, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPagination) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidPagination})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "list notes", "owner_id", ownerID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toNoteResponse(n))
	}
	c.JSON(http.StatusOK, resp)
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		OwnerID: n.OwnerID,
	}
}
