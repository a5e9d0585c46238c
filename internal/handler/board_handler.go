package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/client"
	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/response"
	"project-tracker-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// GetBoard godoc
// @Summary      Get the board
// @Description  Returns all four columns with their items in display order
// @Tags         board
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "Board retrieved"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, err := h.boardService.GetBoard(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, board)
}

// MoveItem godoc
// @Summary      Move an item
// @Description  Applies a drag gesture: the item moves to the target column
// @Description  at the target index (clamped into range). The move is applied
// @Description  optimistically and rolled back if the store rejects it.
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID"
// @Param        request body dto.MoveItemRequest true "Move gesture"
// @Success      200 {object} response.SuccessResponse{data=dto.MoveItemResponse} "Move confirmed"
// @Failure      400 {object} response.ErrorResponse "Unknown target column"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Failure      502 {object} response.ErrorResponse "Store rejected the move"
// @Router       /board/items/{id}/move [post]
func (h *BoardHandler) MoveItem(c *gin.Context) {
	itemID := c.Param("id")

	var req dto.MoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.boardService.MoveItem(c.Request.Context(), itemID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// GetComments godoc
// @Summary      Get an item's comment thread
// @Description  Returns the item's comments in append order
// @Tags         comments
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse} "Comments retrieved"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Router       /items/{id}/comments [get]
func (h *BoardHandler) GetComments(c *gin.Context) {
	itemID := c.Param("id")

	comments, err := h.boardService.GetComments(c.Request.Context(), itemID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// AddComment godoc
// @Summary      Append a comment
// @Description  Appends a comment to the item's thread. Threads are
// @Description  append-only; there is no edit or delete.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID"
// @Param        request body dto.CreateCommentRequest true "Comment body"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "Comment appended"
// @Failure      400 {object} response.ErrorResponse "Empty content"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Failure      502 {object} response.ErrorResponse "Store rejected the comment"
// @Router       /items/{id}/comments [post]
func (h *BoardHandler) AddComment(c *gin.Context) {
	itemID := c.Param("id")

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	author := authorFromContext(c)
	comment, err := h.boardService.AddComment(c.Request.Context(), itemID, author, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, comment)
}

// authorFromContext builds the comment author snapshot from the
// authenticated user stored by the auth middleware.
func authorFromContext(c *gin.Context) domain.Assignee {
	author := domain.Assignee{Name: "Unknown"}
	if name, ok := c.Get("user_name"); ok {
		if s, ok := name.(string); ok && s != "" {
			author.Name = s
		}
	}
	if author.Name != "Unknown" {
		author.Initials = client.InitialsFromName(author.Name)
	}
	return author
}
