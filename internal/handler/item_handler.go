package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/response"
	"project-tracker-api/internal/service"
)

type ItemHandler struct {
	itemService service.ItemService
}

func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// CreateItem godoc
// @Summary      Create a work item
// @Description  Creates a new item at the bottom of the todo column
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateItemRequest true "Item to create"
// @Success      201 {object} response.SuccessResponse{data=dto.ItemResponse} "Item created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Sprint not found"
// @Router       /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, item)
}

// GetItem godoc
// @Summary      Get a work item
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ItemResponse} "Item retrieved"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Router       /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	item, err := h.itemService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, item)
}

// ListItems godoc
// @Summary      List work items
// @Description  Lists items in board order, optionally filtered by
// @Description  sprint, status, type or assignee name
// @Tags         items
// @Produce      json
// @Param        sprintId query string false "Sprint ID"
// @Param        status query string false "Column status" Enums(todo, inProgress, review, done)
// @Param        type query string false "Item type" Enums(task, story, bug, epic)
// @Param        assignee query string false "Assignee name"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ItemResponse} "Items retrieved"
// @Failure      400 {object} response.ErrorResponse "Invalid filter"
// @Router       /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	filters := &repository.ItemFilters{}

	if v := c.Query("sprintId"); v != "" {
		filters.SprintID = &v
	}
	if v := c.Query("status"); v != "" {
		status := domain.Status(v)
		if !status.Valid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeInvalidColumn, "Unknown status filter")
			return
		}
		filters.Status = &status
	}
	if v := c.Query("type"); v != "" {
		itemType := domain.ItemType(v)
		if !itemType.Valid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown type filter")
			return
		}
		filters.Type = &itemType
	}
	if v := c.Query("assignee"); v != "" {
		filters.Assignee = &v
	}

	items, err := h.itemService.ListItems(c.Request.Context(), filters)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, items)
}

// UpdateItem godoc
// @Summary      Update a work item
// @Description  Applies a partial update; omitted fields are unchanged
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID"
// @Param        request body dto.UpdateItemRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.ItemResponse} "Item updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Router       /items/{id} [patch]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, item)
}

// CompleteItem godoc
// @Summary      Complete a work item
// @Description  Records actual hours when given and moves the item to
// @Description  the bottom of the done column
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID"
// @Param        request body dto.CompleteItemRequest false "Hours worked"
// @Success      200 {object} response.SuccessResponse{data=dto.MoveItemResponse} "Item completed"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Failure      502 {object} response.ErrorResponse "Move could not be confirmed"
// @Router       /items/{id}/complete [post]
func (h *ItemHandler) CompleteItem(c *gin.Context) {
	var req dto.CompleteItemRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
			return
		}
	}

	result, err := h.itemService.CompleteItem(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteItem godoc
// @Summary      Delete a work item
// @Description  Removes the item and its comment thread
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} response.SuccessResponse "Item deleted"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Router       /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	if err := h.itemService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
