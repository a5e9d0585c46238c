package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/response"
	"project-tracker-api/internal/service"
)

type SprintHandler struct {
	sprintService service.SprintService
}

func NewSprintHandler(sprintService service.SprintService) *SprintHandler {
	return &SprintHandler{
		sprintService: sprintService,
	}
}

// CreateSprint godoc
// @Summary      Create a sprint
// @Tags         sprints
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateSprintRequest true "Sprint to create"
// @Success      201 {object} response.SuccessResponse{data=dto.SprintResponse} "Sprint created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Router       /sprints [post]
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	var req dto.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	sprint, err := h.sprintService.CreateSprint(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, sprint)
}

// GetSprint godoc
// @Summary      Get a sprint
// @Tags         sprints
// @Produce      json
// @Param        id path string true "Sprint ID"
// @Success      200 {object} response.SuccessResponse{data=dto.SprintResponse} "Sprint retrieved"
// @Failure      404 {object} response.ErrorResponse "Sprint not found"
// @Router       /sprints/{id} [get]
func (h *SprintHandler) GetSprint(c *gin.Context) {
	sprint, err := h.sprintService.GetSprint(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, sprint)
}

// ListSprints godoc
// @Summary      List sprints
// @Tags         sprints
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.SprintResponse} "Sprints retrieved"
// @Router       /sprints [get]
func (h *SprintHandler) ListSprints(c *gin.Context) {
	sprints, err := h.sprintService.ListSprints(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, sprints)
}

// UpdateSprint godoc
// @Summary      Update a sprint
// @Tags         sprints
// @Accept       json
// @Produce      json
// @Param        id path string true "Sprint ID"
// @Param        request body dto.UpdateSprintRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.SprintResponse} "Sprint updated"
// @Failure      400 {object} response.ErrorResponse "Invalid dates"
// @Failure      404 {object} response.ErrorResponse "Sprint not found"
// @Router       /sprints/{id} [patch]
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	var req dto.UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	sprint, err := h.sprintService.UpdateSprint(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, sprint)
}

// DeleteSprint godoc
// @Summary      Delete a sprint
// @Description  Deletes the sprint; items keep running but lose the association
// @Tags         sprints
// @Produce      json
// @Param        id path string true "Sprint ID"
// @Success      200 {object} response.SuccessResponse "Sprint deleted"
// @Failure      404 {object} response.ErrorResponse "Sprint not found"
// @Router       /sprints/{id} [delete]
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	if err := h.sprintService.DeleteSprint(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
