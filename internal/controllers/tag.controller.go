package controllers

import (
	"net/http"
	"strconv"

	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	repo repository.TagRepository
}

func NewTagController(repo repository.TagRepository) *TagController {
	return &TagController{repo: repo}
}

// ListTags godoc
// @Summary List all tags
// @Description Retrieve the full tag reference set, unpaginated
// @Tags tags
// @Produce json
// @Success 200 {object} map[string]interface{} "Tags retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve tags"
// @Router /api/tags [get]
func (tc *TagController) ListTags(c *gin.Context) {
	tags, err := tc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve tags",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tags retrieved successfully",
		"data":    tags,
	})
}

// GetTagByID godoc
// @Summary Get a tag by ID
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} map[string]interface{} "Tag retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid tag ID"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /api/tags/{id} [get]
func (tc *TagController) GetTagByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid tag ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	tag, err := tc.repo.FindByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err, "Tag not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag retrieved successfully",
		"data":    tag,
	})
}
