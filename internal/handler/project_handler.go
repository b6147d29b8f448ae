package handler

import (
	"net/http"
	"strconv"

	"github.com/SafidyRH/test-technique-nexta/internal/logic"
	"github.com/SafidyRH/test-technique-nexta/internal/model"
	"github.com/SafidyRH/test-technique-nexta/internal/repository"
	"github.com/SafidyRH/test-technique-nexta/internal/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultHighlightLimit = 5

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: logic.NewProjectLogic(db),
	}
}

// GetProjects 分页获取项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(logic.DefaultPageSize)))

	filters := repository.ProjectFilters{
		Status: model.ProjectStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	if raw := c.Query("isFunded"); raw != "" {
		if isFunded, err := strconv.ParseBool(raw); err == nil {
			filters.IsFunded = &isFunded
		}
	}
	if raw := c.Query("minGoal"); raw != "" {
		filters.MinGoal, _ = strconv.ParseFloat(raw, 64)
	}
	if raw := c.Query("maxGoal"); raw != "" {
		filters.MaxGoal, _ = strconv.ParseFloat(raw, 64)
	}

	sortBy := repository.SortBy(c.DefaultQuery("sortBy", string(repository.SortByDate)))
	sortOrder := repository.SortOrder(c.DefaultQuery("sortOrder", string(repository.SortOrderDesc)))

	result := h.projectLogic.GetAllProjectsPaginated(filters, sortBy, sortOrder, page, pageSize)
	WriteResult(c, http.StatusOK, result)
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input validation.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式无效")
		return
	}

	result := h.projectLogic.CreateProject(&input)
	WriteResult(c, http.StatusCreated, result)
}

// GetProject 获取项目详情及贡献记录
func (h *ProjectHandler) GetProject(c *gin.Context) {
	result := h.projectLogic.GetProjectWithContributions(c.Param("id"))
	WriteResult(c, http.StatusOK, result)
}

// UpdateProject 部分更新项目
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var input validation.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式无效")
		return
	}

	result := h.projectLogic.UpdateProject(c.Param("id"), &input)
	WriteResult(c, http.StatusOK, result)
}

// DeleteProject 删除项目
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	result := h.projectLogic.DeleteProject(c.Param("id"))
	WriteResult(c, http.StatusOK, result)
}

// GetPlatformStats 获取平台统计信息
func (h *ProjectHandler) GetPlatformStats(c *gin.Context) {
	result := h.projectLogic.GetPlatformStats()
	WriteResult(c, http.StatusOK, result)
}

// GetPopularProjects 获取热门项目
func (h *ProjectHandler) GetPopularProjects(c *gin.Context) {
	result := h.projectLogic.GetPopularProjects(limitQuery(c))
	WriteResult(c, http.StatusOK, result)
}

// GetRecentProjects 获取最新项目
func (h *ProjectHandler) GetRecentProjects(c *gin.Context) {
	result := h.projectLogic.GetRecentProjects(limitQuery(c))
	WriteResult(c, http.StatusOK, result)
}

// GetAlmostFundedProjects 获取接近达标的项目
func (h *ProjectHandler) GetAlmostFundedProjects(c *gin.Context) {
	result := h.projectLogic.GetAlmostFundedProjects(limitQuery(c))
	WriteResult(c, http.StatusOK, result)
}

// limitQuery 解析limit参数，限制在 [1, MaxPageSize]
func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHighlightLimit)))
	if err != nil || limit < 1 {
		return defaultHighlightLimit
	}
	if limit > logic.MaxPageSize {
		return logic.MaxPageSize
	}
	return limit
}
