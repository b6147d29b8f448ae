package handler

import (
	"net/http"

	"github.com/SafidyRH/test-technique-nexta/internal/logic"
	"github.com/SafidyRH/test-technique-nexta/internal/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContributionHandler struct {
	contributionLogic *logic.ContributionLogic
}

func NewContributionHandler(db *gorm.DB) *ContributionHandler {
	return &ContributionHandler{
		contributionLogic: logic.NewContributionLogic(db),
	}
}

// CreateContribution 创建贡献记录
func (h *ContributionHandler) CreateContribution(c *gin.Context) {
	var input validation.CreateContributionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式无效")
		return
	}

	result := h.contributionLogic.CreateContribution(&input)
	WriteResult(c, http.StatusCreated, result)
}

// GetProjectContributions 获取项目的贡献记录
func (h *ContributionHandler) GetProjectContributions(c *gin.Context) {
	result := h.contributionLogic.GetProjectContributions(c.Param("id"))
	WriteResult(c, http.StatusOK, result)
}

// GetProjectContributionStats 获取项目的贡献统计
func (h *ContributionHandler) GetProjectContributionStats(c *gin.Context) {
	result := h.contributionLogic.GetProjectContributionStats(c.Param("id"))
	WriteResult(c, http.StatusOK, result)
}

// GetTopContributors 获取项目金额最高的贡献记录
func (h *ContributionHandler) GetTopContributors(c *gin.Context) {
	result := h.contributionLogic.GetTopContributors(c.Param("id"), limitQuery(c))
	WriteResult(c, http.StatusOK, result)
}

// GetRecentContributions 获取全平台最新贡献记录
func (h *ContributionHandler) GetRecentContributions(c *gin.Context) {
	result := h.contributionLogic.GetRecentContributions(limitQuery(c))
	WriteResult(c, http.StatusOK, result)
}
