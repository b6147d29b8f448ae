package logic

import (
	"errors"

	"github.com/SafidyRH/test-technique-nexta/internal/logger"
	"github.com/SafidyRH/test-technique-nexta/internal/model"
	"github.com/SafidyRH/test-technique-nexta/internal/repository"
	"github.com/SafidyRH/test-technique-nexta/internal/validation"
	"gorm.io/gorm"
)

// ContributionLogic 贡献记录业务逻辑
type ContributionLogic struct {
	contributionRepo *repository.ContributionRepository
}

// NewContributionLogic 创建贡献记录业务逻辑
func NewContributionLogic(db *gorm.DB) *ContributionLogic {
	return &ContributionLogic{
		contributionRepo: repository.NewContributionRepository(db),
	}
}

// CreateContribution 校验并创建贡献记录
// 状态守卫在存储层事务内完成，检查和写入是原子的
func (c *ContributionLogic) CreateContribution(in *validation.CreateContributionInput) *Result {
	if errs := validation.ValidateContributionCreate(in); errs != nil {
		return FailValidation(errs)
	}

	contribution := &model.Contribution{
		ProjectID:  in.ProjectID,
		DonorName:  in.DonorName,
		DonorEmail: in.DonorEmail,
		Amount:     in.Amount,
		Message:    in.Message,
	}

	if err := c.contributionRepo.CreateForActiveProject(contribution); err != nil {
		switch {
		case errors.Is(err, repository.ErrProjectNotFound):
			return FailWithCode(err.Error(), CodeNotFound)
		case errors.Is(err, repository.ErrProjectNotActive):
			return FailWithCode(err.Error(), CodeProjectNotActive)
		}
		return Fail(err.Error())
	}

	logger.Info("贡献记录创建成功: %s -> 项目 %s", contribution.ID, contribution.ProjectID)
	return Ok(contribution)
}

// GetProjectContributions 获取项目的贡献记录
func (c *ContributionLogic) GetProjectContributions(projectID string) *Result {
	contributions, err := c.contributionRepo.FindByProjectID(projectID)
	if err != nil {
		return Fail(err.Error())
	}
	return Ok(contributions)
}

// GetProjectContributionStats 获取项目的贡献统计
func (c *ContributionLogic) GetProjectContributionStats(projectID string) *Result {
	stats, err := c.contributionRepo.GetStatsByProjectID(projectID)
	if err != nil {
		return Fail(err.Error())
	}
	return Ok(stats)
}

// GetTopContributors 获取项目金额最高的贡献记录
func (c *ContributionLogic) GetTopContributors(projectID string, limit int) *Result {
	contributions, err := c.contributionRepo.FindTopContributors(projectID, limit)
	if err != nil {
		return Fail(err.Error())
	}
	return Ok(contributions)
}

// GetRecentContributions 获取全平台最新贡献记录
func (c *ContributionLogic) GetRecentContributions(limit int) *Result {
	contributions, err := c.contributionRepo.FindRecent(limit)
	if err != nil {
		return Fail(err.Error())
	}
	return Ok(contributions)
}
