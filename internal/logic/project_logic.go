package logic

import (
	"sync"

	"github.com/SafidyRH/test-technique-nexta/internal/logger"
	"github.com/SafidyRH/test-technique-nexta/internal/model"
	"github.com/SafidyRH/test-technique-nexta/internal/repository"
	"github.com/SafidyRH/test-technique-nexta/internal/validation"
	"gorm.io/gorm"
)

// 分页边界
const (
	DefaultPageSize = 12
	MaxPageSize     = 50
)

// NormalizePage 页码从1开始
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NormalizePageSize 页大小限制在 [1, MaxPageSize]，非法值回退到默认
func NormalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return DefaultPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	projectRepo      *repository.ProjectRepository
	contributionRepo *repository.ContributionRepository
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB) *ProjectLogic {
	return &ProjectLogic{
		projectRepo:      repository.NewProjectRepository(db),
		contributionRepo: repository.NewContributionRepository(db),
	}
}

// GetAllProjects 获取项目列表
func (p *ProjectLogic) GetAllProjects(filters repository.ProjectFilters, sortBy repository.SortBy, sortOrder repository.SortOrder) *Result {
	projects, err := p.projectRepo.FindAll(filters, sortBy, sortOrder)
	if err != nil {
		return Fail(err.Error())
	}
	return Ok(projects)
}

// GetAllProjectsPaginated 分页获取项目列表
func (p *ProjectLogic) GetAllProjectsPaginated(filters repository.ProjectFilters, sortBy repository.SortBy, sortOrder repository.SortOrder, page, pageSize int) *Result {
	page = NormalizePage(page)
	pageSize = NormalizePageSize(pageSize)

	result, err := p.projectRepo.FindAllPaginated(filters, sortBy, sortOrder, page, pageSize)
	if err != nil {
		return Fail(err.Error())
	}
	return Ok(result)
}

// ProjectWithContributions 项目详情和它的贡献记录
type ProjectWithContributions struct {
	Project       *model.ProjectWithStats `json:"project"`
	Contributions []model.Contribution    `json:"contributions"`
}

// GetProjectWithContributions 获取项目详情及全部贡献记录
func (p *ProjectLogic) GetProjectWithContributions(id string) *Result {
	project, err := p.projectRepo.FindByID(id)
	if err != nil {
		return Fail(err.Error())
	}
	if project == nil {
		return FailWithCode("项目不存在", CodeNotFound)
	}

	contributions, err := p.contributionRepo.FindByProjectID(id)
	if err != nil {
		return Fail(err.Error())
	}

	return Ok(&ProjectWithContributions{
		Project:       project,
		Contributions: contributions,
	})
}

// CreateProject 校验并创建项目
func (p *ProjectLogic) CreateProject(in *validation.CreateProjectInput) *Result {
	if errs := validation.ValidateProjectCreate(in); errs != nil {
		return FailValidation(errs)
	}

	project := &model.Project{
		Title:       in.Title,
		Description: in.Description,
		Goal:        in.Goal,
		ImageURL:    in.ImageURL,
	}
	if err := p.projectRepo.Create(project); err != nil {
		return Fail(err.Error())
	}

	logger.Info("项目创建成功: %s", project.ID)
	return Ok(project)
}

// UpdateProject 更新项目
// 先检查存在性再校验入参：不存在的项目不做入参校验
func (p *ProjectLogic) UpdateProject(id string, in *validation.UpdateProjectInput) *Result {
	existing, err := p.projectRepo.FindByIDSimple(id)
	if err != nil {
		return Fail(err.Error())
	}
	if existing == nil {
		return FailWithCode("项目不存在", CodeNotFound)
	}

	if errs := validation.ValidateProjectUpdate(in); errs != nil {
		return FailValidation(errs)
	}

	updates := make(map[string]interface{})
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Goal != nil {
		updates["goal"] = *in.Goal
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}

	project, err := p.projectRepo.Update(id, updates)
	if err != nil {
		return Fail(err.Error())
	}

	return Ok(project)
}

// DeleteProject 删除项目
func (p *ProjectLogic) DeleteProject(id string) *Result {
	existing, err := p.projectRepo.FindByIDSimple(id)
	if err != nil {
		return Fail(err.Error())
	}
	if existing == nil {
		return FailWithCode("项目不存在", CodeNotFound)
	}

	if err := p.projectRepo.Delete(id); err != nil {
		return Fail(err.Error())
	}

	logger.Info("项目已删除: %s", id)
	return Ok(nil)
}

// CanReceiveContributions 项目是否可以接受贡献
// 只有存在且进行中的项目返回true，查询失败一律视为不可接受
func (p *ProjectLogic) CanReceiveContributions(projectID string) bool {
	project, err := p.projectRepo.FindByIDSimple(projectID)
	if err != nil || project == nil {
		return false
	}
	return project.Status == model.ProjectStatusActive
}

// PlatformStats 平台聚合统计
type PlatformStats struct {
	TotalProjects      int64 `json:"total_projects"`
	ActiveProjects     int64 `json:"active_projects"`
	TotalFunded        int64 `json:"total_funded"`
	TotalContributions int64 `json:"total_contributions"`
}

// GetPlatformStats 聚合平台统计信息
// 由多个独立查询组合而成，允许读偏差，仅用于展示
func (p *ProjectLogic) GetPlatformStats() *Result {
	var (
		totalProjects, activeProjects int64
		totalErr, activeErr           error
		wg                            sync.WaitGroup
	)

	// 两个计数相互独立，并发查询
	wg.Add(2)
	go func() {
		defer wg.Done()
		totalProjects, totalErr = p.projectRepo.Count("")
	}()
	go func() {
		defer wg.Done()
		activeProjects, activeErr = p.projectRepo.Count(model.ProjectStatusActive)
	}()
	wg.Wait()

	if totalErr != nil {
		return Fail(totalErr.Error())
	}
	if activeErr != nil {
		return Fail(activeErr.Error())
	}

	projects, err := p.projectRepo.FindAll(repository.ProjectFilters{}, repository.SortByDate, repository.SortOrderDesc)
	if err != nil {
		return Fail(err.Error())
	}

	stats := &PlatformStats{
		TotalProjects:  totalProjects,
		ActiveProjects: activeProjects,
	}
	for _, project := range projects {
		if project.IsFunded {
			stats.TotalFunded++
		}
		stats.TotalContributions += project.TotalContributors
	}

	return Ok(stats)
}

// GetPopularProjects 获取热门项目
func (p *ProjectLogic) GetPopularProjects(limit int) *Result {
	projects, err := p.projectRepo.FindPopular(limit)
	if err != nil {
		return Fail(err.Error())
	}
	return Ok(projects)
}

// GetRecentProjects 获取最新项目
func (p *ProjectLogic) GetRecentProjects(limit int) *Result {
	projects, err := p.projectRepo.FindRecent(limit)
	if err != nil {
		return Fail(err.Error())
	}
	return Ok(projects)
}

// GetAlmostFundedProjects 获取接近达标的项目
func (p *ProjectLogic) GetAlmostFundedProjects(limit int) *Result {
	projects, err := p.projectRepo.FindAlmostFunded(limit)
	if err != nil {
		return Fail(err.Error())
	}
	return Ok(projects)
}
