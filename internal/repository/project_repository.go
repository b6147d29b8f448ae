package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/SafidyRH/test-technique-nexta/internal/model"
	"gorm.io/gorm"
)

// SortBy 排序键
type SortBy string

// SortOrder 排序方向
type SortOrder string

const (
	SortByDate     SortBy = "date"
	SortByProgress SortBy = "progress"
	SortByAmount   SortBy = "amount"

	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// sortColumns 排序键到视图列的映射
// 显式枚举，避免用户输入直接进入ORDER BY
var sortColumns = map[SortBy]string{
	SortByDate:     "created_at",
	SortByProgress: "progress_percentage",
	SortByAmount:   "total_raised",
}

// Column 返回排序键对应的列名，未知键回退到创建时间
func (s SortBy) Column() string {
	if col, ok := sortColumns[s]; ok {
		return col
	}
	return sortColumns[SortByDate]
}

// Direction 返回排序方向，未知值回退到降序
func (o SortOrder) Direction() string {
	if o == SortOrderAsc {
		return "ASC"
	}
	return "DESC"
}

// ProjectFilters 项目列表过滤条件，零值表示不限制
type ProjectFilters struct {
	Status   model.ProjectStatus
	IsFunded *bool
	MinGoal  float64
	MaxGoal  float64
	Search   string
}

// ProjectRepository 项目数据访问层
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建项目数据访问层
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// statsQuery 在 project_stats 视图上应用过滤条件
func (r *ProjectRepository) statsQuery(filters ProjectFilters) *gorm.DB {
	query := r.db.Model(&model.ProjectWithStats{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.IsFunded != nil {
		query = query.Where("is_funded = ?", *filters.IsFunded)
	}
	if filters.MinGoal > 0 {
		query = query.Where("goal >= ?", filters.MinGoal)
	}
	if filters.MaxGoal > 0 {
		query = query.Where("goal <= ?", filters.MaxGoal)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	return query
}

// FindAll 获取项目列表（含统计信息）
func (r *ProjectRepository) FindAll(filters ProjectFilters, sortBy SortBy, sortOrder SortOrder) ([]model.ProjectWithStats, error) {
	var projects []model.ProjectWithStats

	query := r.statsQuery(filters).
		Order(fmt.Sprintf("%s %s", sortBy.Column(), sortOrder.Direction()))

	if err := query.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取项目列表失败: %w", err)
	}

	return projects, nil
}

// PaginatedProjects 分页的项目列表
type PaginatedProjects struct {
	Data       []model.ProjectWithStats `json:"data"`
	Pagination Pagination               `json:"pagination"`
}

// FindAllPaginated 分页获取项目列表（含统计信息）
// 页码从1开始，超出末页返回空列表而不是错误
func (r *ProjectRepository) FindAllPaginated(filters ProjectFilters, sortBy SortBy, sortOrder SortOrder, page, pageSize int) (*PaginatedProjects, error) {
	var total int64
	if err := r.statsQuery(filters).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("获取项目总数失败: %w", err)
	}

	var projects []model.ProjectWithStats
	offset := (page - 1) * pageSize
	query := r.statsQuery(filters).
		Order(fmt.Sprintf("%s %s", sortBy.Column(), sortOrder.Direction())).
		Offset(offset).
		Limit(pageSize)

	if err := query.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取项目列表失败: %w", err)
	}

	return &PaginatedProjects{
		Data:       projects,
		Pagination: NewPagination(page, pageSize, total),
	}, nil
}

// FindByID 根据ID获取项目（含统计信息），不存在时返回nil而不是错误
func (r *ProjectRepository) FindByID(id string) (*model.ProjectWithStats, error) {
	var project model.ProjectWithStats
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("获取项目详情失败: %w", err)
	}

	return &project, nil
}

// FindByIDSimple 根据ID获取项目基础记录（不含统计信息）
func (r *ProjectRepository) FindByIDSimple(id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("获取项目失败: %w", err)
	}

	return &project, nil
}

// Create 创建项目，状态默认为active
func (r *ProjectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("创建项目失败: %w", err)
	}
	return nil
}

// Update 部分更新项目并刷新更新时间，返回更新后的记录
// 调用方需要先确认项目存在
func (r *ProjectRepository) Update(id string, updates map[string]interface{}) (*model.Project, error) {
	updates["updated_at"] = time.Now()

	if err := r.db.Model(&model.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("更新项目失败: %w", err)
	}

	var project model.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("获取更新后的项目失败: %w", err)
	}

	return &project, nil
}

// Delete 物理删除项目及其全部贡献记录
func (r *ProjectRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.Contribution{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Project{}).Error
	})
	if err != nil {
		return fmt.Errorf("删除项目失败: %w", err)
	}
	return nil
}

// Count 统计项目数量，status为空时统计全部
func (r *ProjectRepository) Count(status model.ProjectStatus) (int64, error) {
	var count int64

	query := r.db.Model(&model.Project{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计项目数量失败: %w", err)
	}

	return count, nil
}

// FindPopular 获取贡献者最多的进行中项目
func (r *ProjectRepository) FindPopular(limit int) ([]model.ProjectWithStats, error) {
	var projects []model.ProjectWithStats
	if err := r.db.Model(&model.ProjectWithStats{}).
		Where("status = ?", model.ProjectStatusActive).
		Order("total_contributors DESC").
		Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取热门项目失败: %w", err)
	}

	return projects, nil
}

// FindRecent 获取最新的进行中项目
func (r *ProjectRepository) FindRecent(limit int) ([]model.ProjectWithStats, error) {
	var projects []model.ProjectWithStats
	if err := r.db.Model(&model.ProjectWithStats{}).
		Where("status = ?", model.ProjectStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取最新项目失败: %w", err)
	}

	return projects, nil
}

// FindAlmostFunded 获取接近目标的进行中项目（进度75%以上未达标）
func (r *ProjectRepository) FindAlmostFunded(limit int) ([]model.ProjectWithStats, error) {
	var projects []model.ProjectWithStats
	if err := r.db.Model(&model.ProjectWithStats{}).
		Where("status = ?", model.ProjectStatusActive).
		Where("progress_percentage >= ? AND progress_percentage < ?", 75, 100).
		Order("progress_percentage DESC").
		Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取接近达标项目失败: %w", err)
	}

	return projects, nil
}
