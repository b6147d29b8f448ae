package repository

import (
	"errors"
	"fmt"

	"github.com/SafidyRH/test-technique-nexta/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrProjectNotFound 被引用的项目不存在
	ErrProjectNotFound = errors.New("项目不存在")
	// ErrProjectNotActive 项目不在进行中，不能接受贡献
	ErrProjectNotActive = errors.New("项目不在进行中，无法接受贡献")
)

// ContributionRepository 贡献记录数据访问层（只增不改）
type ContributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository 创建贡献记录数据访问层
func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

// FindByProjectID 获取项目的全部贡献记录，按时间倒序
func (r *ContributionRepository) FindByProjectID(projectID string) ([]model.Contribution, error) {
	var contributions []model.Contribution
	if err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&contributions).Error; err != nil {
		return nil, fmt.Errorf("获取贡献记录失败: %w", err)
	}

	return contributions, nil
}

// FindTopContributors 获取项目金额最高的贡献记录
// 金额相同时按创建时间先后排序，保证结果稳定
func (r *ContributionRepository) FindTopContributors(projectID string, limit int) ([]model.Contribution, error) {
	var contributions []model.Contribution
	if err := r.db.Where("project_id = ?", projectID).
		Order("amount DESC, created_at ASC").
		Limit(limit).
		Find(&contributions).Error; err != nil {
		return nil, fmt.Errorf("获取top贡献者失败: %w", err)
	}

	return contributions, nil
}

// FindRecent 获取全平台最新的贡献记录
func (r *ContributionRepository) FindRecent(limit int) ([]model.Contribution, error) {
	var contributions []model.Contribution
	if err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&contributions).Error; err != nil {
		return nil, fmt.Errorf("获取最新贡献记录失败: %w", err)
	}

	return contributions, nil
}

// CountByProjectID 统计项目的贡献记录数量
func (r *ContributionRepository) CountByProjectID(projectID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Contribution{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计贡献记录数量失败: %w", err)
	}

	return count, nil
}

// GetStatsByProjectID 聚合项目的贡献统计，没有贡献时返回全零
func (r *ContributionRepository) GetStatsByProjectID(projectID string) (*model.ContributionStats, error) {
	var stats model.ContributionStats
	if err := r.db.Model(&model.Contribution{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(amount), 0) AS total_amount, " +
			"COUNT(*) AS total_count, " +
			"COALESCE(AVG(amount), 0) AS average_amount, " +
			"COALESCE(MAX(amount), 0) AS largest_contribution").
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("获取贡献统计失败: %w", err)
	}

	return &stats, nil
}

// Create 创建贡献记录
func (r *ContributionRepository) Create(contribution *model.Contribution) error {
	if err := r.db.Create(contribution).Error; err != nil {
		return fmt.Errorf("创建贡献记录失败: %w", err)
	}
	return nil
}

// CreateForActiveProject 在同一事务内校验项目状态并创建贡献记录
// 项目行加锁后再检查，避免状态检查和写入之间的竞争
func (r *ContributionRepository) CreateForActiveProject(contribution *model.Contribution) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project model.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&project, "id = ?", contribution.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("获取项目失败: %w", err)
		}

		if project.Status != model.ProjectStatusActive {
			return ErrProjectNotActive
		}

		if err := tx.Create(contribution).Error; err != nil {
			return fmt.Errorf("创建贡献记录失败: %w", err)
		}
		return nil
	})
}
