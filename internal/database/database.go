package database

import (
	"fmt"

	"github.com/SafidyRH/test-technique-nexta/internal/config"
	"github.com/SafidyRH/test-technique-nexta/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// projectStatsView 项目统计视图
// 读侧投影：贡献发生变化后查询自动反映，永远不直接写入
const projectStatsView = `
CREATE OR REPLACE VIEW project_stats AS
SELECT
    p.id,
    p.created_at,
    p.updated_at,
    p.title,
    p.description,
    p.image_url,
    p.goal,
    p.status,
    COALESCE(c.total_raised, 0) AS total_raised,
    COALESCE(c.total_contributors, 0) AS total_contributors,
    CASE
        WHEN p.goal = 0 THEN 0
        ELSE LEAST(ROUND(COALESCE(c.total_raised, 0) / p.goal * 1000) / 10, 100)
    END AS progress_percentage,
    COALESCE(c.total_raised, 0) >= p.goal AS is_funded
FROM projects p
LEFT JOIN (
    SELECT
        project_id,
        SUM(amount) AS total_raised,
        COUNT(DISTINCT donor_name) AS total_contributors
    FROM contributions
    GROUP BY project_id
) c ON c.project_id = p.id
`

func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 自动迁移
	if err := db.AutoMigrate(
		&model.Project{},
		&model.Contribution{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 创建统计视图
	if err := db.Exec(projectStatsView).Error; err != nil {
		return nil, fmt.Errorf("failed to create project_stats view: %w", err)
	}

	return db, nil
}
