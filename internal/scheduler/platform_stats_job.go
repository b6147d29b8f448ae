package scheduler

import (
	"time"

	"github.com/SafidyRH/test-technique-nexta/internal/config"
	"github.com/SafidyRH/test-technique-nexta/internal/logger"
	"github.com/SafidyRH/test-technique-nexta/internal/logic"
	"github.com/SafidyRH/test-technique-nexta/internal/model"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// PlatformStatsJob 平台统计上报任务
// 定期把平台聚合数据写入日志，只读不改，方便运营观察
type PlatformStatsJob struct {
	db           *gorm.DB
	config       *config.Config
	projectLogic *logic.ProjectLogic
}

// NewPlatformStatsJob 创建平台统计上报任务
func NewPlatformStatsJob(db *gorm.DB, cfg *config.Config) *PlatformStatsJob {
	return &PlatformStatsJob{
		db:           db,
		config:       cfg,
		projectLogic: logic.NewProjectLogic(db),
	}
}

// GetName 获取任务名称
func (j *PlatformStatsJob) GetName() string {
	return "platform_stats_reporter"
}

// GetSchedule 获取调度配置
func (j *PlatformStatsJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *PlatformStatsJob) Execute() {
	result := j.projectLogic.GetPlatformStats()
	if !result.Success {
		logger.Error("Failed to collect platform stats: %s", result.Error.Message)
		return
	}

	stats, ok := result.Data.(*logic.PlatformStats)
	if !ok {
		return
	}

	// 已达标但仍为active的项目数量
	// 状态不会自动流转，这个数字暴露出来供人工处理
	var fundedButActive int64
	if err := j.db.Model(&model.ProjectWithStats{}).
		Where("status = ? AND is_funded = ?", model.ProjectStatusActive, true).
		Count(&fundedButActive).Error; err != nil {
		logger.Error("Failed to count funded-but-active projects: %v", err)
	}

	logger.Info("平台统计: 项目总数=%d 进行中=%d 已达标=%d 贡献人次=%d 达标未结项=%d",
		stats.TotalProjects, stats.ActiveProjects, stats.TotalFunded,
		stats.TotalContributions, fundedButActive)
}
