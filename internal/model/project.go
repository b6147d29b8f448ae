package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project 众筹项目模型
type Project struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	ImageURL    string `json:"image_url"`

	// 众筹信息
	Goal float64 `json:"goal" gorm:"not null"`

	// 状态
	Status ProjectStatus `json:"status" gorm:"type:varchar(16);default:'active';index"`
}

// TableName 自定义表名
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate 创建前生成UUID并设置默认状态
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = ProjectStatusActive
	}
	return nil
}

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"    // 进行中
	ProjectStatusCompleted ProjectStatus = "completed" // 已完成
	ProjectStatusCancelled ProjectStatus = "cancelled" // 已取消
)

// IsValid 判断状态是否为合法枚举值
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// ProjectWithStats 项目及其统计信息（来自 project_stats 视图，只读）
type ProjectWithStats struct {
	Project
	TotalRaised        float64 `json:"total_raised"`
	TotalContributors  int64   `json:"total_contributors"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsFunded           bool    `json:"is_funded"`
}

// TableName 自定义表名
func (ProjectWithStats) TableName() string {
	return "project_stats"
}

// CalculateProgress 计算完成百分比
// 上限100，保留一位小数；目标为0时返回0
func CalculateProgress(raised, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	progress := math.Round(raised/goal*1000) / 10
	return math.Min(progress, 100)
}
