package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contribution 贡献记录，创建后不可修改
type Contribution struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`

	ProjectID  string  `json:"project_id" gorm:"type:uuid;not null;index"`
	DonorName  string  `json:"donor_name" gorm:"not null"`
	DonorEmail string  `json:"donor_email"`
	Amount     float64 `json:"amount" gorm:"not null"`
	Message    string  `json:"message" gorm:"type:text"`
}

// TableName 自定义表名
func (Contribution) TableName() string {
	return "contributions"
}

// BeforeCreate 创建前生成UUID
func (c *Contribution) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ContributionStats 单个项目的贡献统计
type ContributionStats struct {
	TotalAmount         float64 `json:"total_amount"`
	TotalCount          int64   `json:"total_count"`
	AverageAmount       float64 `json:"average_amount"`
	LargestContribution float64 `json:"largest_contribution"`
}
