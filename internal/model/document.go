package model

import (
	"errors"
	"time"
)

// DocumentModel 文档数据模型
type DocumentModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)"`
	Version     int       `gorm:"primaryKey;type:int;not null;default:1"` // 主键组合 (id, version)
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Data        []byte    `gorm:"type:jsonb;not null"` // 序列化后的 Document 对象
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	CreatedBy   string    `gorm:"type:varchar(64)"` // 创建人 ID
	UpdatedBy   string    `gorm:"type:varchar(64)"` // 更新人 ID
}

// TableName 指定表名
func (DocumentModel) TableName() string {
	return "documents"
}

// Validate 验证文档模型
func (dm *DocumentModel) Validate() error {
	if dm.ID == "" {
		return errors.New("document ID is required")
	}
	if dm.Name == "" {
		return errors.New("document name is required")
	}
	if len(dm.Data) == 0 {
		return errors.New("document data is required")
	}
	return nil
}
