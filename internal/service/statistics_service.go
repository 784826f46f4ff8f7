package service

import (
	"fmt"

	"github.com/mautops/compose-gin/internal/model"
	"gorm.io/gorm"
)

// StatisticsService 统计服务接口
type StatisticsService interface {
	GetDocumentStatistics() (*DocumentStatistics, error)
	GetDocumentStatisticsByTime() ([]*DocumentStatisticsByTime, error)
	GetActionStatistics() ([]*ActionStatistics, error)
}

// DocumentStatistics 文档总体统计
type DocumentStatistics struct {
	TotalDocuments int64   // 文档数（去重后）
	TotalVersions  int64   // 版本总数
	AvgVersions    float64 // 平均每个文档的版本数
}

// DocumentStatisticsByTime 按时间统计
type DocumentStatisticsByTime struct {
	Date  string
	Count int64
}

// ActionStatistics 按操作统计（来自审计日志）
type ActionStatistics struct {
	Action string
	Count  int64
}

// statisticsService 统计服务实现
type statisticsService struct {
	db *gorm.DB
}

// NewStatisticsService 创建统计服务
func NewStatisticsService(db *gorm.DB) StatisticsService {
	return &statisticsService{db: db}
}

// GetDocumentStatistics 获取文档总体统计
func (s *statisticsService) GetDocumentStatistics() (*DocumentStatistics, error) {
	var totalVersions int64
	if err := s.db.Model(&model.DocumentModel{}).Count(&totalVersions).Error; err != nil {
		return nil, fmt.Errorf("failed to count document versions: %w", err)
	}

	var totalDocuments int64
	if err := s.db.Model(&model.DocumentModel{}).
		Distinct("id").
		Count(&totalDocuments).Error; err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	avg := 0.0
	if totalDocuments > 0 {
		avg = float64(totalVersions) / float64(totalDocuments)
	}

	return &DocumentStatistics{
		TotalDocuments: totalDocuments,
		TotalVersions:  totalVersions,
		AvgVersions:    avg,
	}, nil
}

// GetDocumentStatisticsByTime 按创建日期统计文档
func (s *statisticsService) GetDocumentStatisticsByTime() ([]*DocumentStatisticsByTime, error) {
	var results []struct {
		Date  string
		Count int64
	}

	err := s.db.Model(&model.DocumentModel{}).
		Select("DATE(created_at) as date, COUNT(*) as count").
		Group("DATE(created_at)").
		Order("date DESC").
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get document statistics by time: %w", err)
	}

	stats := make([]*DocumentStatisticsByTime, 0, len(results))
	for _, r := range results {
		stats = append(stats, &DocumentStatisticsByTime{
			Date:  r.Date,
			Count: r.Count,
		})
	}

	return stats, nil
}

// GetActionStatistics 按操作类型统计审计日志
func (s *statisticsService) GetActionStatistics() ([]*ActionStatistics, error) {
	var results []struct {
		Action string
		Count  int64
	}

	err := s.db.Model(&model.AuditLogModel{}).
		Select("action, COUNT(*) as count").
		Group("action").
		Order("count DESC").
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get action statistics: %w", err)
	}

	stats := make([]*ActionStatistics, 0, len(results))
	for _, r := range results {
		stats = append(stats, &ActionStatistics{
			Action: r.Action,
			Count:  r.Count,
		})
	}

	return stats, nil
}
