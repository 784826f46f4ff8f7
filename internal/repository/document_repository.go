package repository

import (
	"github.com/mautops/compose-gin/internal/model"
	"gorm.io/gorm"
)

// DocumentRepository 文档仓储接口
type DocumentRepository interface {
	Save(document *model.DocumentModel) error
	FindByID(id string, version int) (*model.DocumentModel, error)
	FindAll() ([]*model.DocumentModel, error)
	Delete(id string) error
	DeleteVersion(id string, version int) error
	ListVersions(id string) ([]int, error)
}

// documentRepository 文档仓储实现
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository 创建文档仓储
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Save 保存文档
func (r *documentRepository) Save(document *model.DocumentModel) error {
	return r.db.Save(document).Error
}

// FindByID 根据 ID 查找文档
// version 为 0 时返回最新版本
func (r *documentRepository) FindByID(id string, version int) (*model.DocumentModel, error) {
	var document model.DocumentModel
	query := r.db.Where("id = ?", id)

	if version > 0 {
		query = query.Where("version = ?", version)
	} else {
		// 获取最新版本
		query = query.Order("version DESC").Limit(1)
	}

	if err := query.First(&document).Error; err != nil {
		return nil, err
	}

	return &document, nil
}

// FindAll 查找所有文档
func (r *documentRepository) FindAll() ([]*model.DocumentModel, error) {
	var documents []*model.DocumentModel
	err := r.db.Order("created_at DESC").Find(&documents).Error
	return documents, err
}

// Delete 删除文档的所有版本
func (r *documentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.DocumentModel{}).Error
}

// DeleteVersion 删除文档的指定版本
func (r *documentRepository) DeleteVersion(id string, version int) error {
	return r.db.Where("id = ? AND version = ?", id, version).Delete(&model.DocumentModel{}).Error
}

// ListVersions 列出文档的所有版本号
func (r *documentRepository) ListVersions(id string) ([]int, error) {
	var versions []int
	err := r.db.Model(&model.DocumentModel{}).
		Where("id = ?", id).
		Order("version ASC").
		Pluck("version", &versions).Error
	return versions, err
}
