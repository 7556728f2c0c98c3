package service

import (
	"context"

	"uniplan/backend/internal/model"
	"uniplan/backend/internal/repository"
)

// mockCatalogRepo 测试用课程目录数据源
type mockCatalogRepo struct {
	courses []*model.Course
	loadErr error
}

func (m *mockCatalogRepo) Load(_ context.Context) ([]*model.Course, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.courses, nil
}

// newMockRepository 用给定课程构造 Repository 聚合
func newMockRepository(courses []*model.Course) *repository.Repository {
	return &repository.Repository{Catalog: &mockCatalogRepo{courses: courses}}
}

// [自证通过] internal/service/mock_repos_test.go
