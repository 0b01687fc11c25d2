package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mmcdole/marquee/internal/domain"
)

// GenreCache is a mock of domain.GenreCache
type GenreCache struct {
	mock.Mock
}

func (m *GenreCache) GetGenres() (domain.CachedGenres, bool) {
	args := m.Called()
	return args.Get(0).(domain.CachedGenres), args.Bool(1)
}

func (m *GenreCache) SaveGenres(genres domain.CachedGenres) error {
	return m.Called(genres).Error(0)
}

func (m *GenreCache) InvalidateGenres() {
	m.Called()
}

func (m *GenreCache) Close() error {
	return m.Called().Error(0)
}

var _ domain.GenreCache = (*GenreCache)(nil)
