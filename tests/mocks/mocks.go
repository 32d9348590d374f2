// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"libreria-backend/domain/catalog"
	"libreria-backend/domain/events"
)

// MockProductRepository mocks ports.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) SetNormalizedTitle(ctx context.Context, id, normalized string) (bool, error) {
	args := m.Called(ctx, id, normalized)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) SetCategoryIDs(ctx context.Context, id string, categoryIDs []string) error {
	args := m.Called(ctx, id, categoryIDs)
	return args.Error(0)
}

// MockCategoryLinkRepository mocks ports.CategoryLinkRepository
type MockCategoryLinkRepository struct {
	mock.Mock
}

func (m *MockCategoryLinkRepository) ListByProduct(ctx context.Context, productID string) ([]catalog.CategoryLink, error) {
	args := m.Called(ctx, productID)
	if links := args.Get(0); links != nil {
		return links.([]catalog.CategoryLink), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryLinkRepository) PutSummaries(ctx context.Context, links []catalog.CategoryLink) error {
	args := m.Called(ctx, links)
	return args.Error(0)
}

func (m *MockCategoryLinkRepository) DeleteByProduct(ctx context.Context, productID string) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

// MockSearchTokenRepository mocks ports.SearchTokenRepository
type MockSearchTokenRepository struct {
	mock.Mock
}

func (m *MockSearchTokenRepository) PutTokens(ctx context.Context, tokens []catalog.SearchToken) error {
	args := m.Called(ctx, tokens)
	return args.Error(0)
}

func (m *MockSearchTokenRepository) DeleteByProduct(ctx context.Context, productID string) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

// MockObjectStore mocks ports.ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) DeleteKeys(ctx context.Context, keys []string) (int, error) {
	args := m.Called(ctx, keys)
	return args.Int(0), args.Error(1)
}

func (m *MockObjectStore) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if keys := args.Get(0); keys != nil {
		return keys.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCleanupQueue mocks ports.CleanupQueue
type MockCleanupQueue struct {
	mock.Mock
}

func (m *MockCleanupQueue) Enqueue(ctx context.Context, job catalog.CleanupJob, delay time.Duration) error {
	args := m.Called(ctx, job, delay)
	return args.Error(0)
}

// MockEventPublisher mocks ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.CatalogEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockSearchEngine mocks ports.SearchEngine
type MockSearchEngine struct {
	mock.Mock
}

func (m *MockSearchEngine) Search(ctx context.Context, term string, from, size int) ([]catalog.ProductFromSearch, error) {
	args := m.Called(ctx, term, from, size)
	if results := args.Get(0); results != nil {
		return results.([]catalog.ProductFromSearch), args.Error(1)
	}
	return nil, args.Error(1)
}
