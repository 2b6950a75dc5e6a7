// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

// Package mocks provides testify mocks for the game package interfaces.
// Hand-maintained so `go test` stays hermetic without codegen.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/wordfall/wordfall/internal/game"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockResultRepository is a mock implementation of game.ResultRepository.
type MockResultRepository struct {
	mock.Mock
}

// NewMockResultRepository creates a MockResultRepository whose expectations
// are asserted during test cleanup.
func NewMockResultRepository(t testingT) *MockResultRepository {
	m := &MockResultRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockResultRepository) Create(ctx context.Context, userID int64, score, wordLength int, hardMode bool) (*game.GameResult, error) {
	args := m.Called(ctx, userID, score, wordLength, hardMode)
	result, _ := args.Get(0).(*game.GameResult)
	return result, args.Error(1)
}

func (m *MockResultRepository) ListByUser(ctx context.Context, userID int64) ([]*game.GameResult, error) {
	args := m.Called(ctx, userID)
	results, _ := args.Get(0).([]*game.GameResult)
	return results, args.Error(1)
}

func (m *MockResultRepository) TotalsSince(ctx context.Context, since *time.Time) ([]game.UserTotal, error) {
	args := m.Called(ctx, since)
	totals, _ := args.Get(0).([]game.UserTotal)
	return totals, args.Error(1)
}

// Compile-time interface check.
var _ game.ResultRepository = (*MockResultRepository)(nil)
