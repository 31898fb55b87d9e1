package mocks

import (
	"github.com/metinatakli/train-seat-reservation/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatPool struct {
	mock.Mock
}

func (m *MockSeatPool) Book(count int) (domain.Booking, error) {
	args := m.Called(count)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockSeatPool) Reset() {
	m.Called()
}

func (m *MockSeatPool) Snapshot() domain.Snapshot {
	args := m.Called()
	return args.Get(0).(domain.Snapshot)
}

func (m *MockSeatPool) Layout() domain.Layout {
	args := m.Called()
	return args.Get(0).(domain.Layout)
}

func (m *MockSeatPool) MaxPerRequest() int {
	args := m.Called()
	return args.Int(0)
}
