package order

import (
	"context"
	"testing"
	"time"

	"photoorders/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderSource struct {
	mock.Mock
}

func (m *MockOrderSource) OrderRequestIDs(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

type MockKindergartenFinder struct {
	mock.Mock
}

func (m *MockKindergartenFinder) FindByRequestIDs(ctx context.Context, requestIDs []string, status domain.Status) ([]domain.KindergartenRequest, error) {
	args := m.Called(ctx, requestIDs, status)
	return args.Get(0).([]domain.KindergartenRequest), args.Error(1)
}

type MockServiceFinder struct {
	mock.Mock
}

func (m *MockServiceFinder) FindByRequestIDs(ctx context.Context, requestIDs []string, status domain.Status) ([]domain.ServiceRequest, error) {
	args := m.Called(ctx, requestIDs, status)
	return args.Get(0).([]domain.ServiceRequest), args.Error(1)
}

func day(n int) time.Time {
	return time.Date(2025, 6, n, 12, 0, 0, 0, time.UTC)
}

func newTestOrders(ids []string, kReqs []domain.KindergartenRequest, sReqs []domain.ServiceRequest) *Service {
	orders := new(MockOrderSource)
	kFinder := new(MockKindergartenFinder)
	sFinder := new(MockServiceFinder)
	orders.On("OrderRequestIDs", mock.Anything, mock.Anything).Return(ids, nil)
	kFinder.On("FindByRequestIDs", mock.Anything, mock.Anything, mock.Anything).Return(kReqs, nil)
	sFinder.On("FindByRequestIDs", mock.Anything, mock.Anything, mock.Anything).Return(sReqs, nil)
	return NewService(orders, kFinder, sFinder)
}

func TestList_MergesNewestFirst(t *testing.T) {
	svc := newTestOrders(
		[]string{"K-AAA111", "S-aaaaaaaaaa", "K-BBB222"},
		[]domain.KindergartenRequest{
			{RequestID: "K-AAA111", Status: domain.StatusInit, NetPrice: 110, CreatedAt: day(1)},
			{RequestID: "K-BBB222", Status: domain.StatusProc, NetPrice: 90, CreatedAt: day(3)},
		},
		[]domain.ServiceRequest{
			{RequestID: "S-aaaaaaaaaa", Status: domain.StatusInit, NetPrice: 725, CreatedAt: day(2)},
		},
	)

	orders, err := svc.List(context.Background(), 7, "", 0, 0)
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, "K-BBB222", orders[0].RequestID)
	assert.Equal(t, "S-aaaaaaaaaa", orders[1].RequestID)
	assert.Equal(t, "K-AAA111", orders[2].RequestID)
	assert.Equal(t, TypeService, orders[1].Type)
}

func TestList_Windowing(t *testing.T) {
	svc := newTestOrders(
		[]string{"K-AAA111", "K-BBB222", "K-CCC333"},
		[]domain.KindergartenRequest{
			{RequestID: "K-AAA111", CreatedAt: day(1)},
			{RequestID: "K-BBB222", CreatedAt: day(2)},
			{RequestID: "K-CCC333", CreatedAt: day(3)},
		},
		[]domain.ServiceRequest{},
	)

	orders, err := svc.List(context.Background(), 7, "", 1, 1)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "K-BBB222", orders[0].RequestID)

	orders, err = svc.List(context.Background(), 7, "", 10, 5)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestList_NoOrders(t *testing.T) {
	orders := new(MockOrderSource)
	orders.On("OrderRequestIDs", mock.Anything, int64(7)).Return([]string{}, nil)
	svc := NewService(orders, new(MockKindergartenFinder), new(MockServiceFinder))

	got, err := svc.List(context.Background(), 7, "", 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_BadStatus(t *testing.T) {
	svc := newTestOrders([]string{}, nil, nil)

	_, err := svc.List(context.Background(), 7, "NOPE", 0, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCount_CombinesFamilies(t *testing.T) {
	svc := newTestOrders(
		[]string{"K-AAA111", "S-aaaaaaaaaa"},
		[]domain.KindergartenRequest{{RequestID: "K-AAA111", CreatedAt: day(1)}},
		[]domain.ServiceRequest{{RequestID: "S-aaaaaaaaaa", CreatedAt: day(2)}},
	)

	count, err := svc.Count(context.Background(), 7, "")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
