package request

import (
	"context"
	"fmt"
	"testing"

	"photoorders/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransitionKindergarten_Matrix(t *testing.T) {
	cases := []struct {
		from    domain.Status
		to      string
		allowed bool
	}{
		{domain.StatusInit, "PROC", true},
		{domain.StatusInit, "CANC", true},
		{domain.StatusInit, "REJC", true},
		{domain.StatusInit, "COMP", true},
		{domain.StatusProc, "COMP", true},
		{domain.StatusProc, "CANC", true},
		{domain.StatusProc, "REJC", true},
		{domain.StatusProc, "INIT", false},
		{domain.StatusInit, "INIT", false},
		{domain.StatusCompleted, "PROC", false},
		{domain.StatusCancelled, "COMP", false},
		{domain.StatusRejected, "PROC", false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_to_%s", tc.from, tc.to), func(t *testing.T) {
			svc, kReqs, _, _, _ := newTestService()
			kReqs.On("GetByID", mock.Anything, int64(1)).
				Return(&domain.KindergartenRequest{ID: 1, Status: tc.from}, nil)
			kReqs.On("UpdateStatus", mock.Anything, int64(1), mock.Anything).Return(nil)

			req, err := svc.TransitionKindergarten(context.Background(), 1, tc.to)
			if tc.allowed {
				assert.NoError(t, err)
				assert.Equal(t, domain.Status(tc.to), req.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				kReqs.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestTransitionService_LowercaseInput(t *testing.T) {
	svc, _, sReqs, _, _ := newTestService()
	sReqs.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.ServiceRequest{ID: 3, Status: domain.StatusInit}, nil)
	sReqs.On("UpdateStatus", mock.Anything, int64(3), domain.StatusProc).Return(nil)

	req, err := svc.TransitionService(context.Background(), 3, "proc")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusProc, req.Status)
}

func TestTransitionService_UnknownStatus(t *testing.T) {
	svc, _, sReqs, _, _ := newTestService()

	_, err := svc.TransitionService(context.Background(), 3, "SHIPPED")
	assert.ErrorIs(t, err, ErrValidation)
	sReqs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCancelKindergarten_InitOnly(t *testing.T) {
	svc, kReqs, _, _, _ := newTestService()
	kReqs.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.KindergartenRequest{ID: 4, UserID: 7, Status: domain.StatusProc}, nil)

	_, err := svc.CancelKindergarten(context.Background(), client, 4)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCancelKindergarten_OwnerInInit(t *testing.T) {
	svc, kReqs, _, _, _ := newTestService()
	kReqs.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.KindergartenRequest{ID: 4, UserID: 7, Status: domain.StatusInit}, nil)
	kReqs.On("UpdateStatus", mock.Anything, int64(4), domain.StatusCancelled).Return(nil)

	req, err := svc.CancelKindergarten(context.Background(), client, 4)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, req.Status)
}

func TestCancelService_WrongOwner(t *testing.T) {
	svc, _, sReqs, _, _ := newTestService()
	sReqs.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.ServiceRequest{ID: 5, UserID: 42, Status: domain.StatusInit}, nil)

	_, err := svc.CancelService(context.Background(), client, 5)
	assert.ErrorIs(t, err, ErrForbidden)
	sReqs.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateKindergartenFees_ShiftsNetByDelta(t *testing.T) {
	svc, kReqs, _, _, _ := newTestService()
	kReqs.On("GetByID", mock.Anything, int64(6)).
		Return(&domain.KindergartenRequest{
			ID: 6, Status: domain.StatusProc,
			AdditionalFees: 10, NetPrice: 120,
		}, nil)
	kReqs.On("UpdateFees", mock.Anything, int64(6), 25.0, 135.0).Return(nil)

	req, err := svc.UpdateKindergartenFees(context.Background(), 6, 25)
	assert.NoError(t, err)
	assert.Equal(t, 25.0, req.AdditionalFees)
	assert.Equal(t, 135.0, req.NetPrice)
	kReqs.AssertExpectations(t)
}

func TestUpdateServiceFees_ClosedRequest(t *testing.T) {
	svc, _, sReqs, _, _ := newTestService()
	sReqs.On("GetByID", mock.Anything, int64(6)).
		Return(&domain.ServiceRequest{ID: 6, Status: domain.StatusCancelled}, nil)

	_, err := svc.UpdateServiceFees(context.Background(), 6, 25)
	assert.ErrorIs(t, err, ErrInvalidState)
	sReqs.AssertNotCalled(t, "UpdateFees", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBulkTransitionKindergarten_FiltersToOpenRequests(t *testing.T) {
	svc, kReqs, _, _, _ := newTestService()
	kReqs.On("FindMutableIDs", mock.Anything, []int64{1, 2, 3}).
		Return([]int64{1, 3}, nil)
	kReqs.On("UpdateStatusBulk", mock.Anything, []int64{1, 3}, domain.StatusCompleted).
		Return(int64(2), nil)

	updated, err := svc.BulkTransitionKindergarten(context.Background(), []int64{1, 2, 3}, "COMP")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), updated)
}

func TestBulkTransitionKindergarten_AllTerminal(t *testing.T) {
	svc, kReqs, _, _, _ := newTestService()
	kReqs.On("FindMutableIDs", mock.Anything, mock.Anything).Return([]int64{}, nil)

	_, err := svc.BulkTransitionKindergarten(context.Background(), []int64{1, 2}, "COMP")
	assert.ErrorIs(t, err, ErrNothingToUpdate)
	kReqs.AssertNotCalled(t, "UpdateStatusBulk", mock.Anything, mock.Anything, mock.Anything)
}

func TestBulkTransitionService_InitRejected(t *testing.T) {
	svc, _, sReqs, _, _ := newTestService()

	_, err := svc.BulkTransitionService(context.Background(), []int64{1}, "INIT")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	sReqs.AssertNotCalled(t, "FindMutableIDs", mock.Anything, mock.Anything)
}

func TestBulkTransitionService_ZeroRowsModified(t *testing.T) {
	svc, _, sReqs, _, _ := newTestService()
	sReqs.On("FindMutableIDs", mock.Anything, mock.Anything).Return([]int64{9}, nil)
	sReqs.On("UpdateStatusBulk", mock.Anything, []int64{9}, domain.StatusRejected).
		Return(int64(0), nil)

	_, err := svc.BulkTransitionService(context.Background(), []int64{9}, "REJC")
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}
