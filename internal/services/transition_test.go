package services

import (
	"testing"

	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		op      Operation
		from    models.Status
		allowed bool
	}{
		{OpVerify, models.StatusPending, true},
		{OpVerify, models.StatusVerified, false},
		{OpVerify, models.StatusResolved, false},
		{OpRequestClarification, models.StatusPending, true},
		{OpRequestClarification, models.StatusAssigned, false},
		{OpReject, models.StatusPending, true},
		{OpReject, models.StatusVerified, false},
		{OpAssign, models.StatusVerified, true},
		{OpAssign, models.StatusPending, false},
		{OpAssign, models.StatusAssigned, false},
		{OpReassign, models.StatusAssigned, true},
		{OpReassign, models.StatusInProgress, true},
		{OpReassign, models.StatusVerified, false},
		{OpUpdateStatus, models.StatusAssigned, true},
		{OpUpdateStatus, models.StatusPending, false},
		{OpSetDispatch, models.StatusInProgress, true},
		{OpSetDispatch, models.StatusAssigned, false},
		{OpResolve, models.StatusAssigned, true},
		{OpResolve, models.StatusInProgress, true},
		{OpResolve, models.StatusPending, false},
		{OpResolve, models.StatusResolved, false},
		{OpUpdatePriority, models.StatusPending, true},
		{OpUpdatePriority, models.StatusResolved, true},
		{OpTanodFollowUp, models.StatusRejected, true},
		{OpAdminOverride, models.StatusResolved, true},
		{OpAdminOverride, models.StatusRejected, true},
	}

	for _, tt := range tests {
		got := canApply(tt.op, tt.from)
		assert.Equalf(t, tt.allowed, got, "%s from %q", tt.op, tt.from)
	}
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	ops := []Operation{OpVerify, OpRequestClarification, OpReject, OpAssign,
		OpReassign, OpUpdateStatus, OpSetDispatch, OpResolve}
	for _, op := range ops {
		assert.Falsef(t, canApply(op, models.StatusResolved), "%s should not leave Resolved", op)
		assert.Falsef(t, canApply(op, models.StatusRejected), "%s should not leave Rejected", op)
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 1, models.PriorityEmergency.Rank())
	assert.Equal(t, 2, models.PriorityHigh.Rank())
	assert.Equal(t, 3, models.PriorityMedium.Rank())
	assert.Equal(t, 4, models.PriorityLow.Rank())
	assert.Equal(t, 5, models.Priority("").Rank())
}
