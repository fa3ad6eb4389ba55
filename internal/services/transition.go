package services

import "github.com/LunaaVerse/ttm-sub002/internal/models"

// Operation names a lifecycle mutation. Both the admin and employee surfaces
// go through the same table; there is no per-surface dispatch.
type Operation string

const (
	OpVerify               Operation = "verify"
	OpRequestClarification Operation = "request_clarification"
	OpReject               Operation = "reject"
	OpAssign               Operation = "assign"
	OpReassign             Operation = "reassign"
	OpUpdateStatus         Operation = "update_status"
	OpSetDispatch          Operation = "set_dispatch"
	OpResolve              Operation = "resolve"
	OpUpdatePriority       Operation = "update_priority"
	OpTanodFollowUp        Operation = "tanod_follow_up"
	OpAdminOverride        Operation = "admin_override"
)

// allowedFrom is the transition table: which statuses each operation may be
// applied from. A nil entry means the operation is status-agnostic.
var allowedFrom = map[Operation][]models.Status{
	OpVerify:               {models.StatusPending},
	OpRequestClarification: {models.StatusPending},
	OpReject:               {models.StatusPending},
	OpAssign:               {models.StatusVerified},
	OpReassign:             {models.StatusAssigned, models.StatusInProgress},
	OpUpdateStatus:         {models.StatusAssigned},
	OpSetDispatch:          {models.StatusInProgress},
	OpResolve:              {models.StatusAssigned, models.StatusInProgress},
	OpUpdatePriority:       nil,
	OpTanodFollowUp:        nil,
}

// canApply reports whether op is legal from the given status. The admin
// override operation bypasses the table entirely and is audited under its
// own name.
func canApply(op Operation, from models.Status) bool {
	if op == OpAdminOverride {
		return true
	}
	states, ok := allowedFrom[op]
	if !ok {
		return false
	}
	if states == nil {
		return true
	}
	for _, s := range states {
		if s == from {
			return true
		}
	}
	return false
}
