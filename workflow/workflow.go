// Package workflow defines the status state machines for workflow-bearing
// entities. Each machine is a closed transition table; anything not listed
// is illegal and the caller's record stays unchanged.
package workflow

import (
	"fmt"

	"p9e.in/sitehub/models"
)

// Transition is one legal edge of a state machine.
type Transition[S comparable] struct {
	From   S
	To     S
	Action string
}

// Machine is a finite state machine over status type S.
type Machine[S comparable] struct {
	Name        string
	Initial     S
	Transitions []Transition[S]
}

// Next resolves (current, action) to the next state. The second return is
// false when no transition matches.
func (m Machine[S]) Next(current S, action string) (S, bool) {
	for _, t := range m.Transitions {
		if t.From == current && t.Action == action {
			return t.To, true
		}
	}
	var zero S
	return zero, false
}

// Can reports whether action is legal from current.
func (m Machine[S]) Can(current S, action string) bool {
	_, ok := m.Next(current, action)
	return ok
}

// ErrIllegal describes a rejected transition attempt.
func (m Machine[S]) ErrIllegal(current S, action string) error {
	return fmt.Errorf("%s: no transition %q from state %v", m.Name, action, current)
}

// Actions shared across machines.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionIssue   = "issue"
	ActionReturn  = "return"
	ActionSendOTP = "send_otp"
	ActionVerify  = "verify"
	ActionSend    = "send"
	ActionPay     = "pay"
)

// Attendance: pending -> approved | rejected, both terminal.
var Attendance = Machine[models.AttendanceStatus]{
	Name:    "attendance",
	Initial: models.AttendancePending,
	Transitions: []Transition[models.AttendanceStatus]{
		{From: models.AttendancePending, To: models.AttendanceApproved, Action: ActionApprove},
		{From: models.AttendancePending, To: models.AttendanceRejected, Action: ActionReject},
	},
}

// Material: pending -> approved | rejected, both terminal. Who may approve
// is a precondition checked by the caller, not part of the machine.
var Material = Machine[models.MaterialStatus]{
	Name:    "material_request",
	Initial: models.MaterialPending,
	Transitions: []Transition[models.MaterialStatus]{
		{From: models.MaterialPending, To: models.MaterialApproved, Action: ActionApprove},
		{From: models.MaterialPending, To: models.MaterialRejected, Action: ActionReject},
	},
}

// Tool: pending -> issued -> returned; pending -> rejected. Issued awaits
// return; returned and rejected are terminal.
var Tool = Machine[models.ToolRequestStatus]{
	Name:    "tool_request",
	Initial: models.ToolPending,
	Transitions: []Transition[models.ToolRequestStatus]{
		{From: models.ToolPending, To: models.ToolIssued, Action: ActionIssue},
		{From: models.ToolIssued, To: models.ToolReturned, Action: ActionReturn},
		{From: models.ToolPending, To: models.ToolRejected, Action: ActionReject},
	},
}

// Permit: requested -> otp_sent -> verified; any non-terminal -> rejected.
var Permit = Machine[models.PermitStatus]{
	Name:    "permit",
	Initial: models.PermitRequested,
	Transitions: []Transition[models.PermitStatus]{
		{From: models.PermitRequested, To: models.PermitOTPSent, Action: ActionSendOTP},
		{From: models.PermitOTPSent, To: models.PermitVerified, Action: ActionVerify},
		{From: models.PermitRequested, To: models.PermitRejected, Action: ActionReject},
		{From: models.PermitOTPSent, To: models.PermitRejected, Action: ActionReject},
	},
}

// PettyCash: pending -> approved | rejected, both terminal.
var PettyCash = Machine[models.PettyCashStatus]{
	Name:    "petty_cash",
	Initial: models.PettyCashPending,
	Transitions: []Transition[models.PettyCashStatus]{
		{From: models.PettyCashPending, To: models.PettyCashApproved, Action: ActionApprove},
		{From: models.PettyCashPending, To: models.PettyCashRejected, Action: ActionReject},
	},
}

// GSTBill: draft -> sent -> paid, forward only.
var GSTBill = Machine[models.GSTBillStatus]{
	Name:    "gst_bill",
	Initial: models.GSTDraft,
	Transitions: []Transition[models.GSTBillStatus]{
		{From: models.GSTDraft, To: models.GSTSent, Action: ActionSend},
		{From: models.GSTSent, To: models.GSTPaid, Action: ActionPay},
	},
}
