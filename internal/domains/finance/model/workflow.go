package model

import (
	"fmt"
	"strings"
)

// Status is the approval workflow state of a ledger record.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

var Statuses = []Status{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected, StatusCancelled}

func ParseStatus(value string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(value)))
}

// Action is an operation a user can trigger on a record.
type Action string

const (
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ParseTransition accepts the actions that map to a backend transition
// endpoint.
func ParseTransition(name string) (Action, bool) {
	switch a := Action(strings.ToLower(name)); a {
	case ActionSubmit, ActionApprove, ActionReject:
		return a, true
	default:
		return "", false
	}
}

type ActionView struct {
	Action Action `json:"action"`
	Label  string `json:"label"`
}

// Actions lists what a record in status may expose:
//
//	DRAFT, REJECTED      edit, delete, submit (resubmit when rejected)
//	SUBMITTED            approve, reject
//	APPROVED, CANCELLED  nothing
func Actions(status Status) []ActionView {
	switch status {
	case StatusDraft:
		return []ActionView{
			{Action: ActionEdit, Label: "Edit"},
			{Action: ActionDelete, Label: "Delete"},
			{Action: ActionSubmit, Label: "Submit"},
		}
	case StatusRejected:
		return []ActionView{
			{Action: ActionEdit, Label: "Edit"},
			{Action: ActionDelete, Label: "Delete"},
			{Action: ActionSubmit, Label: "Resubmit"},
		}
	case StatusSubmitted:
		return []ActionView{
			{Action: ActionApprove, Label: "Approve"},
			{Action: ActionReject, Label: "Reject"},
		}
	default:
		return []ActionView{}
	}
}

// Allows reports whether action may be taken on a record in status.
func Allows(status Status, action Action) bool {
	for _, view := range Actions(status) {
		if view.Action == action {
			return true
		}
	}

	return false
}

// Next is the status a successful transition leads to.
func Next(action Action) Status {
	switch action {
	case ActionSubmit:
		return StatusSubmitted
	case ActionApprove:
		return StatusApproved
	case ActionReject:
		return StatusRejected
	default:
		return ""
	}
}

// ConflictMessage is shown when the record's status does not allow action.
func ConflictMessage(kind Kind, action Action, status Status) string {
	noun := strings.ToLower(kind.Label())

	switch action {
	case ActionSubmit:
		return fmt.Sprintf("Only draft or rejected %s records can be submitted", noun)
	case ActionApprove, ActionReject:
		return fmt.Sprintf("This %s is %s and can no longer be %s", noun, strings.ToLower(string(status)), strings.ToLower(string(Next(action))))
	case ActionDelete:
		return fmt.Sprintf("Only draft or rejected %s records can be deleted", noun)
	default:
		return fmt.Sprintf("This %s has changed. Please refresh and try again", noun)
	}
}

// SuccessMessage is the toast text after action succeeded.
func SuccessMessage(kind Kind, action Action) string {
	switch action {
	case ActionSubmit:
		return kind.Label() + " submitted for approval"
	case ActionApprove:
		return kind.Label() + " approved"
	case ActionReject:
		return kind.Label() + " rejected"
	case ActionDelete:
		return kind.Label() + " deleted"
	default:
		return kind.Label() + " created"
	}
}
