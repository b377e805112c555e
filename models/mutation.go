package models

import "time"

// MutationRequest is one status-changing call issued by an operator.
type MutationRequest struct {
	TargetID       string    `json:"targetId"`
	Kind           string    `json:"kind"`
	DesiredState   string    `json:"desiredState"`
	Notes          string    `json:"notes,omitempty"`
	IssuedAt       time.Time `json:"issuedAt"`
	IdempotencyKey string    `json:"idempotencyKey"`
	Origin         string    `json:"-"` // console session that issued the request
}

// MutationResult là dữ liệu directory trả về khi cập nhật thành công
type MutationResult struct {
	TargetID string `json:"targetId"`
	State    string `json:"state"`
	Data     []byte `json:"-"`
}

// MutationOutcome is published once a request resolves.
type MutationOutcome struct {
	Request    MutationRequest `json:"request"`
	State      MutationState   `json:"state"`
	Result     *MutationResult `json:"result,omitempty"`
	Err        error           `json:"-"`
	ErrorCode  string          `json:"errorCode,omitempty"`
	Replayed   bool            `json:"replayed"`
	ResolvedAt time.Time       `json:"resolvedAt"`
}
