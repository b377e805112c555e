package dto

// StatusUpdateRequest is the body the status, check-in and check-out
// endpoints accept.
type StatusUpdateRequest struct {
	TargetID     string `json:"targetId" validate:"required"`
	DesiredState string `json:"desiredState" validate:"required"`
	Notes        string `json:"notes,omitempty"`
}

// MutationResponse là response của các endpoint thay đổi trạng thái
type MutationResponse struct {
	TargetID       string `json:"targetId"`
	State          string `json:"state"`
	IdempotencyKey string `json:"idempotencyKey"`
	Replayed       bool   `json:"replayed"`
}

// PendingResponse lists targets that currently have a call in flight.
type PendingResponse struct {
	TargetIDs []string `json:"targetIds"`
}

// RefreshSessionResponse là kết quả làm mới phiên đăng nhập
type RefreshSessionResponse struct {
	Success  bool   `json:"success"`
	NewToken string `json:"newToken"`
}
