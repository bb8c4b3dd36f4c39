package models

import "time"

// PermitStatus is the verification state of a permit-to-work request.
type PermitStatus string

const (
	PermitRequested PermitStatus = "requested"
	PermitOTPSent   PermitStatus = "otp_sent"
	PermitVerified  PermitStatus = "verified"
	PermitRejected  PermitStatus = "rejected"
)

// Terminal reports whether no further permit transitions are possible.
func (s PermitStatus) Terminal() bool {
	return s == PermitVerified || s == PermitRejected
}

// PermitRequest represents a safety permit gated by a one-time code. The
// code is generated when the permit enters otp_sent and must match exactly
// at verification.
type PermitRequest struct {
	ID          string       `json:"id"`
	TaskName    string       `json:"taskName"`
	WorkerID    string       `json:"workerId"`
	WorkerName  string       `json:"workerName"`
	SiteID      string       `json:"siteId"`
	Status      PermitStatus `json:"status"`
	RequestedAt time.Time    `json:"requestedAt"`
	OTP         string       `json:"-"` // never serialized to clients
	OTPSentAt   *time.Time   `json:"otpSentAt,omitempty"`
	VerifiedAt  *time.Time   `json:"verifiedAt,omitempty"`
}
