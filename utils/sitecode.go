package utils

import (
	"encoding/json"
	"strings"
)

// qrEnrollment is the JSON payload embedded in site enrollment QR codes.
type qrEnrollment struct {
	Type           string `json:"type"`
	EnrollmentCode string `json:"enrollmentCode"`
}

// NormalizeSiteCode canonicalizes a human-entered or scanned enrollment
// code: spaces are stripped and the result is uppercased. If the input is a
// QR payload of type "site_enrollment", the embedded code is extracted first.
func NormalizeSiteCode(input string) string {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return ""
	}

	var qr qrEnrollment
	if err := json.Unmarshal([]byte(raw), &qr); err == nil &&
		qr.Type == "site_enrollment" && qr.EnrollmentCode != "" {
		raw = qr.EnrollmentCode
	}

	return strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
}
