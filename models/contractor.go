package models

import "time"

// PaymentAdvice is the recommendation derived from a contractor's record.
type PaymentAdvice string

const (
	PaymentRelease PaymentAdvice = "release"
	PaymentHold    PaymentAdvice = "hold"
	PaymentPartial PaymentAdvice = "partial"
)

// Contractor represents a rated contractor on the owner dashboard.
type Contractor struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Rating        float64       `json:"rating"`
	DeadlinesMet  int           `json:"deadlinesMet"`
	TotalProjects int           `json:"totalProjects"`
	DefectCount   int           `json:"defectCount"`
	PaymentAdvice PaymentAdvice `json:"paymentAdvice"`
	LastUpdated   time.Time     `json:"lastUpdated"`
}
