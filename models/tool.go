package models

import "time"

// Tool represents an item in a site's tool library.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SiteID      string `json:"siteId"`
	Quantity    int    `json:"quantity"`
}

// ToolRequestStatus is the checkout state of a tool request.
type ToolRequestStatus string

const (
	ToolPending  ToolRequestStatus = "pending"
	ToolIssued   ToolRequestStatus = "issued"
	ToolReturned ToolRequestStatus = "returned"
	ToolRejected ToolRequestStatus = "rejected"
)

// ToolRequest represents a worker's checkout of a tool. The tool name is
// denormalized at creation so the record survives catalog edits.
type ToolRequest struct {
	ID                string            `json:"id"`
	ToolID            string            `json:"toolId"`
	ToolName          string            `json:"toolName"`
	SiteID            string            `json:"siteId"`
	UserID            string            `json:"userId"`
	Status            ToolRequestStatus `json:"status"`
	RequestedDuration string            `json:"requestedDuration"`
	RequestedAt       time.Time         `json:"requestedAt"`
	IssuedAt          *time.Time        `json:"issuedAt,omitempty"`
	ReturnedAt        *time.Time        `json:"returnedAt,omitempty"`
}
