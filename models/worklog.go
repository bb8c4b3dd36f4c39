package models

import "time"

// WorkLog is a geotagged daily progress entry submitted by a worker.
type WorkLog struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"siteId"`
	UserID    string    `json:"userId"`
	WorkDone  string    `json:"workDone"`
	PhotoRef  string    `json:"photoRef,omitempty"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkPhoto is a site documentation photo reference.
type WorkPhoto struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"siteId"`
	UserID    string    `json:"userId"`
	PhotoRef  string    `json:"photoRef"`
	Comment   string    `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
