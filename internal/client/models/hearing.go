package models

import "github.com/dmitrijs2005/tribunal/internal/timex"

// Hearing is a scheduled court session for a public case.
type Hearing struct {
	ID          int64           `json:"id"`
	CaseID      int64           `json:"case_id"`
	CaseNumber  string          `json:"case_number"`
	HearingDate timex.Timestamp `json:"hearing_date"`
	HearingType string          `json:"hearing_type"`
	Courtroom   string          `json:"courtroom"`
	Judge       string          `json:"judge"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
}

// HearingFilters narrows the hearings calendar. All fields are optional.
type HearingFilters struct {
	DateFrom  string
	DateTo    string
	Courtroom string
}

func (f HearingFilters) Params() map[string]string {
	params := map[string]string{}
	if f.DateFrom != "" {
		params["date_from"] = f.DateFrom
	}
	if f.DateTo != "" {
		params["date_to"] = f.DateTo
	}
	if f.Courtroom != "" {
		params["courtroom"] = f.Courtroom
	}
	return params
}
