package models

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/tribunal/internal/timex"
)

// Case is a judicial proceeding record. Judge, Lawyer and NextHearing are
// optional.
type Case struct {
	ID          int64           `json:"id"`
	CaseNumber  string          `json:"case_number"`
	Title       string          `json:"title"`
	CaseType    string          `json:"case_type"`
	Status      string          `json:"status"`
	Plaintiff   string          `json:"plaintiff"`
	Defendant   string          `json:"defendant"`
	Judge       string          `json:"judge"`
	Lawyer      string          `json:"lawyer"`
	FilingDate  timex.Timestamp `json:"filing_date"`
	NextHearing timex.Timestamp `json:"next_hearing"`
	Description string          `json:"description"`
	IsPublic    bool            `json:"is_public"`
}

// Pagination is the cursor returned with every search page.
type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// CasePage is one page of search results.
type CasePage struct {
	Cases      []Case     `json:"cases"`
	Pagination Pagination `json:"pagination"`
}

// Option is a value/label pair used by the case type and status selectors.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Search filter field names, as sent on the wire.
const (
	FilterCaseNumber = "case_number"
	FilterPartyName  = "party_name"
	FilterCaseType   = "case_type"
	FilterStatus     = "status"
	FilterDateFrom   = "date_from"
	FilterDateTo     = "date_to"
)

// FilterFields lists the filters in display order.
var FilterFields = []string{
	FilterCaseNumber, FilterPartyName, FilterCaseType, FilterStatus, FilterDateFrom, FilterDateTo,
}

var ErrUnknownFilter = errors.New("unknown filter")

// SearchFilters holds the six optional case search criteria. Empty means
// "not filtered".
type SearchFilters struct {
	CaseNumber string
	PartyName  string
	CaseType   string
	Status     string
	DateFrom   string
	DateTo     string
}

func (f *SearchFilters) field(name string) (*string, error) {
	switch name {
	case FilterCaseNumber:
		return &f.CaseNumber, nil
	case FilterPartyName:
		return &f.PartyName, nil
	case FilterCaseType:
		return &f.CaseType, nil
	case FilterStatus:
		return &f.Status, nil
	case FilterDateFrom:
		return &f.DateFrom, nil
	case FilterDateTo:
		return &f.DateTo, nil
	}
	return nil, ErrUnknownFilter
}

// Set assigns one filter by its wire name.
func (f *SearchFilters) Set(name, value string) error {
	p, err := f.field(name)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Get returns one filter by its wire name; unknown names read as empty.
func (f SearchFilters) Get(name string) string {
	p, err := f.field(name)
	if err != nil {
		return ""
	}
	return *p
}

// Params returns the non-empty filters keyed by wire name, trimmed.
func (f SearchFilters) Params() map[string]string {
	params := make(map[string]string, len(FilterFields))
	for _, name := range FilterFields {
		if v := strings.TrimSpace(f.Get(name)); v != "" {
			params[name] = v
		}
	}
	return params
}

// IsEmpty reports whether no filter is set.
func (f SearchFilters) IsEmpty() bool {
	return len(f.Params()) == 0
}
