package api

import "net/url"

// Filters holds the console-wide query parameters. An empty value or the
// literal "all" means the dimension is unconstrained and is left out of the
// serialized query entirely. Start/end dates are passed through as-is; the
// server returns an empty result set for inverted ranges.
type Filters struct {
	SessionID ParamValue
	CompanyID ParamValue
	ProgramID ParamValue
	StartDate ParamValue
	EndDate   ParamValue
	Search    ParamValue
	Status    ParamValue
	Month     ParamValue
	Year      ParamValue
}

// ParamValue is a single filter value. The zero value means unconstrained.
type ParamValue string

func (v ParamValue) constrained() bool {
	return v != "" && v != "all"
}

// Encode returns only the constrained parameters, keyed by their wire names.
func (f Filters) Encode() url.Values {
	q := url.Values{}
	set := func(key string, v ParamValue) {
		if v.constrained() {
			q.Set(key, string(v))
		}
	}
	set("session_id", f.SessionID)
	set("company_id", f.CompanyID)
	set("program_id", f.ProgramID)
	set("start_date", f.StartDate)
	set("end_date", f.EndDate)
	set("search", f.Search)
	set("status", f.Status)
	set("month", f.Month)
	set("year", f.Year)
	return q
}

// Query returns the canonical encoded query string, "" when nothing is
// constrained.
func (f Filters) Query() string {
	return f.Encode().Encode()
}
