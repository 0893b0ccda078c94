package models

// Day status values. CAUTION is part of the contract but the current rule
// set never produces it; every day is NO_RUN iff at least one flag is set.
const (
	StatusGood    = "GOOD"
	StatusCaution = "CAUTION"
	StatusNoRun   = "NO_RUN"
)

// Reason strings appended in fixed priority order.
const (
	ReasonFriday        = "NO trade Fridays"
	ReasonFOMCDay       = "FOMC day"
	ReasonDayAfterFOMC  = "Day after FOMC"
	ReasonHighImpactUSD = "High-impact USD news day"
)

// DayFlags are the boolean rules evaluated per forecast day.
type DayFlags struct {
	IsFriday         bool `json:"isFriday"`
	HasHighImpactUSD bool `json:"hasHighImpactUsd"`
	IsFOMCDay        bool `json:"isFomcDay"`
	IsDayAfterFOMC   bool `json:"isDayAfterFomc"`
}

// Any reports whether at least one flag is set.
func (f DayFlags) Any() bool {
	return f.IsFriday || f.HasHighImpactUSD || f.IsFOMCDay || f.IsDayAfterFOMC
}

// DayForecast is one UTC day of the 7-day readiness forecast.
type DayForecast struct {
	Date    string          `json:"date"`
	Weekday string          `json:"weekday"`
	Status  string          `json:"status"`
	Reasons []string        `json:"reasons"`
	Events  []CalendarEvent `json:"events"`
	Flags   DayFlags        `json:"flags"`
}

// RoutineWindow is the fixed GMT time-of-day range the forecast gates.
type RoutineWindow struct {
	StartGMT string `json:"startGmt"`
	EndGMT   string `json:"endGmt"`
}

// ForecastResponse is the forecast endpoint body.
type ForecastResponse struct {
	OK             bool          `json:"ok"`
	Routine        RoutineWindow `json:"routine"`
	GeneratedAtUTC string        `json:"generatedAtUtc"`
	Days           []DayForecast `json:"days"`
	Disclaimer     []string      `json:"disclaimer"`
}
