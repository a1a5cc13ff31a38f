package calendar

// =============================================================================
// PERIOD - Closed date interval
// =============================================================================

// Period is a closed interval of days [Start, End]. The settlement engine
// uses one for the retrospective past window and one for the projection
// window.
type Period struct {
	Start Date
	End   Date
}

// Contains returns true if the date falls within the period [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns the inclusive day count of the period, 0 for a reversed
// interval.
func (p Period) Days() int {
	return DaysInclusive(p.Start, p.End)
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
