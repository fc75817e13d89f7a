package route

import "time"

// venueOffset is the venue's display timezone (+08:00). Clients receive
// wall-clock times for Singapore regardless of server timezone.
var venueOffset = time.FixedZone("SGT", 8*60*60)

// Window is a visit window shaped for clients: ISO-8601 strings in venue
// local time, with the end pinned a day after the start (ticket validity).
type Window struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// FormatWindow renders a visit window in venue local time. Zero times
// produce empty strings rather than the epoch.
func FormatWindow(start, updated time.Time) Window {
	var w Window
	if !start.IsZero() {
		w.StartTime = start.In(venueOffset).Format("2006-01-02T15:04:05-07:00")
		w.EndTime = start.Add(24 * time.Hour).In(venueOffset).Format("2006-01-02T15:04:05-07:00")
	}
	if !updated.IsZero() {
		w.UpdatedAt = updated.In(venueOffset).Format("2006-01-02T15:04:05-07:00")
	}
	return w
}
