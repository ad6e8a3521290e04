package gmk

import (
	"time"
)

// Days between the Delphi epoch (1899-12-30) and the Unix epoch.
const delphiUnixOffset = 25569

// DateTime converts t to a Delphi TDateTime: fractional days since
// 1899-12-30 UTC.
func DateTime(t time.Time) float64 {
	seconds := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return seconds/86400 + delphiUnixOffset
}
