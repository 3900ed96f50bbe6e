package checkout

import (
	"strconv"
	"time"
)

// newOrderNumber builds a display order number from the current time in
// milliseconds, keeping the last eight digits.
func newOrderNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return "WM" + millis
}
