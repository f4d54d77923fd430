package compose

import "strings"

// FormatDateRange builds the display form of a date span. An empty start
// yields an empty result regardless of the other inputs. The present flag
// and an end value spelled "present" (any casing) both produce an open
// range.
func FormatDateRange(start, end string, present bool) string {
	if start == "" {
		return ""
	}
	if present || strings.EqualFold(end, "present") {
		return start + " - Present"
	}
	if end != "" {
		return start + " - " + end
	}
	return start
}
