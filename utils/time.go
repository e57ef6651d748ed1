package utils

import "fmt"

// NormalizeMillis converts a unix timestamp of unknown unit to milliseconds.
// Callers hand over a mix of second- and millisecond-based timestamps; a value
// with more than ten decimal digits is already in milliseconds.
func NormalizeMillis(ts int64) int64 {
	if ts == 0 {
		return 0
	}
	neg := ts < 0
	abs := ts
	if neg {
		abs = -abs
	}
	if digits(abs) > 10 {
		return ts
	}
	return ts * 1000
}

// FormatTimestamp renders a unix timestamp (seconds or milliseconds) as
// Discord date+time markup.
func FormatTimestamp(ts int64) string {
	sec := NormalizeMillis(ts) / 1000
	return fmt.Sprintf("<t:%d:d><t:%d:t>", sec, sec)
}

func digits(n int64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
