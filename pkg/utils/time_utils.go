package utils

import (
	"strconv"
	"time"
)

func NowUnixMillis() int64 { return time.Now().UnixMilli() }

// MillisSuffix keeps the trailing digits of an epoch-millisecond value.
// 1718000123456 with digits=6 gives "123456".
func MillisSuffix(ms int64, digits int) string {
	s := strconv.FormatInt(ms, 10)
	if digits <= 0 || len(s) <= digits {
		return s
	}
	return s[len(s)-digits:]
}
