package env

import (
	"os"
	"strconv"
)

func Debug() bool {
	return os.Getenv("DEBUG") != ""
}

// Timeout reports the timeout override in seconds from GEOM_TIMEOUT.
func Timeout() (int, bool) {
	if s := os.Getenv("GEOM_TIMEOUT"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return int(i), true
		}
	}
	return -1, false
}
