package xstrconv

import (
	"strconv"
	"strings"
)

// ParseBool accepts the HTML form values "on"/"off" and "yes"/"no" on top of
// what strconv.ParseBool understands.
func ParseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	default:
		return strconv.ParseBool(str)
	}
}
