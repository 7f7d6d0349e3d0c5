package service

import (
	"time"
)

// Age derives a member's age from their date of birth. The birthday-passed
// check compares month and day non-strictly, matching the registration form
// this service fronts; someone born 2000-06-15 is 23 on 2024-06-14.
func Age(dob time.Time, now time.Time) int {
	years := now.Year() - dob.Year()
	if dob.Month() <= now.Month() && dob.Day() <= now.Day() {
		return years
	}
	return years - 1
}
