// Package validate contains pure text validators for console input.
// This is part of the Functional Core - no I/O, only pure functions.
package validate

import "strconv"

// IsInteger reports whether s is an optionally signed run of decimal digits.
// The sign alone is not a number.
func IsInteger(s string) bool {
	if len(s) == 0 {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		start = 1
	}
	if len(s) == start {
		return false
	}

	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsDecimal reports whether s is an optionally signed decimal number with at
// most one '.' among the digits.
func IsDecimal(s string) bool {
	if len(s) == 0 {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		start = 1
	}
	if len(s) == start {
		return false
	}

	dots := 0
	for i := start; i < len(s); i++ {
		if s[i] == '.' {
			dots++
			if dots > 1 {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// daysInMonth[m] is the day count of month m in a non-leap year.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsDate reports whether s is a calendar date in exact DD/MM/YYYY layout.
// Rules:
// - exactly 10 characters, '/' at positions 2 and 5, digits elsewhere
// - day 1-31, month 1-12, year 1900-2100
// - day further bounded by the month's length (Gregorian leap rule)
func IsDate(s string) bool {
	if len(s) != 10 || s[2] != '/' || s[5] != '/' {
		return false
	}
	for i := 0; i < 10; i++ {
		if i == 2 || i == 5 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return false
	}
	if year < 1900 || year > 2100 {
		return false
	}

	max := daysInMonth[month]
	if month == 2 && isLeapYear(year) {
		max = 29
	}
	return day <= max
}

// DateYear extracts the year from a DD/MM/YYYY date.
// The second return value is false when s does not satisfy IsDate.
func DateYear(s string) (int, bool) {
	if !IsDate(s) {
		return 0, false
	}
	year, _ := strconv.Atoi(s[6:10])
	return year, true
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
