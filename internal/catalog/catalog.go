package catalog

import "strconv"

// SemesterCount is the number of semesters every program offers
const SemesterCount = 8

// Programs returns program names in menu display order
func Programs() []string {
	out := make([]string, len(programs))
	copy(out, programs)
	return out
}

// HasProgram reports whether program is part of the catalog
func HasProgram(program string) bool {
	_, ok := classes[program]
	return ok
}

// Semesters returns "1".."8"
func Semesters() []string {
	out := make([]string, 0, SemesterCount)
	for i := 1; i <= SemesterCount; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out
}

// IsSemester reports whether s is one of "1".."8"
func IsSemester(s string) bool {
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return false
	}
	return n >= 1 && n <= SemesterCount
}

// ClassesFor returns the ordered class list for a program and semester.
// Unknown keys yield an empty result.
func ClassesFor(program, semester string) []string {
	list := classes[program][semester]
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
