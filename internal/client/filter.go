package client

import (
	"strings"

	"student-portal-system/internal/model"
)

// StudentList is the admin panel's list state: the fetched roster plus a
// derived filtered view recomputed per search term. It replaces the
// page-global mutable slices with explicit mutation entry points; it is not
// safe for concurrent use, matching its single page-loop consumer.
type StudentList struct {
	students []model.Student
}

// Set replaces the roster after a fetch.
func (l *StudentList) Set(students []model.Student) {
	l.students = students
}

// Add prepends a freshly created student, the position a newest-first list
// shows it in.
func (l *StudentList) Add(student model.Student) {
	l.students = append([]model.Student{student}, l.students...)
}

// Remove drops a student by id.
func (l *StudentList) Remove(id string) {
	kept := l.students[:0]
	for _, s := range l.students {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	l.students = kept
}

// All returns the unfiltered roster.
func (l *StudentList) All() []model.Student {
	return l.students
}

// Filter returns the students matching the term: case-insensitive substring
// match over first name, last name, reg number, email and course. An empty
// term matches everyone.
func (l *StudentList) Filter(term string) []model.Student {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return l.students
	}

	var matched []model.Student
	for _, s := range l.students {
		if containsFold(s.FirstName, term) ||
			containsFold(s.LastName, term) ||
			containsFold(s.RegNumber, term) ||
			containsFold(s.Email, term) ||
			containsFold(s.Course, term) {
			matched = append(matched, s)
		}
	}
	return matched
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
