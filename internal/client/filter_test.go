package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"student-portal-system/internal/model"
)

func roster() []model.Student {
	jane := model.Student{
		FirstName: "Jane",
		LastName:  "Wanjiku",
		Email:     "jane.wanjiku@example.com",
		Course:    "Computer Science",
	}
	jane.ID = "s1"
	jane.RegNumber = "CS/001/2024"

	john := model.Student{
		FirstName: "John",
		LastName:  "Otieno",
		Email:     "john.otieno@example.com",
		Course:    "Economics",
	}
	john.ID = "s2"
	john.RegNumber = "EC/014/2023"

	return []model.Student{jane, john}
}

func TestFilter(t *testing.T) {
	var list StudentList
	list.Set(roster())

	// Empty and whitespace terms match everyone.
	require.Len(t, list.Filter(""), 2)
	require.Len(t, list.Filter("   "), 2)

	// Case-insensitive substring over every searchable field.
	cases := map[string]string{
		"jane":     "s1",
		"OTIENO":   "s2",
		"cs/001":   "s1",
		"econom":   "s2",
		"@example": "",
	}
	for term, wantID := range cases {
		matched := list.Filter(term)
		if wantID == "" {
			require.Len(t, matched, 2, "term %q", term)
			continue
		}
		require.Len(t, matched, 1, "term %q", term)
		require.Equal(t, wantID, matched[0].ID)
	}

	require.Empty(t, list.Filter("nomatch"))
}

func TestAddPrependsAndRemove(t *testing.T) {
	var list StudentList
	list.Set(roster())

	extra := model.Student{FirstName: "New"}
	extra.ID = "s3"
	list.Add(extra)

	all := list.All()
	require.Len(t, all, 3)
	require.Equal(t, "s3", all[0].ID)

	list.Remove("s1")
	require.Len(t, list.All(), 2)
	for _, s := range list.All() {
		require.NotEqual(t, "s1", s.ID)
	}

	list.Remove("never-existed")
	require.Len(t, list.All(), 2)
}
