package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browseFixtures() []Applicant {
	return []Applicant{
		{ID: 1, RegistrationNumber: 1, Name: "Bat Dorj", Email: "bat@example.com", School: School{Name: "Elite School of Mongolia"}, Status: "pending"},
		{ID: 2, RegistrationNumber: 2, Name: "Oyun Erdene", Email: "oyun@example.com", School: School{Name: "Cambridge International School"}, Status: "approved"},
		{ID: 3, RegistrationNumber: 3, Name: "Munkh Bayar", Email: "munkh@example.com", School: School{Name: "Elite School of Mongolia"}, Status: "pending"},
		{ID: 4, RegistrationNumber: 4, Name: "Solongo Tsogt", Email: "solongo@example.com", School: School{Name: "British School of Ulaanbaatar"}, Status: "rejected"},
		{ID: 5, RegistrationNumber: 5, Name: "Naran Suren", Email: "naran@example.com", School: School{Name: "Cambridge International School"}, Status: "approved"},
	}
}

func TestBrowseNoFilters(t *testing.T) {
	result := Browse(browseFixtures(), BrowseOptions{})

	assert.Len(t, result.Applicants, 5)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, map[string]int{"pending": 2, "approved": 2, "rejected": 1}, result.Counts)
}

func TestBrowseStatusFilter(t *testing.T) {
	result := Browse(browseFixtures(), BrowseOptions{Status: "approved"})

	require.Len(t, result.Applicants, 2)
	for _, a := range result.Applicants {
		assert.Equal(t, "approved", a.Status)
	}
	// Counts cover all statuses, not just the filtered one
	assert.Equal(t, 2, result.Counts["pending"])
}

func TestBrowseSearchIsCaseInsensitive(t *testing.T) {
	byName := Browse(browseFixtures(), BrowseOptions{Search: "BAT dorj"})
	require.Len(t, byName.Applicants, 1)
	assert.Equal(t, "Bat Dorj", byName.Applicants[0].Name)

	byEmail := Browse(browseFixtures(), BrowseOptions{Search: "OYUN@"})
	require.Len(t, byEmail.Applicants, 1)

	bySchool := Browse(browseFixtures(), BrowseOptions{Search: "elite school"})
	assert.Len(t, bySchool.Applicants, 2)
}

func TestBrowseSearchAndStatusCombine(t *testing.T) {
	result := Browse(browseFixtures(), BrowseOptions{Search: "cambridge", Status: "approved"})
	assert.Len(t, result.Applicants, 2)

	result = Browse(browseFixtures(), BrowseOptions{Search: "cambridge", Status: "rejected"})
	assert.Empty(t, result.Applicants)
}

func TestBrowsePagination(t *testing.T) {
	first := Browse(browseFixtures(), BrowseOptions{Page: 1, PageSize: 2})
	require.Len(t, first.Applicants, 2)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 1, first.Applicants[0].RegistrationNumber)

	last := Browse(browseFixtures(), BrowseOptions{Page: 3, PageSize: 2})
	require.Len(t, last.Applicants, 1)
	assert.Equal(t, 5, last.Applicants[0].RegistrationNumber)
}

func TestBrowseClampsPageRange(t *testing.T) {
	tooFar := Browse(browseFixtures(), BrowseOptions{Page: 99, PageSize: 2})
	assert.Equal(t, 3, tooFar.Page)
	assert.Len(t, tooFar.Applicants, 1)

	tooLow := Browse(browseFixtures(), BrowseOptions{Page: 0, PageSize: 2})
	assert.Equal(t, 1, tooLow.Page)
}

func TestBrowseEmptyInput(t *testing.T) {
	result := Browse(nil, BrowseOptions{Page: 1, PageSize: 10})
	assert.Empty(t, result.Applicants)
	assert.Equal(t, 1, result.TotalPages)
}

func TestMockApplicants(t *testing.T) {
	applicants := NewMockApplicants(50)
	require.Len(t, applicants, 50)

	for _, a := range applicants {
		assert.NotEmpty(t, a.Name)
		assert.Contains(t, a.Email, "@")
		assert.Contains(t, []string{"pending", "approved", "rejected"}, a.Status)
		assert.GreaterOrEqual(t, a.School.AverageGrade, 70.0)
		assert.LessOrEqual(t, a.School.AverageGrade, 100.0)
		assert.GreaterOrEqual(t, len(a.Essay), EssayMinLength)
		assert.False(t, a.UpdatedAt.Before(a.CreatedAt))
	}
}
