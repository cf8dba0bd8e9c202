package specifications

import (
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPeriodsByYear(t *testing.T) {
	t.Run("Periods split by start year", func(t *testing.T) {
		groups := GroupPeriodsByYear([]responses.Period{
			{StartDate: "2024-12-20", EndDate: "2025-01-19"},
			{StartDate: "2025-01-05"},
		})

		assert.Len(t, groups, 2)
		assert.Len(t, groups[2024], 1)
		assert.Len(t, groups[2025], 1)
		assert.Equal(t, "2025-01-19", groups[2024][0].EndDate)
	})

	t.Run("Unreadable start dates are grouped under the unknown year", func(t *testing.T) {
		input := []responses.Period{
			{StartDate: "2024-12-20"},
			{StartDate: "20/01/2025"},
			{StartDate: ""},
			{StartDate: "2023-03-01T10:00:00Z"},
		}

		groups := GroupPeriodsByYear(input)

		total := 0
		for _, periods := range groups {
			total += len(periods)
		}
		assert.Equal(t, len(input), total, "every period lands in a group")
		assert.Len(t, groups[2024], 1)
		assert.Len(t, groups[2023], 1)
		assert.Equal(t, []responses.Period{{StartDate: "20/01/2025"}, {StartDate: ""}}, groups[constvars.UnknownYear])
	})

	t.Run("Sorted groups ascend by year and date", func(t *testing.T) {
		sorted := SortedPeriodGroups(GroupPeriodsByYear([]responses.Period{
			{StartDate: "2025-03-01"},
			{StartDate: "2024-06-01"},
			{StartDate: "2025-01-01"},
		}))

		assert.Len(t, sorted, 2)
		assert.Equal(t, 2024, sorted[0].Year)
		assert.Equal(t, 2025, sorted[1].Year)
		assert.Equal(t, "2025-01-01", sorted[1].Periods[0].StartDate)
		assert.Equal(t, "2025-03-01", sorted[1].Periods[1].StartDate)
	})

	t.Run("Unknown year sorts last", func(t *testing.T) {
		sorted := SortedPeriodGroups(GroupPeriodsByYear([]responses.Period{
			{StartDate: "n/a"},
			{StartDate: "2025-03-01"},
			{StartDate: "2024-06-01"},
		}))

		require.Len(t, sorted, 3)
		assert.Equal(t, []int{2024, 2025, constvars.UnknownYear}, []int{sorted[0].Year, sorted[1].Year, sorted[2].Year})
	})
}

func TestGroupSpecificationsByYear(t *testing.T) {
	years := groupSpecificationsByYear([]responses.Specification{
		{ID: "b", StartDate: "2025-02-01"},
		{ID: "a", StartDate: "2024-12-20"},
		{ID: "c", StartDate: "2025-01-05"},
		{ID: "d", StartDate: ""},
	})

	require.Len(t, years, 3)
	assert.Equal(t, constvars.UnknownYear, years[2].Year)
	assert.Equal(t, "d", years[2].Specifications[0].ID)
	assert.Equal(t, 2024, years[0].Year)
	assert.Equal(t, "a", years[0].Specifications[0].ID)
	assert.Equal(t, "c", years[1].Specifications[0].ID)
	assert.Equal(t, "b", years[1].Specifications[1].ID)
}
