package specifications

import (
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/responses"
	"carehome-service/internal/pkg/utils"
	"sort"
)

// GroupPeriodsByYear keys every period by the year its start date falls in. A
// period that crosses new year stays whole under its start year. Periods with an
// unreadable start date go to constvars.UnknownYear, so every input period lands
// in exactly one group.
func GroupPeriodsByYear(periods []responses.Period) map[int][]responses.Period {
	groups := make(map[int][]responses.Period)
	for _, period := range periods {
		year := yearOrUnknown(period.StartDate)
		groups[year] = append(groups[year], period)
	}
	return groups
}

func yearOrUnknown(date string) int {
	year, err := utils.YearOf(date)
	if err != nil || year == constvars.UnknownYear {
		return constvars.UnknownYear
	}
	return year
}

// sortYears orders years ascending with the unknown year last.
func sortYears(years []int) {
	sort.Slice(years, func(i, j int) bool {
		if years[i] == constvars.UnknownYear || years[j] == constvars.UnknownYear {
			return years[j] == constvars.UnknownYear && years[i] != constvars.UnknownYear
		}
		return years[i] < years[j]
	})
}

// SortedPeriodGroups flattens the map into ascending years, periods ordered by start
// date. The unknown year group comes last.
func SortedPeriodGroups(groups map[int][]responses.Period) []responses.PeriodGroup {
	years := make([]int, 0, len(groups))
	for year := range groups {
		years = append(years, year)
	}
	sortYears(years)

	result := make([]responses.PeriodGroup, 0, len(years))
	for _, year := range years {
		periods := append([]responses.Period(nil), groups[year]...)
		sort.SliceStable(periods, func(i, j int) bool {
			return periods[i].StartDate < periods[j].StartDate
		})
		result = append(result, responses.PeriodGroup{Year: year, Periods: periods})
	}
	return result
}

func toPeriods(periods []care_dto.Period) []responses.Period {
	result := make([]responses.Period, 0, len(periods))
	for _, period := range periods {
		result = append(result, responses.Period{
			StartDate: period.StartDate,
			EndDate:   stringOrEmpty(period.EndDate),
		})
	}
	return result
}

// groupSpecificationsByYear applies the same start date rule to whole specifications.
func groupSpecificationsByYear(specifications []responses.Specification) []responses.SpecificationYear {
	byYear := make(map[int][]responses.Specification)
	for _, specification := range specifications {
		year := yearOrUnknown(specification.StartDate)
		byYear[year] = append(byYear[year], specification)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sortYears(years)

	result := make([]responses.SpecificationYear, 0, len(years))
	for _, year := range years {
		specs := byYear[year]
		sort.SliceStable(specs, func(i, j int) bool {
			return specs[i].StartDate < specs[j].StartDate
		})
		result = append(result, responses.SpecificationYear{Year: year, Specifications: specs})
	}
	return result
}
