package main

import (
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/dto/responses"
	"carehome-service/internal/pkg/utils"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func money(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func printSpecification(out io.Writer, specification responses.Specification) {
	end := specification.EndDate
	if end == "" {
		end = "open"
	}
	fmt.Fprintf(out, "Specification %s  %s .. %s\n", specification.ID, specification.StartDate, end)

	table := newTable(out)
	fmt.Fprintln(table, "CATEGORY\tITEM\tQUANTITY\tPRICE")
	for _, row := range specification.Items {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", row.Category, row.FormattedName, row.FormattedQuantity, money(row.Price))
	}
	fmt.Fprintf(table, "\t\tTOTAL\t%s\n", money(specification.TotalPrice))
	table.Flush()
	fmt.Fprintln(out)
}

func printSpecificationDetail(out io.Writer, detail *responses.SpecificationDetail) {
	printSpecification(out, detail.Specification)
	fmt.Fprintf(out, "Lodging: %s\n", money(detail.LodgingPrice))
	if detail.ExtraCostAmount > 0 {
		fmt.Fprintf(out, "Extra: %s (%s)\n", money(detail.ExtraCostAmount), detail.ExtraCostLabel)
	}
}

func printPeriodGroups(out io.Writer, groups []responses.PeriodGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(out, "No periods")
		return
	}

	table := newTable(out)
	fmt.Fprintln(table, "YEAR\tSTART\tEND")
	for _, group := range groups {
		for _, period := range group.Periods {
			fmt.Fprintf(table, "%s\t%s\t%s\n", utils.YearLabel(group.Year), period.StartDate, period.EndDate)
		}
	}
	table.Flush()
}

func printInventoryItem(out io.Writer, item *care_dto.InventoryItem) {
	table := newTable(out)
	fmt.Fprintln(table, "ID\tNAME\tPACKAGES\tUNITS\tPER PACKAGE\tFAMILY")
	fmt.Fprintf(table, "%s\t%s\t%d\t%d\t%d\t%d\n",
		item.ID, item.Name, item.Packages, item.Quantity, item.UnitsPerPackage, item.FamilyQuantity)
	table.Flush()
}
