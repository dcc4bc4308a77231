// Package export renders a forecast and loan schedule into an xlsx workbook.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Dan9191/bizplan/internal/finance"
	"github.com/Dan9191/bizplan/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetRevenue = "Revenue by Quarter"
	SheetLoan    = "Loan Amortization"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FileName    = "financial_forecast.xlsx"
)

// Input is everything the workbook is built from
type Input struct {
	CompanyName             string
	Products                []models.Product
	Seasonality             finance.Seasonality
	COGSPercentage          float64
	AnnualOperatingExpenses float64
	Depreciation            float64
	InterestExpense         float64
	Loan                    *models.LoanTerms
	LoanSchedule            *models.LoanSchedule
}

// Exporter builds forecast workbooks
type Exporter struct {
	assumptions finance.ProjectionAssumptions
}

// NewExporter creates an exporter projecting with the given assumptions
func NewExporter(assumptions finance.ProjectionAssumptions) *Exporter {
	return &Exporter{assumptions: assumptions}
}

// ProjectionSheetName names the P&L sheet after the projection horizon
func ProjectionSheetName(years int) string {
	return fmt.Sprintf("%d-Year P&L", years)
}

// Build renders the workbook into memory
func (e *Exporter) Build(in Input) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetRevenue); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	annualRevenue, err := writeRevenue(f, header, in)
	if err != nil {
		return nil, err
	}
	if err := e.writeProjection(f, header, in, annualRevenue); err != nil {
		return nil, err
	}
	if in.LoanSchedule != nil && len(in.LoanSchedule.Schedule) > 0 {
		if err := writeLoan(f, header, in); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func title(company, text string) string {
	if strings.TrimSpace(company) == "" {
		return text
	}
	return company + " - " + text
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, cols, style int) error {
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(cols, row)
	return f.SetCellStyle(sheet, first, last, style)
}

func writeRevenue(f *excelize.File, header int, in Input) (float64, error) {
	sheet := SheetRevenue
	if err := f.SetCellValue(sheet, "A1", title(in.CompanyName, "Quarterly Sales Forecast Year 1")); err != nil {
		return 0, err
	}
	headers := []any{"Product/Service", "Price", "Sales Volume", "Unit", "Q1 Revenue", "Q2 Revenue", "Q3 Revenue", "Q4 Revenue", "Annual Revenue"}
	if err := writeRow(f, sheet, 2, headers...); err != nil {
		return 0, err
	}
	if err := styleRow(f, sheet, 2, len(headers), header); err != nil {
		return 0, err
	}

	var totals [finance.QuartersPerYear]float64
	row := 3
	for _, p := range in.Products {
		q := finance.ProductQuarterlyRevenue(p, in.Seasonality)
		annual := q[0] + q[1] + q[2] + q[3]
		for i := range totals {
			totals[i] += q[i]
		}
		description := p.Description
		if description == "" {
			description = "N/A"
		}
		if err := writeRow(f, sheet, row, description, p.Price, p.SalesVolume, string(p.VolumeUnit),
			finance.RoundCents(q[0]), finance.RoundCents(q[1]), finance.RoundCents(q[2]), finance.RoundCents(q[3]),
			finance.RoundCents(annual)); err != nil {
			return 0, err
		}
		row++
	}

	annual := totals[0] + totals[1] + totals[2] + totals[3]
	if err := writeRow(f, sheet, row, "Total", nil, nil, nil,
		finance.RoundCents(totals[0]), finance.RoundCents(totals[1]), finance.RoundCents(totals[2]), finance.RoundCents(totals[3]),
		finance.RoundCents(annual)); err != nil {
		return 0, err
	}
	if err := styleRow(f, sheet, row, len(headers), header); err != nil {
		return 0, err
	}
	if err := f.SetColWidth(sheet, "A", "I", 16); err != nil {
		return 0, err
	}
	return annual, nil
}

func (e *Exporter) writeProjection(f *excelize.File, header int, in Input, annualRevenue float64) error {
	years := finance.ProjectProfitAndLoss(finance.ProjectionBase{
		Revenue:           annualRevenue,
		COGSPercentage:    in.COGSPercentage,
		OperatingExpenses: in.AnnualOperatingExpenses,
		Depreciation:      in.Depreciation,
		InterestExpense:   in.InterestExpense,
	}, e.assumptions)

	sheet := ProjectionSheetName(len(years))
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	if err := f.SetCellValue(sheet, "A1", title(in.CompanyName, fmt.Sprintf("%d-Year Profit & Loss Projection", len(years)))); err != nil {
		return err
	}
	headers := []any{"Line Item"}
	for _, y := range years {
		headers = append(headers, fmt.Sprintf("Year %d", y.Year))
	}
	if err := writeRow(f, sheet, 2, headers...); err != nil {
		return err
	}
	if err := styleRow(f, sheet, 2, len(headers), header); err != nil {
		return err
	}

	lines := []struct {
		label string
		value func(finance.ProjectionYear) float64
	}{
		{"Revenue", func(y finance.ProjectionYear) float64 { return y.Revenue }},
		{"Cost of Goods Sold", func(y finance.ProjectionYear) float64 { return y.CostOfGoodsSold }},
		{"Gross Profit", func(y finance.ProjectionYear) float64 { return y.GrossProfit }},
		{"Operating Expenses", func(y finance.ProjectionYear) float64 { return y.OperatingExpenses }},
		{"EBITDA", func(y finance.ProjectionYear) float64 { return y.EBITDA }},
		{"Depreciation", func(y finance.ProjectionYear) float64 { return y.Depreciation }},
		{"EBIT", func(y finance.ProjectionYear) float64 { return y.EBIT }},
		{"Interest Expense", func(y finance.ProjectionYear) float64 { return y.InterestExpense }},
		{"Earnings Before Tax", func(y finance.ProjectionYear) float64 { return y.EBT }},
		{"Tax", func(y finance.ProjectionYear) float64 { return y.Tax }},
		{"Net Income", func(y finance.ProjectionYear) float64 { return y.NetIncome }},
	}
	row := 3
	for _, line := range lines {
		values := []any{line.label}
		for _, y := range years {
			values = append(values, line.value(y))
		}
		if err := writeRow(f, sheet, row, values...); err != nil {
			return err
		}
		row++
	}

	note := fmt.Sprintf("Assumptions: revenue growth %.1f%%/yr, operating expense growth %.1f%%/yr, tax rate %.1f%%",
		e.assumptions.RevenueGrowth*100, e.assumptions.OpExGrowth*100, e.assumptions.TaxRate*100)
	cell, _ := excelize.CoordinatesToCellName(1, row+1)
	if err := f.SetCellValue(sheet, cell, note); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 24)
}

func writeLoan(f *excelize.File, header int, in Input) error {
	sheet := SheetLoan
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	if err := f.SetCellValue(sheet, "A1", title(in.CompanyName, "Loan Summary")); err != nil {
		return err
	}
	var amount, rate float64
	var term int
	if in.Loan != nil {
		amount, rate, term = in.Loan.Amount, in.Loan.InterestRate, in.Loan.TermYears
	}
	summary := [][]any{
		{"Loan Amount", amount},
		{"Annual Interest Rate (%)", rate},
		{"Loan Term (Years)", term},
		{"Monthly Payment", in.LoanSchedule.MonthlyPayment},
	}
	for i, s := range summary {
		if err := writeRow(f, sheet, i+2, s...); err != nil {
			return err
		}
	}

	headers := []any{"Month", "Principal Payment", "Interest Payment", "Remaining Balance"}
	if err := writeRow(f, sheet, 7, headers...); err != nil {
		return err
	}
	if err := styleRow(f, sheet, 7, len(headers), header); err != nil {
		return err
	}
	for i, entry := range in.LoanSchedule.Schedule {
		if err := writeRow(f, sheet, 8+i, entry.Month, entry.PrincipalPayment, entry.InterestPayment, entry.RemainingBalance); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "D", 20)
}
