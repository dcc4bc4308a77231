package export

import (
	"bytes"
	"testing"

	"github.com/Dan9191/bizplan/internal/finance"
	"github.com/Dan9191/bizplan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func sampleInput() Input {
	return Input{
		CompanyName: "Acme",
		Products: []models.Product{
			{Description: "Widget", Price: 10, SalesVolume: 100, VolumeUnit: models.VolumeMonthly},
			{Description: "", Price: 5, SalesVolume: 40, VolumeUnit: models.VolumeQuarterly},
		},
		Seasonality:             finance.UniformSeasonality(),
		COGSPercentage:          40,
		AnnualOperatingExpenses: 6000,
	}
}

func TestBuildWithoutLoan(t *testing.T) {
	projection := ProjectionSheetName(5)
	buf, err := NewExporter(finance.DefaultProjectionAssumptions()).Build(sampleInput())
	require.NoError(t, err)

	f := openWorkbook(t, buf)
	assert.Equal(t, []string{SheetRevenue, projection}, f.GetSheetList())

	assert.Equal(t, "Acme - Quarterly Sales Forecast Year 1", cell(t, f, SheetRevenue, "A1"))
	assert.Equal(t, "Widget", cell(t, f, SheetRevenue, "A3"))
	assert.Equal(t, "3000", cell(t, f, SheetRevenue, "E3"))
	assert.Equal(t, "12000", cell(t, f, SheetRevenue, "I3"))
	assert.Equal(t, "N/A", cell(t, f, SheetRevenue, "A4"))
	assert.Equal(t, "800", cell(t, f, SheetRevenue, "I4"))
	assert.Equal(t, "Total", cell(t, f, SheetRevenue, "A5"))
	assert.Equal(t, "12800", cell(t, f, SheetRevenue, "I5"))

	assert.Equal(t, "Year 1", cell(t, f, projection, "B2"))
	assert.Equal(t, "Year 5", cell(t, f, projection, "F2"))
	assert.Equal(t, "Revenue", cell(t, f, projection, "A3"))
	assert.Equal(t, "12800", cell(t, f, projection, "B3"))
	assert.Equal(t, "14080", cell(t, f, projection, "C3"))
}

func TestBuildWithLoan(t *testing.T) {
	schedule, err := finance.ComputeLoanSchedule(1200, 0, 1)
	require.NoError(t, err)

	in := sampleInput()
	in.Loan = &models.LoanTerms{Amount: 1200, InterestRate: 0, TermYears: 1}
	in.LoanSchedule = &schedule

	buf, err := NewExporter(finance.DefaultProjectionAssumptions()).Build(in)
	require.NoError(t, err)

	f := openWorkbook(t, buf)
	assert.Equal(t, []string{SheetRevenue, ProjectionSheetName(5), SheetLoan}, f.GetSheetList())
	assert.Equal(t, "1200", cell(t, f, SheetLoan, "B2"))
	assert.Equal(t, "100", cell(t, f, SheetLoan, "B5"))
	assert.Equal(t, "Month", cell(t, f, SheetLoan, "A7"))
	assert.Equal(t, "1", cell(t, f, SheetLoan, "A8"))
	assert.Equal(t, "12", cell(t, f, SheetLoan, "A19"))
	assert.Equal(t, "0", cell(t, f, SheetLoan, "D19"))
}

func TestBuildProjectionHorizon(t *testing.T) {
	assumptions := finance.DefaultProjectionAssumptions()
	assumptions.Years = 3

	buf, err := NewExporter(assumptions).Build(sampleInput())
	require.NoError(t, err)

	f := openWorkbook(t, buf)
	assert.Equal(t, []string{SheetRevenue, "3-Year P&L"}, f.GetSheetList())
	assert.Equal(t, "Acme - 3-Year Profit & Loss Projection", cell(t, f, "3-Year P&L", "A1"))
	assert.Equal(t, "Year 3", cell(t, f, "3-Year P&L", "D2"))
	assert.Equal(t, "", cell(t, f, "3-Year P&L", "E2"))
}

func TestBuildSkipsEmptySchedule(t *testing.T) {
	in := sampleInput()
	in.LoanSchedule = &models.LoanSchedule{}

	buf, err := NewExporter(finance.DefaultProjectionAssumptions()).Build(in)
	require.NoError(t, err)

	f := openWorkbook(t, buf)
	assert.NotContains(t, f.GetSheetList(), SheetLoan)
}
