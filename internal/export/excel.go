package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/recommend"
)

const (
	summarySheet     = "Summary"
	recommendedSheet = "Recommended"
	alternatesSheet  = "Alternates"
	companiesSheet   = "Companies"
)

var companyHeader = []string{"#", "Company", "Level", "Role", "Locations", "Technologies"}

// RecommendationToExcel writes a recommendation to an xlsx workbook and returns the final path.
func RecommendationToExcel(result *recommend.Result, outputPath string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	outputPath = withExtension(outputPath, ".xlsx")

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", err
	}
	if err := createSummarySheet(f, summarySheet, result); err != nil {
		return "", fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if _, err := f.NewSheet(recommendedSheet); err != nil {
		return "", err
	}
	if err := createCompaniesSheet(f, recommendedSheet, result.Recommended); err != nil {
		return "", fmt.Errorf("failed to create recommended sheet: %w", err)
	}

	if len(result.Alternates) > 0 {
		if _, err := f.NewSheet(alternatesSheet); err != nil {
			return "", err
		}
		if err := createCompaniesSheet(f, alternatesSheet, result.Alternates); err != nil {
			return "", fmt.Errorf("failed to create alternates sheet: %w", err)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return outputPath, nil
}

// TableToExcel writes a raw table into a single sheet, header first, so the
// file can be loaded back.
func TableToExcel(table *catalog.RawTable, outputPath string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	outputPath = withExtension(outputPath, ".xlsx")

	if err := f.SetSheetName("Sheet1", companiesSheet); err != nil {
		return "", err
	}

	for i, record := range tableRecords(table) {
		if err := setRow(f, companiesSheet, i+1, record); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return outputPath, nil
}

func createSummarySheet(f *excelize.File, sheet string, result *recommend.Result) error {
	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", "B", 60)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Career Recommendation")
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	f.MergeCell(sheet, "A1", "B1")

	p := result.Profile
	internship := "No"
	if p.Internship {
		internship = "Yes"
	}

	rows := [][2]any{
		{"Generated:", time.Now().Format("2006-01-02 15:04:05")},
		{"Stream:", p.Stream},
		{"Department:", p.Department},
		{"Role:", p.Role},
		{"CGPA:", p.CGPA},
		{"Internship:", internship},
		{"Policy:", string(result.Policy)},
		{"Profile band:", result.Band.String()},
		{"Score:", result.Score},
		{"Eligible levels:", joinTiers(result.Tiers)},
		{"Recommended:", len(result.Recommended)},
		{"Alternates:", len(result.Alternates)},
	}
	if result.Notice != "" {
		rows = append(rows, [2]any{"Note:", result.Notice})
	}

	row := 3
	for _, r := range rows {
		label := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, label, r[0])
		f.SetCellStyle(sheet, label, label, labelStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r[1])
		row++
	}

	return nil
}

func createCompaniesSheet(f *excelize.File, sheet string, companies []catalog.Company) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	header := make([]string, len(companyHeader))
	copy(header, companyHeader)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(companyHeader), 1)
	f.SetCellStyle(sheet, "A1", last, headerStyle)

	f.SetColWidth(sheet, "A", "A", 5)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 10)
	f.SetColWidth(sheet, "D", "E", 28)
	f.SetColWidth(sheet, "F", "F", 50)

	for i, c := range companies {
		record := []string{
			fmt.Sprintf("%d", i+1),
			c.Name,
			c.Level.String(),
			c.Role,
			c.Locations,
			c.DisplayTechnologies(),
		}
		if err := setRow(f, sheet, i+2, record); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func joinTiers(tiers []catalog.Tier) string {
	names := make([]string, 0, len(tiers))
	for _, t := range tiers {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

func withExtension(path, ext string) string {
	if !strings.HasSuffix(strings.ToLower(path), ext) {
		path += ext
	}
	return filepath.Clean(path)
}
