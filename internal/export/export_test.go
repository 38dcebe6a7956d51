package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

func buildTestSchedule() domain.MonthlySchedule {
	schedule := domain.NewMonthlySchedule()
	zhang := domain.Employee{ID: 1, Name: "张伟", Sex: domain.SexMale, Role: domain.RoleITSupport}
	li := domain.Employee{ID: 2, Name: "李芳", Sex: domain.SexFemale, Role: domain.RoleDataAnalyst}

	schedule.AddEmployee(domain.Monday, zhang)
	schedule.AddEmployee(domain.Wednesday, zhang)
	schedule.AddEmployee(domain.Monday, li)
	return schedule
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name      string
		year      int32
		month     int32
		extension string
		expected  string
	}{
		{"三月的 CSV", 2025, 3, "csv", "office_schedule_March_2025.csv"},
		{"十二月的 XLSX", 2024, 12, "xlsx", "office_schedule_December_2024.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.year, tt.month, tt.extension); got != tt.expected {
				t.Errorf("Filename() = %q, 期望 %q", got, tt.expected)
			}
		})
	}
}

func TestBuildCSV(t *testing.T) {
	data, err := BuildCSV(buildTestSchedule())
	if err != nil {
		t.Fatalf("BuildCSV() 返回错误: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("导出内容不是合法的 CSV: %v", err)
	}

	expected := [][]string{
		{"Name", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		{"", "2", "0", "1", "0", "0"},
		{"李芳", "X", "", "", "", ""},
		{"张伟", "X", "", "X", "", ""},
	}

	if len(rows) != len(expected) {
		t.Fatalf("CSV 行数 = %d, 期望 %d", len(rows), len(expected))
	}
	for i := range expected {
		if strings.Join(rows[i], ",") != strings.Join(expected[i], ",") {
			t.Errorf("第 %d 行 = %v, 期望 %v", i+1, rows[i], expected[i])
		}
	}
}

func TestBuildXLSX(t *testing.T) {
	data, err := BuildXLSX(buildTestSchedule())
	if err != nil {
		t.Fatalf("BuildXLSX() 返回错误: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("导出内容不是合法的 XLSX: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	tests := []struct {
		cell     string
		expected string
	}{
		{"A1", "Name"},
		{"B1", "Monday"},
		{"F1", "Friday"},
		{"B2", "2"},
		{"D2", "1"},
		{"A3", "李芳"},
		{"B3", "X"},
		{"A4", "张伟"},
		{"D4", "X"},
		{"C4", ""},
	}

	for _, tt := range tests {
		value, err := f.GetCellValue(sheetName, tt.cell)
		if err != nil {
			t.Fatalf("读取单元格 %s 失败: %v", tt.cell, err)
		}
		if value != tt.expected {
			t.Errorf("单元格 %s = %q, 期望 %q", tt.cell, value, tt.expected)
		}
	}
}
