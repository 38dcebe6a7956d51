// Package export 负责把月度坐班表导出成 CSV 和 XLSX 文件。
// 两种格式的布局一致: 第一行表头，第二行每天的坐班人数，之后每行一位员工，
// 员工坐班的那天用 X 标记。
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/utils"
)

// Filename 返回导出文件的文件名，月份用英文名称
func Filename(year int32, month int32, extension string) string {
	return fmt.Sprintf("office_schedule_%s_%d.%s", time.Month(month).String(), year, extension)
}

// sortedEmployees 返回坐班表中出现过的员工，按姓名排序
func sortedEmployees(schedule domain.MonthlySchedule) []domain.Employee {
	employees := schedule.DistinctEmployees()
	utils.SortEmployeesByName(employees)
	return employees
}

func BuildCSV(schedule domain.MonthlySchedule) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Name"}
	for _, day := range domain.Weekdays() {
		header = append(header, string(day))
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	// 人数行的第一格留空，和表头的 Name 列对齐
	counts := []string{""}
	for _, day := range domain.Weekdays() {
		counts = append(counts, strconv.Itoa(len(schedule[day])))
	}
	if err := writer.Write(counts); err != nil {
		return nil, err
	}

	for _, employee := range sortedEmployees(schedule) {
		row := []string{employee.Name}
		for _, day := range domain.Weekdays() {
			if schedule.ContainsEmployee(day, employee.ID) {
				row = append(row, "X")
			} else {
				row = append(row, "")
			}
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
