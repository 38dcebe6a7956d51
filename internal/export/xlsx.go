package export

import (
	"strconv"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Schedule"

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	border := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		border = append(border, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return border
}

func blueFill() excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F81BD"}}
}

func BuildXLSX(schedule domain.MonthlySchedule) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      blueFill(),
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	countStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Italic: true, Size: 13, Color: "FFFFFF"},
		Fill:      blueFill(),
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	nameStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	// 有坐班的格子用紫色加粗的 X 标记
	markStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "7A52A3"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheetName, "A", "A", 17); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "F", 12); err != nil {
		return nil, err
	}

	setCell := func(col int, row int, value string, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheetName, cell, value); err != nil {
			return err
		}
		return f.SetCellStyle(sheetName, cell, cell, style)
	}

	// 第一行: 表头
	if err := setCell(1, 1, "Name", headerStyle); err != nil {
		return nil, err
	}
	for i, day := range domain.Weekdays() {
		if err := setCell(i+2, 1, string(day), headerStyle); err != nil {
			return nil, err
		}
	}

	// 第二行: 每天的坐班人数
	if err := setCell(1, 2, "", countStyle); err != nil {
		return nil, err
	}
	for i, day := range domain.Weekdays() {
		if err := setCell(i+2, 2, strconv.Itoa(len(schedule[day])), countStyle); err != nil {
			return nil, err
		}
	}

	// 第三行开始: 每位员工一行
	for rowIndex, employee := range sortedEmployees(schedule) {
		row := rowIndex + 3

		if err := setCell(1, row, employee.Name, nameStyle); err != nil {
			return nil, err
		}

		for i, day := range domain.Weekdays() {
			if schedule.ContainsEmployee(day, employee.ID) {
				if err := setCell(i+2, row, "X", markStyle); err != nil {
					return nil, err
				}
			} else {
				if err := setCell(i+2, row, "", dataStyle); err != nil {
					return nil, err
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
