package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

// EmployeeImportItem 是导入文件中一条员工记录的格式
type EmployeeImportItem struct {
	Name         string   `json:"name"`
	Sex          string   `json:"sex"`
	Role         string   `json:"role"`
	RequiredDays int32    `json:"required_days"`
	FixedDays    []string `json:"fixed_days"`
	IsNSP        bool     `json:"is_nsp"`
}

// ParseEmployeeImport 解析员工导入文件，文件内容是一个员工记录的 JSON 数组
func ParseEmployeeImport(data []byte) ([]domain.Employee, error) {
	var items []EmployeeImportItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("导入内容不是合法的 JSON 数组: %w", err)
	}
	return ConvertEmployeeImportItems(items)
}

// ConvertEmployeeImportItems 逐条转换导入记录，任何一条有误都会让整个导入失败
func ConvertEmployeeImportItems(items []EmployeeImportItem) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0, len(items))

	for i, item := range items {
		employee, err := convertEmployeeImportItem(item)
		if err != nil {
			return nil, fmt.Errorf("第 %d 条员工记录有误: %w", i+1, err)
		}
		employees = append(employees, employee)
	}

	return employees, nil
}

func convertEmployeeImportItem(item EmployeeImportItem) (domain.Employee, error) {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return domain.Employee{}, errors.New("姓名不能为空")
	}

	sex, err := domain.ParseSex(item.Sex)
	if err != nil {
		return domain.Employee{}, err
	}

	role, err := domain.ParseRole(item.Role)
	if err != nil {
		return domain.Employee{}, err
	}

	switch item.RequiredDays {
	case 1, 2, 3, 5:
	default:
		return domain.Employee{}, fmt.Errorf("每周坐班天数 %d 没有对应的坐班组合", item.RequiredDays)
	}

	fixedDays := make([]domain.Weekday, 0, len(item.FixedDays))
	seen := make(map[domain.Weekday]bool)
	for _, raw := range item.FixedDays {
		day, err := domain.ParseWeekday(raw)
		if err != nil {
			return domain.Employee{}, err
		}
		if seen[day] {
			return domain.Employee{}, fmt.Errorf("固定坐班日 %s 重复出现", day)
		}
		seen[day] = true
		fixedDays = append(fixedDays, day)
	}

	return domain.Employee{
		Name:         name,
		Sex:          sex,
		Role:         role,
		RequiredDays: item.RequiredDays,
		FixedDays:    fixedDays,
		IsNSP:        item.IsNSP,
	}, nil
}
