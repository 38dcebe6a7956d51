package utils

import (
	"testing"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

func TestNameSortKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"中文姓名转拼音", "张伟", "zhangwei"},
		{"英文姓名转小写", "Alice", "alice"},
		{"中英混排", "张Alice", "zhangalice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameSortKey(tt.input); got != tt.expected {
				t.Errorf("NameSortKey(%q) = %q, 期望 %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSortEmployeesByName(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, Name: "张伟"},
		{ID: 2, Name: "Alice"},
		{ID: 3, Name: "李芳"},
	}

	SortEmployeesByName(employees)

	expected := []string{"Alice", "李芳", "张伟"}
	for i, name := range expected {
		if employees[i].Name != name {
			t.Errorf("排序后第 %d 位员工 = %s, 期望 %s", i+1, employees[i].Name, name)
		}
	}
}

func TestSortRosterNames(t *testing.T) {
	schedule := domain.NewMonthlySchedule()
	schedule.AddEmployee(domain.Monday, domain.Employee{ID: 1, Name: "张伟"})
	schedule.AddEmployee(domain.Monday, domain.Employee{ID: 2, Name: "李芳"})

	SortRosterNames(schedule)

	if schedule[domain.Monday][0].Name != "李芳" {
		t.Errorf("周一名单的第一位 = %s, 期望 李芳", schedule[domain.Monday][0].Name)
	}
}
