package utils

import (
	"testing"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

func TestValidateScheduleRoster(t *testing.T) {
	t.Run("合法的坐班表", func(t *testing.T) {
		schedule := domain.NewMonthlySchedule()
		schedule.AddEmployee(domain.Monday, domain.Employee{ID: 1, Name: "张伟"})
		schedule.AddEmployee(domain.Monday, domain.Employee{ID: 2, Name: "李芳"})

		if err := ValidateScheduleRoster(schedule); err != nil {
			t.Errorf("ValidateScheduleRoster() 返回错误: %v", err)
		}
	})

	t.Run("同一天出现重复员工", func(t *testing.T) {
		schedule := domain.NewMonthlySchedule()
		schedule[domain.Monday] = []domain.Employee{
			{ID: 1, Name: "张伟"},
			{ID: 1, Name: "张伟"},
		}

		if err := ValidateScheduleRoster(schedule); err == nil {
			t.Error("重复员工应返回错误")
		}
	})

	t.Run("坐班日非法", func(t *testing.T) {
		schedule := domain.NewMonthlySchedule()
		schedule[domain.Weekday("Saturday")] = []domain.Employee{{ID: 1, Name: "张伟"}}

		if err := ValidateScheduleRoster(schedule); err == nil {
			t.Error("周末不是合法的坐班日, 应返回错误")
		}
	})
}

func TestValidateYearMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		wantErr bool
	}{
		{"正常月份", 2025, 3, false},
		{"范围下界", 2000, 1, false},
		{"范围上界", 2100, 12, false},
		{"年份过早", 1999, 6, true},
		{"年份过晚", 2101, 6, true},
		{"月份为零", 2025, 0, true},
		{"月份过大", 2025, 13, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateYearMonth(tt.year, tt.month)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateYearMonth(%d, %d) 应返回错误", tt.year, tt.month)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateYearMonth(%d, %d) 返回错误: %v", tt.year, tt.month, err)
			}
		})
	}
}
