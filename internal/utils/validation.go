package utils

import (
	"fmt"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

// ValidateScheduleRoster 检查坐班表的约束条件:
// 坐班日必须是周一到周五，且同一天内不能出现重复的员工
func ValidateScheduleRoster(schedule domain.MonthlySchedule) error {
	for day := range schedule {
		if !domain.IsValidWeekday(string(day)) {
			return fmt.Errorf("坐班表中存在无效的坐班日: %s", day)
		}
	}

	for _, day := range domain.Weekdays() {
		seen := make(map[int64]bool)
		for _, employee := range schedule[day] {
			if seen[employee.ID] {
				return fmt.Errorf("%s 的坐班名单中存在重复员工 %s", day, employee.Name)
			}
			seen[employee.ID] = true
		}
	}

	return nil
}

// ValidateYearMonth 检查年份和月份是否在允许的范围内
func ValidateYearMonth(year int, month int) error {
	if year < 2000 || year > 2100 {
		return fmt.Errorf("年份 %d 不在允许的范围内", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("月份 %d 不在允许的范围内", month)
	}
	return nil
}
