package domain

import "time"

// MonthlySchedule 表示一个月的坐班表，键为坐班日，值为当天坐班的员工列表。
type MonthlySchedule map[Weekday][]Employee

// NewMonthlySchedule 创建一张空坐班表，五个坐班日都有空的员工列表。
func NewMonthlySchedule() MonthlySchedule {
	schedule := make(MonthlySchedule, len(Weekdays()))
	for _, day := range Weekdays() {
		schedule[day] = []Employee{}
	}
	return schedule
}

func (s MonthlySchedule) ContainsEmployee(day Weekday, employeeID int64) bool {
	for _, employee := range s[day] {
		if employee.ID == employeeID {
			return true
		}
	}
	return false
}

// AddEmployee 将员工加入某个坐班日，若该员工当天已在坐班表中则不重复加入。
// 返回值表示是否真正加入了员工。
func (s MonthlySchedule) AddEmployee(day Weekday, employee Employee) bool {
	if s.ContainsEmployee(day, employee.ID) {
		return false
	}
	s[day] = append(s[day], employee)
	return true
}

// RemoveEmployee 将员工从所有坐班日中移除。
func (s MonthlySchedule) RemoveEmployee(employeeID int64) {
	for day, employees := range s {
		kept := employees[:0]
		for _, employee := range employees {
			if employee.ID != employeeID {
				kept = append(kept, employee)
			}
		}
		s[day] = kept
	}
}

// EmployeeDays 返回员工在本月坐班表中出现的坐班日集合。
func (s MonthlySchedule) EmployeeDays(employeeID int64) WeekdaySet {
	set := NewWeekdaySet()
	for _, day := range Weekdays() {
		if s.ContainsEmployee(day, employeeID) {
			set.Add(day)
		}
	}
	return set
}

// DistinctEmployees 返回坐班表中出现过的所有员工，每位员工只出现一次。
func (s MonthlySchedule) DistinctEmployees() []Employee {
	seen := make(map[int64]bool)
	employees := []Employee{}
	for _, day := range Weekdays() {
		for _, employee := range s[day] {
			if !seen[employee.ID] {
				seen[employee.ID] = true
				employees = append(employees, employee)
			}
		}
	}
	return employees
}

// ScheduleRecord 表示持久化后的月度坐班表，(year, month) 在库中唯一。
type ScheduleRecord struct {
	ID        int64           `json:"id"`
	Year      int32           `json:"year"`
	Month     int32           `json:"month"`
	Roster    MonthlySchedule `json:"roster"`
	CreatedAt time.Time       `json:"createdAt"`
	Version   int32           `json:"-"`
}

// PastSchedules 记录每位员工在历史月份中的坐班日集合，列表按月份从最早到最近排列。
// 某个月没有该员工的记录时直接跳过，不补空集合。
type PastSchedules map[int64][]WeekdaySet
