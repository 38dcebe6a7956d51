package domain

import "testing"

func TestMonthlyScheduleAddEmployeeIdempotent(t *testing.T) {
	schedule := NewMonthlySchedule()
	employee := Employee{ID: 1, Name: "张伟"}

	if !schedule.AddEmployee(Monday, employee) {
		t.Error("第一次加入应返回 true")
	}
	if schedule.AddEmployee(Monday, employee) {
		t.Error("重复加入应返回 false")
	}
	if len(schedule[Monday]) != 1 {
		t.Errorf("周一的名单长度 = %d, 期望 1", len(schedule[Monday]))
	}
}

func TestMonthlyScheduleRemoveEmployee(t *testing.T) {
	schedule := NewMonthlySchedule()
	schedule.AddEmployee(Monday, Employee{ID: 1, Name: "张伟"})
	schedule.AddEmployee(Wednesday, Employee{ID: 1, Name: "张伟"})
	schedule.AddEmployee(Monday, Employee{ID: 2, Name: "李芳"})

	schedule.RemoveEmployee(1)

	if schedule.ContainsEmployee(Monday, 1) || schedule.ContainsEmployee(Wednesday, 1) {
		t.Error("员工 1 应从所有坐班日中被移除")
	}
	if !schedule.ContainsEmployee(Monday, 2) {
		t.Error("员工 2 不应受影响")
	}
}

func TestMonthlyScheduleEmployeeDays(t *testing.T) {
	schedule := NewMonthlySchedule()
	schedule.AddEmployee(Tuesday, Employee{ID: 1})
	schedule.AddEmployee(Friday, Employee{ID: 1})

	days := schedule.EmployeeDays(1)
	if len(days) != 2 || !days.Has(Tuesday) || !days.Has(Friday) {
		t.Errorf("EmployeeDays(1) = %v, 期望 {Tuesday, Friday}", days.Days())
	}
}

func TestMonthlyScheduleDistinctEmployees(t *testing.T) {
	schedule := NewMonthlySchedule()
	schedule.AddEmployee(Monday, Employee{ID: 1, Name: "张伟"})
	schedule.AddEmployee(Wednesday, Employee{ID: 1, Name: "张伟"})
	schedule.AddEmployee(Monday, Employee{ID: 2, Name: "李芳"})

	employees := schedule.DistinctEmployees()
	if len(employees) != 2 {
		t.Errorf("DistinctEmployees() 返回 %d 位员工, 期望 2", len(employees))
	}
}

func TestWeekdaySetDaysOrder(t *testing.T) {
	set := NewWeekdaySet(Friday, Monday, Wednesday)

	days := set.Days()
	expected := []Weekday{Monday, Wednesday, Friday}
	if len(days) != len(expected) {
		t.Fatalf("Days() 返回 %d 个坐班日, 期望 %d", len(days), len(expected))
	}
	for i := range expected {
		if days[i] != expected[i] {
			t.Errorf("Days()[%d] = %s, 期望 %s", i, days[i], expected[i])
		}
	}
}
