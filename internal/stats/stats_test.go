package stats

import (
	"testing"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

func TestBuild(t *testing.T) {
	schedule := domain.NewMonthlySchedule()
	schedule.AddEmployee(domain.Monday, domain.Employee{ID: 1, Name: "张伟", Sex: domain.SexMale, Role: domain.RoleITSupport})
	schedule.AddEmployee(domain.Monday, domain.Employee{ID: 2, Name: "李芳", Sex: domain.SexFemale, Role: domain.RoleDataAnalyst})
	schedule.AddEmployee(domain.Wednesday, domain.Employee{ID: 1, Name: "张伟", Sex: domain.SexMale, Role: domain.RoleITSupport})

	statistics := Build(schedule)

	if statistics.DayCounts[domain.Monday] != 2 {
		t.Errorf("周一的人数 = %d, 期望 2", statistics.DayCounts[domain.Monday])
	}
	if statistics.DayCounts[domain.Tuesday] != 0 {
		t.Errorf("周二的人数 = %d, 期望 0", statistics.DayCounts[domain.Tuesday])
	}

	if statistics.SexDistribution[domain.Monday][domain.SexMale] != 1 ||
		statistics.SexDistribution[domain.Monday][domain.SexFemale] != 1 {
		t.Errorf("周一的性别分布 = %v, 期望男女各一人", statistics.SexDistribution[domain.Monday])
	}

	if statistics.RoleDistribution[domain.Wednesday][domain.RoleITSupport] != 1 {
		t.Errorf("周三的岗位分布 = %v, 期望 IT Support 一人", statistics.RoleDistribution[domain.Wednesday])
	}

	// 员工 1 在两个坐班日出现，但只算一位员工
	if statistics.TotalEmployees != 2 {
		t.Errorf("TotalEmployees = %d, 期望 2", statistics.TotalEmployees)
	}

	// 总坐班人次为 3，平均每天 0.6
	if statistics.AverageDailyAttendance != 0.6 {
		t.Errorf("AverageDailyAttendance = %v, 期望 0.6", statistics.AverageDailyAttendance)
	}
}

func TestBuildEmptySchedule(t *testing.T) {
	statistics := Build(domain.NewMonthlySchedule())

	if statistics.TotalEmployees != 0 {
		t.Errorf("TotalEmployees = %d, 期望 0", statistics.TotalEmployees)
	}
	if statistics.AverageDailyAttendance != 0 {
		t.Errorf("AverageDailyAttendance = %v, 期望 0", statistics.AverageDailyAttendance)
	}
}
