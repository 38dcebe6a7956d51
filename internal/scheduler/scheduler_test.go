package scheduler

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

func newTestEmployee(id int64, requiredDays int32, fixedDays ...domain.Weekday) domain.Employee {
	return domain.Employee{
		ID:           id,
		Name:         "员工",
		Sex:          domain.SexMale,
		Role:         domain.RoleITSupport,
		RequiredDays: requiredDays,
		FixedDays:    fixedDays,
	}
}

func mustGenerate(t *testing.T, employees []domain.Employee, past domain.PastSchedules, seed int64) domain.MonthlySchedule {
	t.Helper()

	s, err := New(employees, past, WithRandSource(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New() 返回错误: %v", err)
	}

	schedule, err := s.Generate()
	if err != nil {
		t.Fatalf("Generate() 返回错误: %v", err)
	}

	return schedule
}

func TestCombinationCatalog(t *testing.T) {
	tests := []struct {
		name         string
		requiredDays int32
		count        int
	}{
		{"每周一天有五个组合", 1, 5},
		{"每周两天有六个组合", 2, 6},
		{"每周三天只有一个组合", 3, 1},
		{"每周五天只有一个组合", 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combinations, exists := combinationCatalog[tt.requiredDays]
			if !exists {
				t.Fatalf("组合表中没有每周坐班 %d 天的条目", tt.requiredDays)
			}
			if len(combinations) != tt.count {
				t.Errorf("组合数量 = %d, 期望 %d", len(combinations), tt.count)
			}
			for _, combination := range combinations {
				if len(combination) != int(tt.requiredDays) {
					t.Errorf("组合 %v 的天数 = %d, 期望 %d", combination, len(combination), tt.requiredDays)
				}
			}
		})
	}
}

func TestCombinationCatalogNoAdjacentPairs(t *testing.T) {
	index := map[domain.Weekday]int{}
	for i, day := range domain.Weekdays() {
		index[day] = i
	}

	for _, combination := range combinationCatalog[2] {
		gap := index[combination[1]] - index[combination[0]]
		if gap < 0 {
			gap = -gap
		}
		if gap < 2 {
			t.Errorf("每周两天的组合 %v 包含相邻的坐班日", combination)
		}
	}
}

func TestNewRejectsUnmappedRequiredDays(t *testing.T) {
	employees := []domain.Employee{newTestEmployee(1, 4)}

	_, err := New(employees, nil)
	if err == nil {
		t.Fatal("每周坐班 4 天没有对应的组合，New() 应当返回错误")
	}
	if !strings.Contains(err.Error(), "4") {
		t.Errorf("错误信息应包含非法的坐班天数，实际为: %v", err)
	}
}

func TestNewAllowsFixedEmployeeWithUnmappedRequiredDays(t *testing.T) {
	// 固定坐班的员工不走组合表，坐班天数不在组合表中也不报错
	employees := []domain.Employee{newTestEmployee(1, 4, domain.Monday, domain.Tuesday)}

	if _, err := New(employees, nil); err != nil {
		t.Fatalf("New() 返回错误: %v", err)
	}
}

func TestGenerateFixedOnly(t *testing.T) {
	employees := []domain.Employee{newTestEmployee(1, 1, domain.Tuesday)}

	schedule := mustGenerate(t, employees, nil, 1)

	for _, day := range domain.Weekdays() {
		switch day {
		case domain.Tuesday:
			if len(schedule[day]) != 1 || schedule[day][0].ID != 1 {
				t.Errorf("周二的名单 = %v, 期望只有员工 1", schedule[day])
			}
		default:
			if len(schedule[day]) != 0 {
				t.Errorf("%s 的名单应为空, 实际为 %v", day, schedule[day])
			}
		}
	}
}

func TestGenerateDeduplicatesFixedDays(t *testing.T) {
	// 固定坐班日重复时只排一次
	employees := []domain.Employee{newTestEmployee(1, 2, domain.Monday, domain.Monday)}

	schedule := mustGenerate(t, employees, nil, 1)

	if len(schedule[domain.Monday]) != 1 {
		t.Errorf("周一的名单长度 = %d, 期望 1", len(schedule[domain.Monday]))
	}
}

func TestGenerateQuotaSatisfaction(t *testing.T) {
	employees := []domain.Employee{
		newTestEmployee(1, 1),
		newTestEmployee(2, 2),
		newTestEmployee(3, 3),
		newTestEmployee(4, 5),
		newTestEmployee(5, 2),
	}

	for seed := int64(0); seed < 20; seed++ {
		schedule := mustGenerate(t, employees, nil, seed)

		for _, employee := range employees {
			days := schedule.EmployeeDays(employee.ID)
			if len(days) != int(employee.RequiredDays) {
				t.Errorf("seed %d: 员工 %d 被安排了 %d 天, 期望 %d 天", seed, employee.ID, len(days), employee.RequiredDays)
			}
		}
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	employees := []domain.Employee{
		newTestEmployee(1, 2, domain.Monday, domain.Wednesday),
		newTestEmployee(2, 3),
		newTestEmployee(3, 5),
		newTestEmployee(4, 1),
	}

	for seed := int64(0); seed < 20; seed++ {
		schedule := mustGenerate(t, employees, nil, seed)

		for _, day := range domain.Weekdays() {
			seen := make(map[int64]bool)
			for _, employee := range schedule[day] {
				if seen[employee.ID] {
					t.Errorf("seed %d: %s 的名单中员工 %d 重复出现", seed, day, employee.ID)
				}
				seen[employee.ID] = true
			}
		}
	}
}

func TestGenerateDeterministicCombinations(t *testing.T) {
	// 每周三天和五天都只有一个组合，结果与随机种子无关
	employees := []domain.Employee{
		newTestEmployee(1, 3),
		newTestEmployee(2, 5),
	}

	for seed := int64(0); seed < 10; seed++ {
		schedule := mustGenerate(t, employees, nil, seed)

		threeDays := schedule.EmployeeDays(1)
		for _, day := range []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday} {
			if !threeDays.Has(day) {
				t.Errorf("seed %d: 每周三天的员工没有被安排在 %s", seed, day)
			}
		}
		if threeDays.Has(domain.Tuesday) || threeDays.Has(domain.Thursday) {
			t.Errorf("seed %d: 每周三天的员工被安排在了周二或周四", seed)
		}

		fiveDays := schedule.EmployeeDays(2)
		if len(fiveDays) != 5 {
			t.Errorf("seed %d: 每周五天的员工只被安排了 %d 天", seed, len(fiveDays))
		}
	}
}

func TestGenerateQuotaTwoCombinationFromCatalog(t *testing.T) {
	employees := []domain.Employee{newTestEmployee(1, 2)}

	for seed := int64(0); seed < 20; seed++ {
		schedule := mustGenerate(t, employees, nil, seed)

		days := schedule.EmployeeDays(1).Days()
		if len(days) != 2 {
			t.Fatalf("seed %d: 员工被安排了 %d 天, 期望 2 天", seed, len(days))
		}

		found := false
		for _, combination := range combinationCatalog[2] {
			match := domain.NewWeekdaySet(combination...)
			if match.Has(days[0]) && match.Has(days[1]) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("seed %d: 安排结果 %v 不在每周两天的组合表中", seed, days)
		}
	}
}

func TestGenerateBalanceTendency(t *testing.T) {
	// 十位每周坐班一天的员工，平均下来每天两人，极差应该很小
	employees := make([]domain.Employee, 0, 10)
	for id := int64(1); id <= 10; id++ {
		employees = append(employees, newTestEmployee(id, 1))
	}

	totalSpread := 0
	const runs = 50
	for seed := int64(0); seed < runs; seed++ {
		schedule := mustGenerate(t, employees, nil, seed)

		minCount, maxCount := len(employees), 0
		for _, day := range domain.Weekdays() {
			count := len(schedule[day])
			if count < minCount {
				minCount = count
			}
			if count > maxCount {
				maxCount = count
			}
		}
		totalSpread += maxCount - minCount
	}

	if average := float64(totalSpread) / float64(runs); average > 2.0 {
		t.Errorf("每天人数的平均极差 = %.2f, 期望不超过 2", average)
	}
}

func TestGenerateRepetitionAvoidance(t *testing.T) {
	// 上个月在周一坐班的员工这个月应该尽量避开周一
	employees := []domain.Employee{newTestEmployee(1, 1)}
	past := domain.PastSchedules{
		1: {domain.NewWeekdaySet(domain.Monday)},
	}

	mondayCount, wednesdayCount := 0, 0
	for seed := int64(0); seed < 100; seed++ {
		schedule := mustGenerate(t, employees, past, seed)

		days := schedule.EmployeeDays(1)
		if days.Has(domain.Monday) {
			mondayCount++
		}
		if days.Has(domain.Wednesday) {
			wednesdayCount++
		}
	}

	if mondayCount >= wednesdayCount {
		t.Errorf("周一被安排了 %d 次, 周三被安排了 %d 次, 重复度惩罚没有生效", mondayCount, wednesdayCount)
	}
}

func TestPastDayFrequencies(t *testing.T) {
	// 三个月的历史记录只保留最近两个月，较早的月份权重 1.0，较近的 0.625
	past := domain.PastSchedules{
		1: {
			domain.NewWeekdaySet(domain.Monday),
			domain.NewWeekdaySet(domain.Tuesday),
			domain.NewWeekdaySet(domain.Wednesday),
		},
	}

	s, err := New([]domain.Employee{newTestEmployee(1, 1)}, past)
	if err != nil {
		t.Fatalf("New() 返回错误: %v", err)
	}

	frequencies := s.pastDayFrequencies(1)

	if frequencies[domain.Monday] != 0 {
		t.Errorf("最早一个月应被丢弃, 周一的频率 = %v", frequencies[domain.Monday])
	}
	if frequencies[domain.Tuesday] != 1.0 {
		t.Errorf("周二的频率 = %v, 期望 1.0", frequencies[domain.Tuesday])
	}
	if frequencies[domain.Wednesday] != 0.625 {
		t.Errorf("周三的频率 = %v, 期望 0.625", frequencies[domain.Wednesday])
	}
}

func TestPastDayFrequenciesNoHistory(t *testing.T) {
	s, err := New([]domain.Employee{newTestEmployee(1, 1)}, nil)
	if err != nil {
		t.Fatalf("New() 返回错误: %v", err)
	}

	frequencies := s.pastDayFrequencies(1)
	for _, day := range domain.Weekdays() {
		if frequencies[day] != 0 {
			t.Errorf("没有历史记录时 %s 的频率 = %v, 期望 0", day, frequencies[day])
		}
	}
}

func TestDayLoadImbalance(t *testing.T) {
	tests := []struct {
		name     string
		counts   []int
		expected float64
	}{
		{"完全均衡", []int{2, 2, 2, 2, 2}, 0},
		{"一人之差", []int{1, 0, 0, 0, 0}, 0.8},
		{"全部集中在一天", []int{5, 0, 0, 0, 0}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			load := newDayLoad()
			for i, day := range domain.Weekdays() {
				load[day] = tt.counts[i]
			}

			got := load.imbalance()
			if diff := got - tt.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("imbalance() = %v, 期望 %v", got, tt.expected)
			}
		})
	}
}
