package scheduler

import (
	"math"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

// assignFixedEmployees 先把固定坐班的员工排进坐班表，返回剩下需要弹性安排的员工
func (s *Scheduler) assignFixedEmployees(schedule domain.MonthlySchedule, load dayLoad) []domain.Employee {
	flexible := make([]domain.Employee, 0, len(s.employees))

	for _, employee := range s.employees {
		if len(employee.FixedDays) == 0 {
			flexible = append(flexible, employee)
			continue
		}

		for _, day := range employee.FixedDays {
			// 固定坐班日有重复时只排一次，人数也只累加一次
			if schedule.AddEmployee(day, employee) {
				load[day]++
			}
		}
	}

	return flexible
}

// groupByRequiredDays 把弹性员工按每周坐班天数分组
func groupByRequiredDays(employees []domain.Employee) map[int32][]domain.Employee {
	buckets := make(map[int32][]domain.Employee)
	for _, employee := range employees {
		buckets[employee.RequiredDays] = append(buckets[employee.RequiredDays], employee)
	}
	return buckets
}

// pastDayFrequencies 统计员工最近几个月在各坐班日上的加权出现次数
// 最多参考最近 historyLookback 个月，保留下来的月份里较早的权重为 1.0，之后按 historyDecay 衰减
func (s *Scheduler) pastDayFrequencies(employeeID int64) map[domain.Weekday]float64 {
	history := s.past[employeeID]
	if len(history) > historyLookback {
		history = history[len(history)-historyLookback:]
	}

	frequencies := make(map[domain.Weekday]float64)
	kept := len(history)
	for i, monthDays := range history {
		weight := 1.0 - (float64(i)/float64(kept))*historyDecay
		for day, present := range monthDays {
			if present {
				frequencies[day] += weight
			}
		}
	}

	return frequencies
}

/**
 * chooseCombination 为一位弹性员工挑选本月的坐班日组合
 * totalScore = imbalance + repetitionWeight * repetition
 * 其中:
 * 		1. imbalance 为把该组合排入后五个坐班日的负载不均衡度
 * 		2. repetition 为该组合与员工历史坐班日的加权重复度
 * 分数越低越好，评分相同时保留先遇到的组合
 */
func (s *Scheduler) chooseCombination(employee domain.Employee, load dayLoad) dayCombination {
	candidates := append([]dayCombination(nil), combinationCatalog[employee.RequiredDays]...)
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	frequencies := s.pastDayFrequencies(employee.ID)

	best := candidates[0]
	bestScore := math.MaxFloat64

	for _, candidate := range candidates {
		// 在负载副本上模拟排入这个组合
		simulated := load.clone()
		for _, day := range candidate {
			simulated[day]++
		}

		repetition := 0.0
		for _, day := range candidate {
			repetition += frequencies[day]
		}

		score := simulated.imbalance() + repetitionWeight*repetition
		if score < bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best
}
