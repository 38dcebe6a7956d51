package scheduler

import (
	"sort"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

// shuffleEmployees 打乱同一分组内员工的处理顺序
func (s *Scheduler) shuffleEmployees(employees []domain.Employee) {
	s.rng.Shuffle(len(employees), func(i, j int) {
		employees[i], employees[j] = employees[j], employees[i]
	})
}

// sortedQuotasDesc 返回各分组的坐班天数，从大到小排列
func sortedQuotasDesc(buckets map[int32][]domain.Employee) []int32 {
	quotas := make([]int32, 0, len(buckets))
	for quota := range buckets {
		quotas = append(quotas, quota)
	}
	sort.Slice(quotas, func(i, j int) bool {
		return quotas[i] > quotas[j]
	})
	return quotas
}
