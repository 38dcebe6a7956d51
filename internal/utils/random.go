package utils

import (
	"math/rand"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

// 随机坐班天数，大部分员工每周坐班两到三天
var requiredDaysPool = []int32{1, 2, 2, 2, 3, 3, 3, 5}

func GenerateRandomRequiredDays() int32 {
	return requiredDaysPool[rand.Intn(len(requiredDaysPool))]
}

// GenerateRandomFixedDays 用 Fisher-Yates 洗牌算法生成 n 个随机的固定坐班日
func GenerateRandomFixedDays(n int) []domain.Weekday {
	days := domain.Weekdays()

	for i := len(days) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		days[i], days[j] = days[j], days[i]
	}

	if n > len(days) {
		n = len(days)
	}
	return days[:n]
}

func GenerateRandomSex() domain.Sex {
	if rand.Intn(2) == 0 {
		return domain.SexMale
	}
	return domain.SexFemale
}

func GenerateRandomRole() domain.Role {
	roles := domain.Roles()
	return roles[rand.Intn(len(roles))]
}

func GenerateRandomEmployee() *domain.Employee {
	employee := &domain.Employee{
		Name:         GenerateRandomChineseName(),
		Sex:          GenerateRandomSex(),
		Role:         GenerateRandomRole(),
		RequiredDays: GenerateRandomRequiredDays(),
		FixedDays:    []domain.Weekday{},
		IsNSP:        rand.Intn(10) == 0,
	}

	// 少部分员工的坐班日是固定的
	if rand.Intn(5) == 0 {
		employee.FixedDays = GenerateRandomFixedDays(int(employee.RequiredDays))
	}

	return employee
}
