package domain

import (
	"fmt"
	"strings"
	"time"
)

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// ParseSex 解析性别，匹配时不区分大小写。
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return SexMale, nil
	case "female":
		return SexFemale, nil
	default:
		return "", fmt.Errorf("无效的性别: %s", s)
	}
}

// Role 表示员工的岗位。
type Role string

const (
	RoleHumanResourceManager    Role = "Human Resource Manager"
	RoleAILLMEngineer           Role = "AI-LLM Engineer"
	RoleSocialMediaMarketing    Role = "Social Media Marketing"
	RoleITSupport               Role = "IT Support"
	RoleMachineLearningEngineer Role = "Machine Learning Engineer"
	RoleDataScientist           Role = "Data Scientist"
	RoleDataAnalyst             Role = "Data Analyst"
	RoleFullStackEngineer       Role = "Full-stack Engineer"
	RoleBackendEngineer         Role = "Backend Engineer"
	RoleFrontendEngineer        Role = "Frontend Engineer"
	RoleBlockchainEngineer      Role = "Blockchain Engineer"
	RoleQAEngineer              Role = "QA Engineer"
	RoleProjectManager          Role = "Project Manager"
	RoleUIUXDesigner            Role = "UI/UX Designer"
	RoleMobileEngineer          Role = "Mobile Engineer"
	RoleDevOpsEngineer          Role = "DevOps Engineer"
	RoleOperationsManager       Role = "Operations Manager"
)

func Roles() []Role {
	return []Role{
		RoleHumanResourceManager,
		RoleAILLMEngineer,
		RoleSocialMediaMarketing,
		RoleITSupport,
		RoleMachineLearningEngineer,
		RoleDataScientist,
		RoleDataAnalyst,
		RoleFullStackEngineer,
		RoleBackendEngineer,
		RoleFrontendEngineer,
		RoleBlockchainEngineer,
		RoleQAEngineer,
		RoleProjectManager,
		RoleUIUXDesigner,
		RoleMobileEngineer,
		RoleDevOpsEngineer,
		RoleOperationsManager,
	}
}

// ParseRole 解析岗位名称，必须与岗位表中的名称完全一致。
func ParseRole(s string) (Role, error) {
	for _, role := range Roles() {
		if s == string(role) {
			return role, nil
		}
	}
	return "", fmt.Errorf("无效的岗位: %s", s)
}

// Employee 的 IsNSP 字段只做保存，排班时不参与任何计算。
type Employee struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Sex          Sex       `json:"sex"`
	Role         Role      `json:"role"`
	RequiredDays int32     `json:"requiredDays"`
	FixedDays    []Weekday `json:"fixedDays"`
	IsNSP        bool      `json:"isNSP"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
