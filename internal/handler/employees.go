package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/utils"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 按姓名的拼音排序，和导出文件里的顺序保持一致
	list := make([]domain.Employee, 0, len(employees))
	for _, employee := range employees {
		list = append(list, *employee)
	}
	utils.SortEmployeesByName(list)

	h.successResponse(w, r, "获取员工列表成功", list)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string   `json:"name" validate:"required"`
		Sex          string   `json:"sex" validate:"required,oneof=Male Female"`
		Role         string   `json:"role" validate:"required"`
		RequiredDays int32    `json:"requiredDays" validate:"required,oneof=1 2 3 5"`
		FixedDays    []string `json:"fixedDays" validate:"omitempty,unique,dive,oneof=Monday Tuesday Wednesday Thursday Friday"`
		IsNSP        bool     `json:"isNSP"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 岗位名称中含有空格，不能用 oneof 校验，在这里单独解析
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	fixedDays := make([]domain.Weekday, 0, len(req.FixedDays))
	for _, raw := range req.FixedDays {
		day, err := domain.ParseWeekday(raw)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		fixedDays = append(fixedDays, day)
	}

	employee := &domain.Employee{
		Name:         req.Name,
		Sex:          domain.Sex(req.Sex),
		Role:         role,
		RequiredDays: req.RequiredDays,
		FixedDays:    fixedDays,
		IsNSP:        req.IsNSP,
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "员工创建成功", employee)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)
	h.successResponse(w, r, "获取员工信息成功", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         *string   `json:"name"`
		Sex          *string   `json:"sex" validate:"omitempty,oneof=Male Female"`
		Role         *string   `json:"role"`
		RequiredDays *int32    `json:"requiredDays" validate:"omitempty,oneof=1 2 3 5"`
		FixedDays    *[]string `json:"fixedDays" validate:"omitempty,unique,dive,oneof=Monday Tuesday Wednesday Thursday Friday"`
		IsNSP        *bool     `json:"isNSP"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Sex != nil {
		employee.Sex = domain.Sex(*req.Sex)
	}
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		employee.Role = role
	}
	if req.RequiredDays != nil {
		employee.RequiredDays = *req.RequiredDays
	}
	if req.FixedDays != nil {
		fixedDays := make([]domain.Weekday, 0, len(*req.FixedDays))
		for _, raw := range *req.FixedDays {
			day, err := domain.ParseWeekday(raw)
			if err != nil {
				h.badRequest(w, r, err)
				return
			}
			fixedDays = append(fixedDays, day)
		}
		employee.FixedDays = fixedDays
	}
	if req.IsNSP != nil {
		employee.IsNSP = *req.IsNSP
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "员工信息更新成功", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "员工删除成功", nil)
}

func (h *Handler) DeleteAllEmployees(w http.ResponseWriter, r *http.Request) {
	if err := h.repository.DeleteAllEmployees(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "已清空员工列表", nil)
}
