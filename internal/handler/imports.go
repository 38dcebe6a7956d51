package handler

import (
	"io"
	"net/http"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/utils"
)

// ImportEmployees 从请求体中的 JSON 数组批量导入员工
// 任何一条记录有误都会让整个导入失败，不会出现只导入一半的情况
func (h *Handler) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	employees, err := utils.ParseEmployeeImport(data)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	list := make([]*domain.Employee, 0, len(employees))
	for i := range employees {
		list = append(list, &employees[i])
	}

	if err := h.repository.CreateEmployees(list); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "员工导入成功", map[string]int{"imported": len(list)})
}
