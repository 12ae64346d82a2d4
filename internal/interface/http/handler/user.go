package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/bookmarket/internal/application/user"
	"github.com/xiebiao/bookmarket/internal/interface/http/dto"
	"github.com/xiebiao/bookmarket/internal/interface/http/middleware"
	"github.com/xiebiao/bookmarket/pkg/response"
)

// UserHandler 用户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
type UserHandler struct {
	registerUseCase   *appuser.RegisterUseCase
	loginUseCase      *appuser.LoginUseCase
	profileUseCase    *appuser.GetProfileUseCase
	changeRoleUseCase *appuser.ChangeRoleUseCase
	listUsersUseCase  *appuser.ListUsersUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
	profileUseCase *appuser.GetProfileUseCase,
	changeRoleUseCase *appuser.ChangeRoleUseCase,
	listUsersUseCase *appuser.ListUsersUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase:   registerUseCase,
		loginUseCase:      loginUseCase,
		profileUseCase:    profileUseCase,
		changeRoleUseCase: changeRoleUseCase,
		listUsersUseCase:  listUsersUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新用户账号,角色默认customer
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} response.Response "注册成功"
// @Router       /api/v1/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证用户名密码,返回JWT Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response "登录成功"
// @Router       /api/v1/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetProfile 查询个人信息
// @Summary      查询个人信息
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	result, err := h.profileUseCase.Execute(c.Request.Context(), middleware.GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ChangeRole 修改用户角色(管理员)
// 操作者用户名从JWT提取,领域服务内部还会校验管理员身份
func (h *UserHandler) ChangeRole(c *gin.Context) {
	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	err := h.changeRoleUseCase.Execute(c.Request.Context(), appuser.ChangeRoleRequest{
		ActingAdmin:    middleware.GetUsername(c),
		TargetUsername: req.Username,
		NewRole:        req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListUsers 用户列表(管理员)
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
