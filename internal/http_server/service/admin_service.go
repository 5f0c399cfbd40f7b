// Package service
package service

import (
	"context"
	"time"

	"github.com/flightlog-collective/skylog/internal/http_server/middleware"
	"github.com/flightlog-collective/skylog/internal/identity"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/flightlog-collective/skylog/internal/utils"
)

const (
	defaultRecentUsers    = 5
	defaultSecurityEvents = 50
)

type AdminService struct {
	logger            log.LoggerInterface
	userOperation     operation.UserOperationInterface
	aircraftOperation operation.AircraftOperationInterface
	flightOperation   operation.FlightOperationInterface
	auditService      AuditServiceInterface
	identityClient    *identity.Client
	payloadMonitor    *middleware.PayloadMonitor
}

func NewAdminService(
	logger log.LoggerInterface,
	userOperation operation.UserOperationInterface,
	aircraftOperation operation.AircraftOperationInterface,
	flightOperation operation.FlightOperationInterface,
	auditService AuditServiceInterface,
	identityClient *identity.Client,
	payloadMonitor *middleware.PayloadMonitor,
) *AdminService {
	return &AdminService{
		logger:            logger,
		userOperation:     userOperation,
		aircraftOperation: aircraftOperation,
		flightOperation:   flightOperation,
		auditService:      auditService,
		identityClient:    identityClient,
		payloadMonitor:    payloadMonitor,
	}
}

var (
	SuccessGetAdminStats     = ApiStatus{StatusName: "GET_ADMIN_STATS", Description: "admin stats fetched", HttpCode: Ok}
	SuccessGetRecentUsers    = ApiStatus{StatusName: "GET_RECENT_USERS", Description: "recent users fetched", HttpCode: Ok}
	SuccessGetUserList       = ApiStatus{StatusName: "GET_USER_LIST", Description: "user list fetched", HttpCode: Ok}
	SuccessVerifyPilot       = ApiStatus{StatusName: "VERIFY_PILOT", Description: "pilot verification toggled", HttpCode: Ok}
	SuccessEditUserRole      = ApiStatus{StatusName: "EDIT_USER_ROLE", Description: "user role updated", HttpCode: Ok}
	SuccessDeleteUser        = ApiStatus{StatusName: "DELETE_USER", Description: "user deleted", HttpCode: Ok}
	SuccessGetSecurityEvents = ApiStatus{StatusName: "GET_SECURITY_EVENTS", Description: "security events fetched", HttpCode: Ok}
)

func (adminService *AdminService) GetAdminStats(req *RequestAdminStats) *ApiResponse[ResponseAdminStats] {
	if _, res := GetUserAndCheckRole[ResponseAdminStats](adminService.userOperation, req.Uid, operation.RoleAdmin); res != nil {
		return res
	}
	totalUsers, err := adminService.userOperation.GetTotalUsers()
	if err != nil {
		return NewApiResponse[ResponseAdminStats](&ErrDatabaseFail, Unsatisfied, nil)
	}
	totalPilots, err := adminService.userOperation.GetTotalPilots()
	if err != nil {
		return NewApiResponse[ResponseAdminStats](&ErrDatabaseFail, Unsatisfied, nil)
	}
	totalAircraft, err := adminService.aircraftOperation.GetTotalAircraft()
	if err != nil {
		return NewApiResponse[ResponseAdminStats](&ErrDatabaseFail, Unsatisfied, nil)
	}
	totalFlights, err := adminService.flightOperation.GetTotalFlights()
	if err != nil {
		return NewApiResponse[ResponseAdminStats](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAdminStats, Unsatisfied, &ResponseAdminStats{
		TotalUsers:    totalUsers,
		TotalPilots:   totalPilots,
		TotalAircraft: totalAircraft,
		TotalFlights:  totalFlights,
	})
}

func (adminService *AdminService) GetRecentUsers(req *RequestRecentUsers) *ApiResponse[ResponseRecentUsers] {
	if _, res := GetUserAndCheckRole[ResponseRecentUsers](adminService.userOperation, req.Uid, operation.RoleAdmin); res != nil {
		return res
	}
	users, err := adminService.userOperation.GetRecentUsers(defaultRecentUsers)
	if err != nil {
		return NewApiResponse[ResponseRecentUsers](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetRecentUsers, Unsatisfied, &ResponseRecentUsers{Items: users})
}

func (adminService *AdminService) GetUserList(req *RequestAdminUserList) *ApiResponse[ResponseAdminUserList] {
	if _, res := GetUserAndCheckRole[ResponseAdminUserList](adminService.userOperation, req.Uid, operation.RoleAdmin); res != nil {
		return res
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 20
	}
	users, total, err := adminService.userOperation.GetUsers(req.Page, req.PageSize)
	if err != nil {
		return NewApiResponse[ResponseAdminUserList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetUserList, Unsatisfied, &ResponseAdminUserList{
		Items:    users,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}

// pushRoleToProvider 本地角色为准, 同步到身份提供方失败不影响结果
func (adminService *AdminService) pushRoleToProvider(user *operation.User) {
	if !adminService.identityClient.Enabled() || user.ProviderId == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := adminService.identityClient.UpdateUserMetadata(ctx, user.ProviderId, map[string]interface{}{
		"role": string(user.Role),
	}); err != nil {
		adminService.logger.WarnF("Failed to push role of user %s to identity provider: %v", user.ID, err)
	}
}

func (adminService *AdminService) VerifyPilot(req *RequestVerifyPilot) *ApiResponse[ResponseVerifyPilot] {
	if _, res := GetUserAndCheckRole[ResponseVerifyPilot](adminService.userOperation, req.Uid, operation.RoleAdmin); res != nil {
		return res
	}
	target, res := CallDBFuncAndCheckError[operation.User, ResponseVerifyPilot](func() (*operation.User, error) {
		return adminService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}
	// 只在USER和PILOT之间切换, 不触碰管理员
	if target.Role == operation.RoleAdmin {
		return NewApiResponse[ResponseVerifyPilot](&ErrIllegalParam, Unsatisfied, nil)
	}
	oldRole := target.Role
	newRole, eventType := operation.RoleUser, operation.PilotUnverified
	if req.Verified {
		newRole, eventType = operation.RolePilot, operation.PilotVerified
	}
	if oldRole == newRole {
		return NewApiResponse(&SuccessVerifyPilot, Unsatisfied, (*ResponseVerifyPilot)(target))
	}
	if err := adminService.userOperation.UpdateUserRole(target, newRole); err != nil {
		return NewApiResponse[ResponseVerifyPilot](&ErrDatabaseFail, Unsatisfied, nil)
	}

	adminService.auditService.Record(eventType, req.Uid, "user", target.ID, req.Ip, req.UserAgent,
		map[string]interface{}{"role": oldRole}, map[string]interface{}{"role": newRole})
	adminService.pushRoleToProvider(target)

	return NewApiResponse(&SuccessVerifyPilot, Unsatisfied, (*ResponseVerifyPilot)(target))
}

func (adminService *AdminService) EditUserRole(req *RequestEditUserRole) *ApiResponse[ResponseEditUserRole] {
	if _, res := GetUserAndCheckRole[ResponseEditUserRole](adminService.userOperation, req.Uid, operation.RoleAdmin); res != nil {
		return res
	}
	newRole := operation.Role(req.Role)
	if !newRole.Valid() {
		return NewApiResponse[ResponseEditUserRole](&ErrIllegalParam, Unsatisfied, nil)
	}
	target, res := CallDBFuncAndCheckError[operation.User, ResponseEditUserRole](func() (*operation.User, error) {
		return adminService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}
	oldRole := target.Role
	if oldRole != newRole {
		if err := adminService.userOperation.UpdateUserRole(target, newRole); err != nil {
			return NewApiResponse[ResponseEditUserRole](&ErrDatabaseFail, Unsatisfied, nil)
		}
		adminService.auditService.Record(operation.UserRoleChanged, req.Uid, "user", target.ID, req.Ip, req.UserAgent,
			map[string]interface{}{"role": oldRole}, map[string]interface{}{"role": newRole})
		adminService.pushRoleToProvider(target)
	}
	return NewApiResponse(&SuccessEditUserRole, Unsatisfied, (*ResponseEditUserRole)(target))
}

func (adminService *AdminService) DeleteUser(req *RequestDeleteUser) *ApiResponse[ResponseDeleteUser] {
	if _, res := GetUserAndCheckRole[ResponseDeleteUser](adminService.userOperation, req.Uid, operation.RoleAdmin); res != nil {
		return res
	}
	// 禁止删除自己
	if req.TargetUid == req.Uid {
		return NewApiResponse[ResponseDeleteUser](&ErrNoPermission, Unsatisfied, nil)
	}
	target, res := CallDBFuncAndCheckError[operation.User, ResponseDeleteUser](func() (*operation.User, error) {
		return adminService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}
	if err := adminService.userOperation.DeleteUser(target); err != nil {
		return NewApiResponse[ResponseDeleteUser](&ErrDatabaseFail, Unsatisfied, nil)
	}

	adminService.auditService.Record(operation.EntityDeleted, req.Uid, "user", target.ID, req.Ip, req.UserAgent, target, nil)

	return NewApiResponse(&SuccessDeleteUser, Unsatisfied, &ResponseDeleteUser{Deleted: true})
}

func (adminService *AdminService) GetSecurityEvents(req *RequestSecurityEvents) *ApiResponse[ResponseSecurityEvents] {
	if _, res := GetUserAndCheckRole[ResponseSecurityEvents](adminService.userOperation, req.Uid, operation.RoleAdmin); res != nil {
		return res
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSecurityEvents
	}
	records := adminService.payloadMonitor.Recent(limit)
	events := utils.MapTo(records, func(record *middleware.PayloadRecord) *SecurityEvent {
		return &SecurityEvent{
			Time:     record.Time.UTC().Format(time.RFC3339),
			Ip:       record.Ip,
			Path:     record.Path,
			Size:     record.Size,
			Findings: record.Findings,
		}
	})
	return NewApiResponse(&SuccessGetSecurityEvents, Unsatisfied, &ResponseSecurityEvents{Items: events})
}
