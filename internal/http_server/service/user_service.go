// Package service
package service

import (
	"context"

	c "github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/flightlog-collective/skylog/internal/utils"
)

type UserService struct {
	logger          log.LoggerInterface
	config          *c.HttpServerConfig
	userOperation   operation.UserOperationInterface
	flightOperation operation.FlightOperationInterface
	provisioner     *Provisioner
	auditService    AuditServiceInterface
}

func NewUserService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	userOperation operation.UserOperationInterface,
	flightOperation operation.FlightOperationInterface,
	provisioner *Provisioner,
	auditService AuditServiceInterface,
) *UserService {
	return &UserService{
		logger:          logger,
		config:          config,
		userOperation:   userOperation,
		flightOperation: flightOperation,
		provisioner:     provisioner,
		auditService:    auditService,
	}
}

var (
	SuccessGetProfile  = ApiStatus{StatusName: "GET_PROFILE", Description: "profile fetched", HttpCode: Ok}
	SuccessEditProfile = ApiStatus{StatusName: "EDIT_PROFILE", Description: "profile updated", HttpCode: Ok}
	SuccessSyncUser    = ApiStatus{StatusName: "SYNC_USER", Description: "user synchronized", HttpCode: Ok}
)

func (userService *UserService) GetCurrentProfile(req *RequestCurrentProfile) *ApiResponse[ResponseCurrentProfile] {
	user, res := CallDBFuncAndCheckError[operation.User, ResponseCurrentProfile](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.Uid)
	})
	if res != nil {
		return res
	}

	flights, err := userService.flightOperation.GetFlights(user.ID, nil)
	if err != nil {
		return NewApiResponse[ResponseCurrentProfile](&ErrDatabaseFail, Unsatisfied, nil)
	}
	totalHours := 0.0
	for _, flight := range flights {
		totalHours += flight.Duration
	}

	return NewApiResponse(&SuccessGetProfile, Unsatisfied, &ResponseCurrentProfile{
		User:         user,
		TotalFlights: int64(len(flights)),
		TotalHours:   utils.Round2(totalHours),
	})
}

func (userService *UserService) EditCurrentProfile(req *RequestEditCurrentProfile) *ApiResponse[ResponseEditCurrentProfile] {
	user, res := CallDBFuncAndCheckError[operation.User, ResponseEditCurrentProfile](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.Uid)
	})
	if res != nil {
		return res
	}

	info := make(map[string]interface{})
	if req.FirstName != nil {
		info["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		info["last_name"] = *req.LastName
	}
	if req.LicenseNumber != nil {
		info["license_number"] = *req.LicenseNumber
	}
	if req.LicenseExpiry != nil {
		info["license_expiry"] = *req.LicenseExpiry
	}
	if len(info) == 0 {
		return NewApiResponse[ResponseEditCurrentProfile](&ErrLackParam, Unsatisfied, nil)
	}

	oldValues := *user
	if err := userService.userOperation.UpdateUserInfo(user, info); err != nil {
		return NewApiResponse[ResponseEditCurrentProfile](&ErrDatabaseFail, Unsatisfied, nil)
	}

	userService.auditService.Record(operation.EntityUpdated, user.ID, "user", user.ID, req.Ip, req.UserAgent, &oldValues, user)

	return NewApiResponse(&SuccessEditProfile, Unsatisfied, (*ResponseEditCurrentProfile)(user))
}

// SyncCurrentUser 与身份提供商对账: 确保本地用户存在并协调角色
func (userService *UserService) SyncCurrentUser(req *RequestUserSync) *ApiResponse[ResponseUserSync] {
	ctx, cancel := context.WithTimeout(context.Background(), userService.config.Identity.RequestDuration)
	defer cancel()

	user, created, err := userService.provisioner.EnsureUser(ctx, req.ProviderId, "")
	if err != nil {
		return NewApiResponse[ResponseUserSync](&ErrDatabaseFail, Unsatisfied, nil)
	}

	if !created {
		userService.provisioner.BackfillProfile(ctx, user)

		inbound := userService.provisioner.DeriveRole(user.ProviderId, user.Email, string(user.Role))
		next := ReconcileRole(user.Role, inbound)
		if next != user.Role {
			oldRole := user.Role
			if err := userService.userOperation.UpdateUserRole(user, next); err != nil {
				return NewApiResponse[ResponseUserSync](&ErrDatabaseFail, Unsatisfied, nil)
			}
			userService.auditService.Record(operation.UserRoleChanged, user.ID, "user", user.ID, req.Ip, req.UserAgent,
				map[string]string{"role": string(oldRole)}, map[string]string{"role": string(next)})
		}
	}

	return NewApiResponse(&SuccessSyncUser, Unsatisfied, &ResponseUserSync{
		User:    user,
		Created: created,
	})
}
