package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	pb "github.com/dmitrijs2005/mailpassd/internal/proto"
	"github.com/dmitrijs2005/mailpassd/internal/server/auth"
	"github.com/dmitrijs2005/mailpassd/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// targetAccount resolves the account a request acts on. Callers act on
// their own account unless they are super admins.
func targetAccount(ctx context.Context, requested string) (string, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return "", common.ErrorUnauthorized
	}
	if requested == "" || requested == id.AccountID {
		return id.AccountID, nil
	}
	if !id.IsSuperAdmin() {
		return "", common.ErrorForbidden
	}
	return requested, nil
}

// toStatus maps domain errors onto gRPC status codes. Unknown errors are
// reported as internal without their text.
func toStatus(err error) error {
	var rejected *services.ServerRejectedError

	switch {
	case errors.As(err, &rejected):
		return status.Error(codes.FailedPrecondition, rejected.Error())
	case errors.Is(err, common.ErrOldPasswordIncorrect):
		return status.Error(codes.FailedPrecondition, common.ErrOldPasswordIncorrect.Error())
	case errors.Is(err, common.ErrCannotChangePassword):
		return status.Error(codes.Unavailable, common.ErrCannotChangePassword.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, common.ErrorForbidden.Error())
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {
	accountID, err := targetAccount(ctx, req.GetAccountId())
	if err != nil {
		return nil, toStatus(err)
	}

	changed, err := s.accounts.ChangePassword(ctx, accountID, req.GetCurrentPassword(), req.GetNewPassword())
	if err != nil {
		s.log(ctx).Warn(ctx, "password change failed", "target", accountID, "error", err)
		return nil, toStatus(err)
	}

	s.log(ctx).Info(ctx, "password changed", "target", accountID, "mail_server", changed)
	return &pb.ChangePasswordResponse{MailServerChanged: changed}, nil
}

func (s *GRPCServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.GetAccountResponse, error) {
	accountID, err := targetAccount(ctx, req.GetAccountId())
	if err != nil {
		return nil, toStatus(err)
	}

	v, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log(ctx).Error(ctx, "get account failed", "target", accountID, "error", err)
		}
		return nil, toStatus(err)
	}

	allowed, _ := v.Extend[services.ExtendAllowChangePassword].(bool)
	acc := &pb.Account{
		Id:                              v.ID,
		Email:                           v.Email,
		IncomingLogin:                   v.IncomingLogin,
		ServerName:                      v.ServerName,
		IncomingServer:                  v.IncomingServer,
		AllowChangePasswordOnMailServer: allowed,
	}
	if v.PasswordChangedAt != nil {
		acc.PasswordChangedAt = timestamppb.New(*v.PasswordChangedAt)
	}

	return &pb.GetAccountResponse{Account: acc}, nil
}

func (s *GRPCServer) GetSettings(ctx context.Context, req *pb.GetSettingsRequest) (*pb.GetSettingsResponse, error) {
	v := s.settings.GetSettings(ctx)
	return &pb.GetSettingsResponse{
		SupportedServers: v.SupportedServers,
		Host:             v.Host,
		Port:             int32(v.Port),
	}, nil
}

func (s *GRPCServer) UpdateSettings(ctx context.Context, req *pb.UpdateSettingsRequest) (*pb.UpdateSettingsResponse, error) {
	ok, err := s.settings.UpdateSettings(ctx, req.GetSupportedServers(), req.GetHost(), int(req.GetPort()))
	if err != nil {
		s.log(ctx).Warn(ctx, "settings update failed", "error", err)
		return nil, toStatus(err)
	}
	return &pb.UpdateSettingsResponse{Success: ok}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
