package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/logging"
	pb "github.com/dmitrijs2005/mailpassd/internal/proto"
	"github.com/dmitrijs2005/mailpassd/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// public methods need no token
var publicMethods = map[string]bool{
	pb.MailPassService_Ping_FullMethodName: true,
}

// admin methods need a super admin token
var adminMethods = map[string]bool{
	pb.MailPassService_GetSettings_FullMethodName:    true,
	pb.MailPassService_UpdateSettings_FullMethodName: true,
}

type loggerKey struct{}

// log returns the request-scoped logger set by requestIDInterceptor.
func (s *GRPCServer) log(ctx context.Context) logging.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logging.Logger); ok {
		return l
	}
	return s.logger
}

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestIDInterceptor tags the request with the caller's x-request-id,
// or a fresh one, and echoes it back in the response header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id := firstMetadata(ctx, common.RequestIDHeaderName)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	l := s.logger.With("request_id", id, "method", info.FullMethod)
	ctx = context.WithValue(ctx, loggerKey{}, l)

	return handler(ctx, req)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		s.log(ctx).Warn(ctx, "rejected token", "error", err)
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	if adminMethods[info.FullMethod] && !id.IsSuperAdmin() {
		return nil, status.Error(codes.PermissionDenied, common.ErrorForbidden.Error())
	}

	ctx = auth.WithIdentity(ctx, id)
	if l, ok := ctx.Value(loggerKey{}).(logging.Logger); ok {
		ctx = context.WithValue(ctx, loggerKey{}, l.With("account_id", id.AccountID))
	}

	return handler(ctx, req)
}
