// Package grpc exposes the mailpassd services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/mailpassd/internal/logging"
	pb "github.com/dmitrijs2005/mailpassd/internal/proto"
	"github.com/dmitrijs2005/mailpassd/internal/server/services"
	"google.golang.org/grpc"
)

// AccountService is what the server needs from services.AccountService.
type AccountService interface {
	GetAccount(ctx context.Context, accountID string) (*services.AccountView, error)
	ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) (bool, error)
}

// SettingsService is what the server needs from services.SettingsService.
type SettingsService interface {
	GetSettings(ctx context.Context) *services.SettingsView
	UpdateSettings(ctx context.Context, supportedServers, host string, port int) (bool, error)
}

type GRPCServer struct {
	pb.UnimplementedMailPassServiceServer
	address   string
	accounts  AccountService
	settings  SettingsService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, as AccountService, ss SettingsService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  as,
		settings:  ss,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterMailPassServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
