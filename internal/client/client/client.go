// Package client talks to the mailpassd gRPC service.
package client

import (
	"context"

	pb "github.com/dmitrijs2005/mailpassd/internal/proto"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	GetAccount(ctx context.Context, accountID string) (*pb.Account, error)
	ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) (bool, error)
	GetSettings(ctx context.Context) (*pb.GetSettingsResponse, error)
	UpdateSettings(ctx context.Context, supportedServers, host string, port int) error
}
