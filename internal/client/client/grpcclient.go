package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	pb "github.com/dmitrijs2005/mailpassd/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.MailPassServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		md.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewMailPassClient connects lazily to endpointURL and sends accessToken
// with every call.
func NewMailPassClient(endpointURL, accessToken string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}
	conn, err := grpc.NewClient(c.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewMailPassServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) GetAccount(ctx context.Context, accountID string) (*pb.Account, error) {
	resp, err := s.client.GetAccount(ctx, &pb.GetAccountRequest{AccountId: accountID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetAccount(), nil
}

func (s *GRPCClient) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) (bool, error) {
	resp, err := s.client.ChangePassword(ctx, &pb.ChangePasswordRequest{
		AccountId:       accountID,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetMailServerChanged(), nil
}

func (s *GRPCClient) GetSettings(ctx context.Context) (*pb.GetSettingsResponse, error) {
	resp, err := s.client.GetSettings(ctx, &pb.GetSettingsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) UpdateSettings(ctx context.Context, supportedServers, host string, port int) error {
	_, err := s.client.UpdateSettings(ctx, &pb.UpdateSettingsRequest{
		SupportedServers: supportedServers,
		Host:             host,
		Port:             int32(port),
	})
	return s.mapError(err)
}

// mapError turns status errors back into the shared sentinel errors,
// keeping the server's message.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	msg := st.Message()

	switch st.Code() {
	case codes.FailedPrecondition:
		if msg == common.ErrOldPasswordIncorrect.Error() {
			return common.ErrOldPasswordIncorrect
		}
		return wrapMessage(common.ErrCannotChangePassword, msg)
	case codes.Unavailable:
		if msg == common.ErrCannotChangePassword.Error() {
			return common.ErrCannotChangePassword
		}
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return wrapMessage(common.ErrorValidation, msg)
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unauthenticated:
		if msg == common.ErrTokenExpired.Error() {
			return common.ErrTokenExpired
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return common.ErrorForbidden
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// wrapMessage wraps sentinel so that the result prints as msg.
func wrapMessage(sentinel error, msg string) error {
	rest := strings.TrimPrefix(msg, sentinel.Error())
	if rest == "" {
		return sentinel
	}
	if rest == msg {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("%w%s", sentinel, rest)
}
