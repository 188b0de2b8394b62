// Package services contains server-side business logic: the POPPASSD
// password-change orchestrator, the handler pipeline it runs in, and the
// account and settings services exposed over gRPC.
package services

import (
	"context"

	"github.com/dmitrijs2005/mailpassd/internal/server/models"
)

// PasswordChangeRequest is what every password-change handler receives.
type PasswordChangeRequest struct {
	Account         *models.Account
	CurrentPassword string
	NewPassword     string
}

// HandlerResult is one handler's answer. Halt stops the handlers after it.
type HandlerResult struct {
	PasswordChanged bool
	Halt            bool
}

// PipelineResult is the merged result of all handlers that ran.
type PipelineResult struct {
	AccountPasswordChanged bool
}

// PasswordChangeHandler is a backend able to change an account password.
type PasswordChangeHandler interface {
	HandlePasswordChange(ctx context.Context, req *PasswordChangeRequest) (*HandlerResult, error)
}

// HandlerFunc adapts a function to PasswordChangeHandler.
type HandlerFunc func(ctx context.Context, req *PasswordChangeRequest) (*HandlerResult, error)

func (f HandlerFunc) HandlePasswordChange(ctx context.Context, req *PasswordChangeRequest) (*HandlerResult, error) {
	return f(ctx, req)
}

// Pipeline runs handlers in registration order.
type Pipeline struct {
	handlers []PasswordChangeHandler
}

func NewPipeline(handlers ...PasswordChangeHandler) *Pipeline {
	return &Pipeline{handlers: handlers}
}

// Run calls each handler until one fails or asks to halt. The result
// reflects every handler that ran, including a failing one.
func (p *Pipeline) Run(ctx context.Context, req *PasswordChangeRequest) (*PipelineResult, error) {
	res := &PipelineResult{}
	for _, h := range p.handlers {
		hr, err := h.HandlePasswordChange(ctx, req)
		if hr != nil {
			res.AccountPasswordChanged = res.AccountPasswordChanged || hr.PasswordChanged
		}
		if err != nil {
			return res, err
		}
		if hr != nil && hr.Halt {
			break
		}
	}
	return res, nil
}
