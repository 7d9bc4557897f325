package auth

import (
	"github.com/acmehq/invoicedesk/internal/auth/repository"
	"github.com/acmehq/invoicedesk/internal/auth/service"
	"github.com/acmehq/invoicedesk/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
