package customer

import (
	"github.com/acmehq/invoicedesk/internal/customer/repository"
	"github.com/acmehq/invoicedesk/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
