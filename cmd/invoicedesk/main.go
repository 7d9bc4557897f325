package main

import (
	"github.com/acmehq/invoicedesk/internal/clock"
	"github.com/acmehq/invoicedesk/internal/config"
	"github.com/acmehq/invoicedesk/internal/logger"
	"github.com/acmehq/invoicedesk/internal/migration"
	"github.com/acmehq/invoicedesk/internal/pagecache"
	"github.com/acmehq/invoicedesk/internal/server"
	"github.com/acmehq/invoicedesk/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		pagecache.Module,

		// Schema, then the HTTP surface with its domain modules
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
