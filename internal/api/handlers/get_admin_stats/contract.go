package get_admin_stats

import (
	"context"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

type StatsProvider interface {
	GetAdminStats(ctx context.Context) (*salonapi.AdminStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
