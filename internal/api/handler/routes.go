package handler

import (
	"net/http"

	"github.com/vfg2006/agency-os-api/internal/api/handler/router"
	"github.com/vfg2006/agency-os-api/internal/usecases/archiving"
	"github.com/vfg2006/agency-os-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-os-api/internal/usecases/ledgering"
	"github.com/vfg2006/agency-os-api/internal/usecases/messaging"
	"github.com/vfg2006/agency-os-api/internal/usecases/publishing"
	"github.com/vfg2006/agency-os-api/internal/usecases/reporting"
	"github.com/vfg2006/agency-os-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Content(service publishing.Publisher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/content",
			Method:  http.MethodGet,
			Handler: GetContent(service),
		},
		{
			Path:        "/v1/content",
			Method:      http.MethodPut,
			Handler:     SaveContent(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/content",
			Method:      http.MethodPatch,
			Handler:     PatchContent(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/content/items",
			Method:      http.MethodPatch,
			Handler:     ReplaceContentItem(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Clients(ledger ledgering.Ledger, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(ledger),
			Middlewares: middlewares{middleware.StaffOnly()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(ledger),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(ledger),
			Middlewares: middlewares{middleware.StaffOnly()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(ledger),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteClient(ledger),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/months/:period",
			Method:      http.MethodGet,
			Handler:     GetMonth(ledger),
			Middlewares: middlewares{middleware.StaffOnly()},
		},
		{
			Path:        "/v1/clients/:id/months/:period",
			Method:      http.MethodPatch,
			Handler:     PatchMonth(ledger),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/overview",
			Method:      http.MethodGet,
			Handler:     ClientOverview(reporter),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/meta-sync",
			Method:      http.MethodPost,
			Handler:     SyncMetaCampaigns(ledger),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/assets",
			Method:      http.MethodPost,
			Handler:     AddAsset(ledger),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/assets/:asset_id",
			Method:      http.MethodDelete,
			Handler:     RemoveAsset(ledger),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/summary",
			Method:      http.MethodGet,
			Handler:     GetSummary(service),
			Middlewares: middlewares{middleware.StaffOnly()},
		},
		{
			Path:        "/v1/reports/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlySeries(service),
			Middlewares: middlewares{middleware.StaffOnly()},
		},
		{
			Path:        "/v1/reports/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: middlewares{middleware.StaffOnly()},
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Messages(service messaging.Inbox) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/messages",
			Method:  http.MethodPost,
			Handler: SubmitMessage(service),
		},
		{
			Path:        "/v1/messages",
			Method:      http.MethodGet,
			Handler:     ListMessages(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/messages/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateMessageStatus(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/messages/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMessage(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func System(service archiving.Archiver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/system/backup",
			Method:      http.MethodGet,
			Handler:     ExportBackup(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/system/restore",
			Method:      http.MethodPost,
			Handler:     RestoreBackup(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/system/snapshots",
			Method:      http.MethodGet,
			Handler:     ListSnapshots(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/system/snapshots",
			Method:      http.MethodPost,
			Handler:     CreateSnapshot(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/system/snapshots/:id/restore",
			Method:      http.MethodPost,
			Handler:     RestoreSnapshot(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
