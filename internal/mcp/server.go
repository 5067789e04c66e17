package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/settings"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/team"
)

// TaskService defines task operations needed by the tool surface.
type TaskService interface {
	Create(ctx context.Context, req task.CreateRequest, actor auth.Identity) (*task.Task, error)
	Update(ctx context.Context, id string, req task.UpdateRequest, actor auth.Identity) (*task.Task, error)
	Get(ctx context.Context, id string) (*task.Task, error)
	List(ctx context.Context) ([]task.Task, error)
	ListArchived(ctx context.Context) ([]task.Task, error)
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Search(ctx context.Context, f task.Filter) ([]task.Task, error)
	Stats(ctx context.Context, now time.Time) (task.Stats, error)
	Upcoming(ctx context.Context, now time.Time, limit int) ([]task.Task, error)
}

// TeamService defines roster operations needed by the tool surface.
type TeamService interface {
	EnsureBootstrap(ctx context.Context, identity auth.Identity) error
	List(ctx context.Context) ([]team.Member, error)
	Add(ctx context.Context, req team.AddRequest) (*team.Member, error)
	Remove(ctx context.Context, id string) error
	SyncTaskCounts(ctx context.Context) error
}

// AuthService defines session operations needed by the tool surface.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*auth.Session, error)
	Register(ctx context.Context, name, email, password string) (*auth.Identity, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*auth.Identity, error)
}

// SettingsService defines profile operations needed by the tool surface.
type SettingsService interface {
	Get(ctx context.Context) (*settings.Profile, error)
	Update(ctx context.Context, req settings.UpdateRequest) (*settings.Profile, error)
}

// Services contains all domain services needed by the tool surface.
type Services struct {
	Tasks    TaskService
	Team     TeamService
	Auth     AuthService
	Settings SettingsService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

const serverInstructions = `TaskMaster is a local-first task store.
Log in (or register) first so mutations are attributed to you; without a
session, changes are attributed to "Anonymous". Tasks live in an active set
and an archived set; archive_task and restore_task move them between the
two, delete_task removes them permanently. search_tasks combines a
free-text query (title or description), a status filter and inclusive
due-date bounds.`

// NewServer creates and configures an MCP server with all tools and
// middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "taskmaster",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
