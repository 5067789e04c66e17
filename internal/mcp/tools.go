package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/settings"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/team"
)

// registerTools wires every domain operation into the MCP server as a
// typed tool.
func registerTools(server *sdkmcp.Server, svcs Services) {
	// Session
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "login",
		Description: "Log in with an email address. Always succeeds and returns a fresh access token.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in LoginParams) (*sdkmcp.CallToolResult, *auth.Session, error) {
		sess, err := svcs.Auth.Login(ctx, in.Email, in.Password)
		if err != nil {
			return nil, nil, MapError(err)
		}
		return nil, sess, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "register",
		Description: "Register a new user. Always succeeds; a later login keeps the registered name.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in RegisterParams) (*sdkmcp.CallToolResult, *auth.Identity, error) {
		identity, err := svcs.Auth.Register(ctx, in.Name, in.Email, in.Password)
		if err != nil {
			return nil, nil, MapError(err)
		}
		return nil, identity, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "logout",
		Description: "Clear the current session identity and token.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in EmptyParams) (*sdkmcp.CallToolResult, OkResult, error) {
		if err := svcs.Auth.Logout(ctx); err != nil {
			return nil, OkResult{}, MapError(err)
		}
		return nil, OkResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "current_user",
		Description: "Return the current session identity, or null when nobody is logged in.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in EmptyParams) (*sdkmcp.CallToolResult, CurrentUserResult, error) {
		identity, err := svcs.Auth.CurrentUser(ctx)
		if err != nil {
			return nil, CurrentUserResult{}, MapError(err)
		}
		return nil, CurrentUserResult{User: identity}, nil
	})

	// Tasks
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_task",
		Description: "Create a task. Title, description and due date are required; status defaults to pending.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in CreateTaskParams) (*sdkmcp.CallToolResult, *task.Task, error) {
		due, err := parseDate(in.DueDate, false)
		if err != nil || due == nil {
			return nil, nil, invalidDate("due_date", in.DueDate)
		}
		created, err := svcs.Tasks.Create(ctx, task.CreateRequest{
			Title:       in.Title,
			Description: in.Description,
			Status:      task.Status(in.Status),
			DueDate:     *due,
			Remarks:     in.Remarks,
		}, actorFor(ctx, svcs.Auth))
		if err != nil {
			return nil, nil, MapError(err)
		}
		return nil, created, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_task",
		Description: "Get an active task by ID.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetTaskParams) (*sdkmcp.CallToolResult, *task.Task, error) {
		t, err := svcs.Tasks.Get(ctx, in.ID)
		if err != nil {
			return nil, nil, MapError(err)
		}
		return nil, t, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tasks",
		Description: "List every task in the active set, or the archived set when archived is true.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ListTasksParams) (*sdkmcp.CallToolResult, TaskListResult, error) {
		var (
			tasks []task.Task
			err   error
		)
		if in.Archived {
			tasks, err = svcs.Tasks.ListArchived(ctx)
		} else {
			tasks, err = svcs.Tasks.List(ctx)
		}
		if err != nil {
			return nil, TaskListResult{}, MapError(err)
		}
		return nil, TaskListResult{Tasks: tasks, Count: len(tasks)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_task",
		Description: "Update an active task. Omitted fields are retained; creation attribution never changes.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in UpdateTaskParams) (*sdkmcp.CallToolResult, *task.Task, error) {
		update := task.UpdateRequest{
			Title:       in.Title,
			Description: in.Description,
			Remarks:     in.Remarks,
		}
		if in.Status != nil {
			status := task.Status(*in.Status)
			update.Status = &status
		}
		if in.DueDate != nil {
			due, err := parseDate(*in.DueDate, false)
			if err != nil || due == nil {
				return nil, nil, invalidDate("due_date", *in.DueDate)
			}
			update.DueDate = due
		}
		updated, err := svcs.Tasks.Update(ctx, in.ID, update, actorFor(ctx, svcs.Auth))
		if err != nil {
			return nil, nil, MapError(err)
		}
		return nil, updated, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_task",
		Description: "Permanently delete a task from whichever set holds it.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetTaskParams) (*sdkmcp.CallToolResult, OkResult, error) {
		if err := svcs.Tasks.Delete(ctx, in.ID); err != nil {
			return nil, OkResult{}, MapError(err)
		}
		return nil, OkResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "archive_task",
		Description: "Move an active task into the archived set.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetTaskParams) (*sdkmcp.CallToolResult, OkResult, error) {
		if err := svcs.Tasks.Archive(ctx, in.ID); err != nil {
			return nil, OkResult{}, MapError(err)
		}
		return nil, OkResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "restore_task",
		Description: "Move an archived task back into the active set.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetTaskParams) (*sdkmcp.CallToolResult, OkResult, error) {
		if err := svcs.Tasks.Restore(ctx, in.ID); err != nil {
			return nil, OkResult{}, MapError(err)
		}
		return nil, OkResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_tasks",
		Description: "Search active tasks by free text (title or description), status and inclusive due-date bounds.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in SearchTasksParams) (*sdkmcp.CallToolResult, TaskListResult, error) {
		from, err := parseDate(in.DueDateFrom, false)
		if err != nil {
			return nil, TaskListResult{}, invalidDate("due_date_from", in.DueDateFrom)
		}
		to, err := parseDate(in.DueDateTo, true)
		if err != nil {
			return nil, TaskListResult{}, invalidDate("due_date_to", in.DueDateTo)
		}

		tasks, err := svcs.Tasks.Search(ctx, task.Filter{
			Query:   in.Query,
			Status:  task.Status(in.Status),
			DueFrom: from,
			DueTo:   to,
		})
		if err != nil {
			return nil, TaskListResult{}, MapError(err)
		}
		return nil, TaskListResult{Tasks: tasks, Count: len(tasks)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "task_stats",
		Description: "Summarize the active set: totals by status and overdue count.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in EmptyParams) (*sdkmcp.CallToolResult, task.Stats, error) {
		stats, err := svcs.Tasks.Stats(ctx, time.Now())
		if err != nil {
			return nil, task.Stats{}, MapError(err)
		}
		return nil, stats, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "upcoming_tasks",
		Description: "List not-completed tasks due soonest, capped at limit (default 5).",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in UpcomingTasksParams) (*sdkmcp.CallToolResult, TaskListResult, error) {
		tasks, err := svcs.Tasks.Upcoming(ctx, time.Now(), in.Limit)
		if err != nil {
			return nil, TaskListResult{}, MapError(err)
		}
		return nil, TaskListResult{Tasks: tasks, Count: len(tasks)}, nil
	})

	// Team
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_team",
		Description: "List the team roster, seeding it with the session user on first use.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in EmptyParams) (*sdkmcp.CallToolResult, TeamListResult, error) {
		if err := svcs.Team.EnsureBootstrap(ctx, actorFor(ctx, svcs.Auth)); err != nil {
			return nil, TeamListResult{}, MapError(err)
		}
		if err := svcs.Team.SyncTaskCounts(ctx); err != nil {
			return nil, TeamListResult{}, MapError(err)
		}
		members, err := svcs.Team.List(ctx)
		if err != nil {
			return nil, TeamListResult{}, MapError(err)
		}
		return nil, TeamListResult{Members: members}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_team_member",
		Description: "Add a member to the roster. Role defaults to Member.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in AddMemberParams) (*sdkmcp.CallToolResult, *team.Member, error) {
		member, err := svcs.Team.Add(ctx, team.AddRequest{
			Name:  in.Name,
			Email: in.Email,
			Role:  team.Role(in.Role),
		})
		if err != nil {
			return nil, nil, MapError(err)
		}
		return nil, member, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_team_member",
		Description: "Remove a member from the roster. The session user's entry is refused.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in RemoveMemberParams) (*sdkmcp.CallToolResult, OkResult, error) {
		if err := svcs.Team.Remove(ctx, in.ID); err != nil {
			return nil, OkResult{}, MapError(err)
		}
		return nil, OkResult{OK: true}, nil
	})

	// Settings
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_settings",
		Description: "Return the current profile and preferences.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in EmptyParams) (*sdkmcp.CallToolResult, *settings.Profile, error) {
		profile, err := svcs.Settings.Get(ctx)
		if err != nil {
			return nil, nil, MapError(err)
		}
		return nil, profile, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_settings",
		Description: "Save preferences and optionally rewrite the profile name/email.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in UpdateSettingsParams) (*sdkmcp.CallToolResult, *settings.Profile, error) {
		profile, err := svcs.Settings.Update(ctx, settings.UpdateRequest{
			Name:  in.Name,
			Email: in.Email,
			Preferences: settings.Preferences{
				Notifications: in.Notifications,
				Theme:         in.Theme,
			},
		})
		if err != nil {
			return nil, nil, MapError(err)
		}
		return nil, profile, nil
	})
}

// actorFor resolves the acting identity for attribution. With no session
// the zero identity is returned and mutations stamp "Anonymous".
func actorFor(ctx context.Context, svc AuthService) auth.Identity {
	identity, err := svc.CurrentUser(ctx)
	if err != nil || identity == nil {
		return auth.Identity{}
	}
	return *identity
}

// parseDate accepts RFC 3339 timestamps or bare dates. A bare date used as
// an upper bound is widened to the end of that day so inclusive date ranges
// behave as expected. Empty input yields nil.
func parseDate(s string, upperBound bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	if upperBound {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}

func invalidDate(field, value string) error {
	return &APIError{
		Code:         "VALIDATION_ERROR",
		Message:      "invalid " + field + " value " + value,
		RecoveryHint: "Use YYYY-MM-DD or RFC 3339",
	}
}
