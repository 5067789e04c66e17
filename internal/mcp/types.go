package mcp

import (
	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/settings"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/team"
)

type EmptyParams struct{}

// OkResult acknowledges a mutation with no payload.
type OkResult struct {
	OK bool `json:"ok"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type CurrentUserResult struct {
	User *auth.Identity `json:"user"`
}

type CreateTaskParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	DueDate     string `json:"due_date"`
	Remarks     string `json:"remarks,omitempty"`
}

type GetTaskParams struct {
	ID string `json:"id"`
}

type ListTasksParams struct {
	Archived bool `json:"archived,omitempty"`
}

type TaskListResult struct {
	Tasks []task.Task `json:"tasks"`
	Count int         `json:"count"`
}

type UpdateTaskParams struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Remarks     *string `json:"remarks,omitempty"`
}

type SearchTasksParams struct {
	Query       string `json:"query,omitempty"`
	Status      string `json:"status,omitempty"`
	DueDateFrom string `json:"due_date_from,omitempty"`
	DueDateTo   string `json:"due_date_to,omitempty"`
}

type UpcomingTasksParams struct {
	Limit int `json:"limit,omitempty"`
}

type AddMemberParams struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type RemoveMemberParams struct {
	ID string `json:"id"`
}

type TeamListResult struct {
	Members []team.Member `json:"members"`
}

type UpdateSettingsParams struct {
	Name          string                 `json:"name,omitempty"`
	Email         string                 `json:"email,omitempty"`
	Notifications settings.Notifications `json:"notifications"`
	Theme         string                 `json:"theme,omitempty"`
}
