package functional_test

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/reddy1234arjun/taskmanagement/internal/testserver"
)

// callTool invokes a tool, asserts success and returns the JSON payload.
func callTool(t *testing.T, ts *testserver.TestServer, name string, args map[string]any) json.RawMessage {
	t.Helper()

	res, err := ts.Session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content from %s", name)
	require.False(t, res.IsError, "tool error from %s: %s", name, text.Text)

	return json.RawMessage(text.Text)
}

// callToolErr invokes a tool and returns the error text from its result.
func callToolErr(t *testing.T, ts *testserver.TestServer, name string, args map[string]any) string {
	t.Helper()

	res, err := ts.Session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.True(t, res.IsError, "expected error from %s", name)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

type taskPayload struct {
	ID            string `json:"id"`
	Title         string `json:"task_title"`
	Description   string `json:"task_description"`
	Status        string `json:"task_status"`
	Remarks       string `json:"task_remarks"`
	CreatedBy     string `json:"created_by"`
	LastUpdatedBy string `json:"last_updated_by"`
}

type taskListPayload struct {
	Tasks []taskPayload `json:"tasks"`
	Count int           `json:"count"`
}

func TestFunctional_SessionLifecycle(t *testing.T) {
	ts := testserver.New(t)

	loginResp := callTool(t, ts, "login", map[string]any{"email": "alice@example.com"})
	var session struct {
		Token string `json:"access_token"`
		User  struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(loginResp, &session))
	require.NotEmpty(t, session.Token)
	require.Equal(t, "alice", session.User.Name)

	currentResp := callTool(t, ts, "current_user", nil)
	require.Contains(t, string(currentResp), "alice@example.com")

	callTool(t, ts, "logout", nil)

	afterResp := callTool(t, ts, "current_user", nil)
	var after struct {
		User *struct{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(afterResp, &after))
	require.Nil(t, after.User)
}

func TestFunctional_RegisterKeepsName(t *testing.T) {
	ts := testserver.New(t)

	callTool(t, ts, "register", map[string]any{"name": "Alice Liddell", "email": "alice@example.com"})

	loginResp := callTool(t, ts, "login", map[string]any{"email": "alice@example.com"})
	require.Contains(t, string(loginResp), "Alice Liddell")
}

func TestFunctional_TaskLifecycle(t *testing.T) {
	ts := testserver.New(t)

	callTool(t, ts, "login", map[string]any{"email": "alice@example.com"})

	createResp := callTool(t, ts, "create_task", map[string]any{
		"title":       "Ship release",
		"description": "Cut and publish the release",
		"due_date":    "2030-06-01",
	})
	var created taskPayload
	require.NoError(t, json.Unmarshal(createResp, &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "pending", created.Status)
	require.Equal(t, "alice", created.CreatedBy)

	getResp := callTool(t, ts, "get_task", map[string]any{"id": created.ID})
	require.Contains(t, string(getResp), "Ship release")

	updateResp := callTool(t, ts, "update_task", map[string]any{
		"id":     created.ID,
		"status": "in_progress",
	})
	var updated taskPayload
	require.NoError(t, json.Unmarshal(updateResp, &updated))
	require.Equal(t, "in_progress", updated.Status)
	require.Equal(t, "Ship release", updated.Title)
	require.Equal(t, "alice", updated.CreatedBy)

	callTool(t, ts, "archive_task", map[string]any{"id": created.ID})

	var active taskListPayload
	require.NoError(t, json.Unmarshal(callTool(t, ts, "list_tasks", nil), &active))
	require.Zero(t, active.Count)

	var archived taskListPayload
	require.NoError(t, json.Unmarshal(callTool(t, ts, "list_tasks", map[string]any{"archived": true}), &archived))
	require.Equal(t, 1, archived.Count)

	callTool(t, ts, "restore_task", map[string]any{"id": created.ID})
	callTool(t, ts, "delete_task", map[string]any{"id": created.ID})

	require.NoError(t, json.Unmarshal(callTool(t, ts, "list_tasks", nil), &active))
	require.Zero(t, active.Count)
}

func TestFunctional_SearchStatsAndUpcoming(t *testing.T) {
	ts := testserver.New(t)

	callTool(t, ts, "login", map[string]any{"email": "alice@example.com"})

	seed := []map[string]any{
		{"title": "Write report", "description": "Quarterly numbers", "due_date": "2030-01-10"},
		{"title": "Review report", "description": "Second pass", "due_date": "2030-01-20", "status": "in_progress"},
		{"title": "File taxes", "description": "Annual report filing", "due_date": "2030-02-01", "status": "completed"},
		{"title": "Old chore", "description": "Long overdue", "due_date": "2020-01-01"},
	}
	for _, args := range seed {
		callTool(t, ts, "create_task", args)
	}

	var byQuery taskListPayload
	require.NoError(t, json.Unmarshal(callTool(t, ts, "search_tasks", map[string]any{"query": "report"}), &byQuery))
	require.Equal(t, 3, byQuery.Count)

	var combined taskListPayload
	require.NoError(t, json.Unmarshal(callTool(t, ts, "search_tasks", map[string]any{
		"query":         "report",
		"status":        "pending",
		"due_date_from": "2030-01-01",
		"due_date_to":   "2030-01-10",
	}), &combined))
	require.Equal(t, 1, combined.Count)
	require.Equal(t, "Write report", combined.Tasks[0].Title)

	statsResp := callTool(t, ts, "task_stats", nil)
	var stats struct {
		Total      int `json:"total"`
		Pending    int `json:"pending"`
		InProgress int `json:"in_progress"`
		Completed  int `json:"completed"`
		Overdue    int `json:"overdue"`
	}
	require.NoError(t, json.Unmarshal(statsResp, &stats))
	require.Equal(t, 4, stats.Total)
	require.Equal(t, 2, stats.Pending)
	require.Equal(t, 1, stats.InProgress)
	require.Equal(t, 1, stats.Completed)
	require.Equal(t, 1, stats.Overdue)

	var upcoming taskListPayload
	require.NoError(t, json.Unmarshal(callTool(t, ts, "upcoming_tasks", map[string]any{"limit": 1}), &upcoming))
	require.Equal(t, 1, upcoming.Count)
	require.Equal(t, "Write report", upcoming.Tasks[0].Title)
}

func TestFunctional_TeamRoster(t *testing.T) {
	ts := testserver.New(t)

	callTool(t, ts, "login", map[string]any{"email": "alice@example.com"})
	callTool(t, ts, "create_task", map[string]any{
		"title":       "Done thing",
		"description": "Already finished",
		"due_date":    "2030-01-01",
		"status":      "completed",
	})

	listResp := callTool(t, ts, "list_team", nil)
	var roster struct {
		Members []struct {
			ID             string `json:"id"`
			Name           string `json:"name"`
			Role           string `json:"role"`
			TasksCompleted int    `json:"tasksCompleted"`
		} `json:"members"`
	}
	require.NoError(t, json.Unmarshal(listResp, &roster))
	require.Len(t, roster.Members, 1)
	require.Equal(t, "1", roster.Members[0].ID)
	require.Equal(t, "alice", roster.Members[0].Name)
	require.Equal(t, "Admin", roster.Members[0].Role)
	require.Equal(t, 1, roster.Members[0].TasksCompleted)

	addResp := callTool(t, ts, "add_team_member", map[string]any{
		"name":  "Bob",
		"email": "bob@example.com",
	})
	var added struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(addResp, &added))
	require.Equal(t, "Member", added.Role)

	errText := callToolErr(t, ts, "remove_team_member", map[string]any{"id": "1"})
	require.Contains(t, errText, "BOOTSTRAP_MEMBER")

	callTool(t, ts, "remove_team_member", map[string]any{"id": added.ID})

	require.NoError(t, json.Unmarshal(callTool(t, ts, "list_team", nil), &roster))
	require.Len(t, roster.Members, 1)
}

func TestFunctional_Settings(t *testing.T) {
	ts := testserver.New(t)

	callTool(t, ts, "login", map[string]any{"email": "alice@example.com"})

	updateResp := callTool(t, ts, "update_settings", map[string]any{
		"name":          "Alice Liddell",
		"notifications": map[string]any{"email": false, "browser": true},
		"theme":         "dark",
	})
	require.Contains(t, string(updateResp), "Alice Liddell")

	getResp := callTool(t, ts, "get_settings", nil)
	var profile struct {
		User struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
		Preferences struct {
			Notifications struct {
				Email   bool `json:"email"`
				Browser bool `json:"browser"`
			} `json:"notifications"`
			Theme string `json:"theme"`
		} `json:"preferences"`
	}
	require.NoError(t, json.Unmarshal(getResp, &profile))
	require.Equal(t, "Alice Liddell", profile.User.Name)
	require.Equal(t, "alice@example.com", profile.User.Email)
	require.False(t, profile.Preferences.Notifications.Email)
	require.True(t, profile.Preferences.Notifications.Browser)
	require.Equal(t, "dark", profile.Preferences.Theme)
}

func TestFunctional_AnonymousAttribution(t *testing.T) {
	ts := testserver.New(t)

	createResp := callTool(t, ts, "create_task", map[string]any{
		"title":       "Orphan task",
		"description": "Created without a session",
		"due_date":    "2030-01-01",
	})
	var created taskPayload
	require.NoError(t, json.Unmarshal(createResp, &created))
	require.Equal(t, "Anonymous", created.CreatedBy)
	require.Equal(t, "Anonymous", created.LastUpdatedBy)
}

func TestFunctional_ErrorCodes(t *testing.T) {
	ts := testserver.New(t)

	require.Contains(t, callToolErr(t, ts, "get_task", map[string]any{"id": "missing"}), "TASK_NOT_FOUND")

	require.Contains(t, callToolErr(t, ts, "create_task", map[string]any{
		"title":       "No date",
		"description": "Bad due date",
		"due_date":    "not-a-date",
	}), "VALIDATION_ERROR")

	require.Contains(t, callToolErr(t, ts, "create_task", map[string]any{
		"title":       "",
		"description": "Missing title",
		"due_date":    "2030-01-01",
	}), "VALIDATION_ERROR")
}

func TestFunctional_ToolDiscovery(t *testing.T) {
	ts := testserver.New(t)

	res, err := ts.Session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Tools), 19)

	names := make(map[string]bool)
	for _, tool := range res.Tools {
		names[tool.Name] = true
		require.NotEmpty(t, tool.Description, "tool %s should have a description", tool.Name)
	}
	for _, want := range []string{"login", "create_task", "search_tasks", "archive_task", "list_team", "update_settings"} {
		require.True(t, names[want], "missing tool %s", want)
	}
}
