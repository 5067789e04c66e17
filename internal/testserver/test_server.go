package testserver

import (
	"context"
	"log/slog"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/reddy1234arjun/taskmanagement/internal/blobstore"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/settings"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/team"
	"github.com/reddy1234arjun/taskmanagement/internal/localstore"
	"github.com/reddy1234arjun/taskmanagement/internal/mcp"
)

// TestServer is a fully wired MCP server over an in-memory blob store,
// with a connected client session for driving tool calls.
type TestServer struct {
	Session *sdkmcp.ClientSession
	Store   *blobstore.MemoryStore
}

func New(t *testing.T) *TestServer {
	t.Helper()

	store := blobstore.NewMemoryStore()
	logger := slog.New(slog.DiscardHandler)

	taskRepo := localstore.NewTaskRepository(store)
	memberRepo := localstore.NewMemberRepository(store)
	credStore := localstore.NewCredentialStore(store)
	prefStore := localstore.NewPreferenceStore(store)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Tasks:    task.NewService(taskRepo, logger),
			Team:     team.NewService(memberRepo, taskRepo, logger),
			Auth:     auth.NewService(credStore, nil, logger),
			Settings: settings.NewService(credStore, prefStore, logger),
		},
		Logger: logger,
	})

	ctx := context.Background()
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = clientSession.Close()
		_ = serverSession.Wait()
	})

	return &TestServer{Session: clientSession, Store: store}
}
