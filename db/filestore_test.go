package db

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/projectpulse/dashboard-services/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) (*FileStore, string, string) {
	t.Helper()
	dir := t.TempDir()
	usersPath := filepath.Join(dir, "users.json")
	dataPath := filepath.Join(dir, "db.json")
	logger := zerolog.Nop()
	return NewFileStore(usersPath, dataPath, &logger), usersPath, dataPath
}

func TestFileStoreSeedsMissingFiles(t *testing.T) {

	store, usersPath, dataPath := newTestFileStore(t)
	ctx := context.Background()

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	members, err := store.ListMembers(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	// Both documents now exist on disk with their envelope keys.
	rawUsers, err := os.ReadFile(usersPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":[]}`, string(rawUsers))

	rawData, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"members":[],"projects":[]}`, string(rawData))
}

func TestFileStoreUserLifecycle(t *testing.T) {

	store, _, _ := newTestFileStore(t)
	ctx := context.Background()

	created, err := store.CreateUser(ctx, models.User{
		Username:   "alice",
		Password:   "secret",
		Role:       models.RoleTeamMember,
		Name:       "Alice",
		Department: "Backend",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := store.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Partial update: only the named fields change.
	updated, err := store.UpdateUser(ctx, created.ID, map[string]interface{}{
		"name": "Alice B",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "secret", updated.Password)
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, store.DeleteUser(ctx, created.ID))

	_, err = store.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreUpdateCannotChangeID(t *testing.T) {

	store, _, _ := newTestFileStore(t)
	ctx := context.Background()

	created, err := store.CreateProject(ctx, models.Project{Name: "Portal", Status: models.StatusOngoing})
	require.NoError(t, err)

	updated, err := store.UpdateProject(ctx, created.ID, map[string]interface{}{
		"id":     "hijacked",
		"status": "LIVE",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.StatusLive, updated.Status)
}

func TestFileStoreNotFoundPaths(t *testing.T) {

	store, _, _ := newTestFileStore(t)
	ctx := context.Background()

	_, err := store.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpdateProject(ctx, "missing", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.DeleteMember(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, store.DeleteProject(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, store.DeleteUser(ctx, "missing"), ErrNotFound)
}

func TestFileStoreMemberDocuments(t *testing.T) {

	store, _, dataPath := newTestFileStore(t)
	ctx := context.Background()

	created, err := store.CreateMember(ctx, models.Member{
		"name":       "Dana",
		"department": "QA",
		"extra":      "anything goes",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID())
	assert.Equal(t, "Dana", created.Field("name"))

	updated, err := store.UpdateMember(ctx, created.ID(), map[string]interface{}{
		"department": "Platform",
		"newField":   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.Field("department"))
	assert.Equal(t, "Dana", updated.Field("name"))
	assert.Equal(t, true, updated["newField"])

	// The member lands in the shared data document next to projects.
	raw, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc["members"], 1)
}

func TestFileStorePutUpsert(t *testing.T) {

	store, _, _ := newTestFileStore(t)
	ctx := context.Background()

	u := models.User{ID: "1700000000000", Username: "carried", Role: models.RoleTeamLeader}
	require.NoError(t, store.PutUser(ctx, u))

	// Same id again replaces rather than appends.
	u.Name = "Carried Over"
	require.NoError(t, store.PutUser(ctx, u))

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Carried Over", users[0].Name)
}

func TestIDGeneratorMonotonic(t *testing.T) {

	fixed := time.UnixMilli(1700000000000)
	gen := &idGenerator{now: func() time.Time { return fixed }}

	// Same-instant calls still produce strictly increasing ids.
	assert.Equal(t, "1700000000000", gen.Next())
	assert.Equal(t, "1700000000001", gen.Next())
	assert.Equal(t, "1700000000002", gen.Next())
}
