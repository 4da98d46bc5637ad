package db

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/projectpulse/dashboard-services/models"
)

// ErrNotFound is returned when a record id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// Store is the uniform persistence contract over the three collections.
// Update merges the given fields into the stored record; Put replaces (or
// inserts) a record wholesale under its id. No call spans collections and no
// cross-collection transactions are provided. Concurrent edits to the same
// record are last-write-wins.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (models.User, error)
	PutUser(ctx context.Context, u models.User) error
	DeleteUser(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	UpdateProject(ctx context.Context, id string, fields map[string]interface{}) (models.Project, error)
	PutProject(ctx context.Context, p models.Project) error
	DeleteProject(ctx context.Context, id string) error

	ListMembers(ctx context.Context) ([]models.Member, error)
	CreateMember(ctx context.Context, m models.Member) (models.Member, error)
	UpdateMember(ctx context.Context, id string, fields map[string]interface{}) (models.Member, error)
	PutMember(ctx context.Context, m models.Member) error
	DeleteMember(ctx context.Context, id string) error

	Close(ctx context.Context) error
}

// idGenerator hands out millisecond-timestamp ids, the scheme the original
// data set was created with. Two creations in the same millisecond get
// strictly increasing values instead of colliding.
type idGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDGenerator() *idGenerator {
	return &idGenerator{now: time.Now}
}

// Next returns a unique time-based id under sequential creation.
func (g *idGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
