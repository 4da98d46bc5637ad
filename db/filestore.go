package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/projectpulse/dashboard-services/models"
	"github.com/rs/zerolog"
)

// FileStore persists the collections as two JSON documents: a users file
// holding {"users": [...]} and a data file holding {"members": [...],
// "projects": [...]}. Every mutation rewrites the affected document in full.
// A mutex serializes access within the process; there is no cross-process
// locking.
type FileStore struct {
	mu        sync.Mutex
	usersPath string
	dataPath  string
	ids       *idGenerator
	log       *zerolog.Logger
}

type usersDocument struct {
	Users []models.User `json:"users"`
}

type dataDocument struct {
	Members  []models.Member  `json:"members"`
	Projects []models.Project `json:"projects"`
}

// NewFileStore initializes a FileStore over the given document paths. Missing
// documents are created empty on first access.
func NewFileStore(usersPath, dataPath string, log *zerolog.Logger) *FileStore {
	return &FileStore{
		usersPath: usersPath,
		dataPath:  dataPath,
		ids:       newIDGenerator(),
		log:       log,
	}
}

func (s *FileStore) Close(ctx context.Context) error { return nil }

func (s *FileStore) readUsersDoc() (*usersDocument, error) {
	doc := &usersDocument{Users: []models.User{}}
	if err := readJSONFile(s.usersPath, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *FileStore) readDataDoc() (*dataDocument, error) {
	doc := &dataDocument{Members: []models.Member{}, Projects: []models.Project{}}
	if err := readJSONFile(s.dataPath, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// readJSONFile loads path into dst, seeding the file with dst's zero
// document when it does not exist yet.
func readJSONFile(path string, dst interface{}) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return writeJSONFile(path, dst)
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}
	return nil
}

func writeJSONFile(path string, doc interface{}) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// mergeFields overlays fields onto the JSON form of rec and decodes the
// result back, giving partial-update semantics for typed records.
func mergeFields(rec interface{}, fields map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return err
	}
	for k, v := range fields {
		asMap[k] = v
	}
	merged, err := json.Marshal(asMap)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, dst)
}

// --- users ---

func (s *FileStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readUsersDoc()
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

func (s *FileStore) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readUsersDoc()
	if err != nil {
		return models.User{}, err
	}
	u.ID = s.ids.Next()
	doc.Users = append(doc.Users, u)
	if err := writeJSONFile(s.usersPath, doc); err != nil {
		return models.User{}, err
	}
	s.log.Debug().Str("user_id", u.ID).Msg("user created")
	return u, nil
}

func (s *FileStore) GetUser(ctx context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readUsersDoc()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range doc.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *FileStore) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readUsersDoc()
	if err != nil {
		return models.User{}, err
	}
	for i, u := range doc.Users {
		if u.ID != id {
			continue
		}
		var merged models.User
		if err := mergeFields(u, fields, &merged); err != nil {
			return models.User{}, err
		}
		merged.ID = id
		doc.Users[i] = merged
		if err := writeJSONFile(s.usersPath, doc); err != nil {
			return models.User{}, err
		}
		return merged, nil
	}
	return models.User{}, ErrNotFound
}

func (s *FileStore) PutUser(ctx context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readUsersDoc()
	if err != nil {
		return err
	}
	replaced := false
	for i := range doc.Users {
		if doc.Users[i].ID == u.ID {
			doc.Users[i] = u
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Users = append(doc.Users, u)
	}
	return writeJSONFile(s.usersPath, doc)
}

func (s *FileStore) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readUsersDoc()
	if err != nil {
		return err
	}
	for i, u := range doc.Users {
		if u.ID == id {
			doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
			return writeJSONFile(s.usersPath, doc)
		}
	}
	return ErrNotFound
}

// --- projects ---

func (s *FileStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return nil, err
	}
	return doc.Projects, nil
}

func (s *FileStore) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return models.Project{}, err
	}
	p.ID = s.ids.Next()
	doc.Projects = append(doc.Projects, p)
	if err := writeJSONFile(s.dataPath, doc); err != nil {
		return models.Project{}, err
	}
	s.log.Debug().Str("project_id", p.ID).Msg("project created")
	return p, nil
}

func (s *FileStore) GetProject(ctx context.Context, id string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return models.Project{}, err
	}
	for _, p := range doc.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, ErrNotFound
}

func (s *FileStore) UpdateProject(ctx context.Context, id string, fields map[string]interface{}) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return models.Project{}, err
	}
	for i, p := range doc.Projects {
		if p.ID != id {
			continue
		}
		var merged models.Project
		if err := mergeFields(p, fields, &merged); err != nil {
			return models.Project{}, err
		}
		merged.ID = id
		doc.Projects[i] = merged
		if err := writeJSONFile(s.dataPath, doc); err != nil {
			return models.Project{}, err
		}
		return merged, nil
	}
	return models.Project{}, ErrNotFound
}

func (s *FileStore) PutProject(ctx context.Context, p models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return err
	}
	replaced := false
	for i := range doc.Projects {
		if doc.Projects[i].ID == p.ID {
			doc.Projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Projects = append(doc.Projects, p)
	}
	return writeJSONFile(s.dataPath, doc)
}

func (s *FileStore) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return err
	}
	for i, p := range doc.Projects {
		if p.ID == id {
			doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
			return writeJSONFile(s.dataPath, doc)
		}
	}
	return ErrNotFound
}

// --- members ---

func (s *FileStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return nil, err
	}
	return doc.Members, nil
}

func (s *FileStore) CreateMember(ctx context.Context, m models.Member) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return nil, err
	}
	created := m.Clone()
	created["id"] = s.ids.Next()
	doc.Members = append(doc.Members, created)
	if err := writeJSONFile(s.dataPath, doc); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *FileStore) UpdateMember(ctx context.Context, id string, fields map[string]interface{}) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return nil, err
	}
	for i, m := range doc.Members {
		if m.ID() != id {
			continue
		}
		merged := m.Clone()
		for k, v := range fields {
			merged[k] = v
		}
		merged["id"] = id
		doc.Members[i] = merged
		if err := writeJSONFile(s.dataPath, doc); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, ErrNotFound
}

func (s *FileStore) PutMember(ctx context.Context, m models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return err
	}
	replaced := false
	for i := range doc.Members {
		if doc.Members[i].ID() == m.ID() {
			doc.Members[i] = m
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Members = append(doc.Members, m)
	}
	return writeJSONFile(s.dataPath, doc)
}

func (s *FileStore) DeleteMember(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDataDoc()
	if err != nil {
		return err
	}
	for i, m := range doc.Members {
		if m.ID() == id {
			doc.Members = append(doc.Members[:i], doc.Members[i+1:]...)
			return writeJSONFile(s.dataPath, doc)
		}
	}
	return ErrNotFound
}
