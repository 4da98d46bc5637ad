package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/projectpulse/dashboard-services/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoStore persists each collection as one document per record, keyed by
// the generated id. It provides the same contract as FileStore; uniqueness
// of usernames is still enforced at the service layer, not by an index.
type MongoStore struct {
	client   *mongo.Client
	users    *mongo.Collection
	projects *mongo.Collection
	members  *mongo.Collection
	ids      *idGenerator
	log      *zerolog.Logger
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, database string, log *zerolog.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	d := client.Database(database)
	return &MongoStore{
		client:   client,
		users:    d.Collection("users"),
		projects: d.Collection("projects"),
		members:  d.Collection("members"),
		ids:      newIDGenerator(),
		log:      log,
	}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// setFields builds a $set document, dropping the id keys so the immutable
// document key is never touched by a merge.
func setFields(fields map[string]interface{}) bson.M {
	set := bson.M{}
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		set[k] = v
	}
	return set
}

// --- users ---

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return users, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	u.ID = s.ids.Next()
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("error inserting user: %w", err)
	}
	s.log.Debug().Str("user_id", u.ID).Msg("user created")
	return u, nil
}

func (s *MongoStore) GetUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error retrieving user: %w", err)
	}
	return u, nil
}

func (s *MongoStore) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (models.User, error) {
	if set := setFields(fields); len(set) > 0 {
		res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return models.User{}, fmt.Errorf("error updating user: %w", err)
		}
		if res.MatchedCount == 0 {
			return models.User{}, ErrNotFound
		}
	}
	return s.GetUser(ctx, id)
}

func (s *MongoStore) PutUser(ctx context.Context, u models.User) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.users.ReplaceOne(ctx, bson.M{"_id": u.ID}, u, opts); err != nil {
		return fmt.Errorf("error replacing user: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteUser(ctx context.Context, id string) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- projects ---

func (s *MongoStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	cursor, err := s.projects.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("error decoding projects: %w", err)
	}
	return projects, nil
}

func (s *MongoStore) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = s.ids.Next()
	if _, err := s.projects.InsertOne(ctx, p); err != nil {
		return models.Project{}, fmt.Errorf("error inserting project: %w", err)
	}
	s.log.Debug().Str("project_id", p.ID).Msg("project created")
	return p, nil
}

func (s *MongoStore) GetProject(ctx context.Context, id string) (models.Project, error) {
	var p models.Project
	err := s.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("error retrieving project: %w", err)
	}
	return p, nil
}

func (s *MongoStore) UpdateProject(ctx context.Context, id string, fields map[string]interface{}) (models.Project, error) {
	if set := setFields(fields); len(set) > 0 {
		res, err := s.projects.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return models.Project{}, fmt.Errorf("error updating project: %w", err)
		}
		if res.MatchedCount == 0 {
			return models.Project{}, ErrNotFound
		}
	}
	return s.GetProject(ctx, id)
}

func (s *MongoStore) PutProject(ctx context.Context, p models.Project) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.projects.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, opts); err != nil {
		return fmt.Errorf("error replacing project: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteProject(ctx context.Context, id string) error {
	res, err := s.projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- members ---

func (s *MongoStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	cursor, err := s.members.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.Member
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("error decoding members: %w", err)
	}
	for i := range members {
		members[i] = memberFromDocument(members[i])
	}
	return members, nil
}

func (s *MongoStore) CreateMember(ctx context.Context, m models.Member) (models.Member, error) {
	created := m.Clone()
	created["id"] = s.ids.Next()
	if _, err := s.members.InsertOne(ctx, memberToDocument(created)); err != nil {
		return nil, fmt.Errorf("error inserting member: %w", err)
	}
	return created, nil
}

func (s *MongoStore) UpdateMember(ctx context.Context, id string, fields map[string]interface{}) (models.Member, error) {
	if set := setFields(fields); len(set) > 0 {
		res, err := s.members.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("error updating member: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
	}

	var m models.Member
	err := s.members.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving member: %w", err)
	}
	return memberFromDocument(m), nil
}

func (s *MongoStore) PutMember(ctx context.Context, m models.Member) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.members.ReplaceOne(ctx, bson.M{"_id": m.ID()}, memberToDocument(m), opts); err != nil {
		return fmt.Errorf("error replacing member: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteMember(ctx context.Context, id string) error {
	res, err := s.members.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting member: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// memberToDocument keys the loose member record by its id for storage.
func memberToDocument(m models.Member) bson.M {
	doc := bson.M{}
	for k, v := range m {
		doc[k] = v
	}
	doc["_id"] = m.ID()
	return doc
}

// memberFromDocument restores the API shape, folding the document key back
// into the id field.
func memberFromDocument(m models.Member) models.Member {
	out := m.Clone()
	if id, ok := out["_id"].(string); ok && out.ID() == "" {
		out["id"] = id
	}
	delete(out, "_id")
	return out
}
