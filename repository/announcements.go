package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"courseboard/model"
	"courseboard/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned for missing or malformed announcement keys.
var ErrNotFound = errors.New("announcement not found")

// ListFetchLimit caps a single list query.
const ListFetchLimit = 1000

type AnnouncementsRepo struct {
	MongoCollection *mongo.Collection
}

func GetAnnouncementsRepo(client *mongo.Client) *AnnouncementsRepo {
	return &AnnouncementsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("announcements"),
	}
}

// CreateAnnouncement inserts a new record, assigning its key when unset.
func (r *AnnouncementsRepo) CreateAnnouncement(ctx context.Context, a *model.Announcement) error {
	timer := utils.TrackDBOperation("insert", "announcements")
	defer timer.ObserveDuration()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, a)
	if err != nil {
		utils.TrackError("db")
	}
	return err
}

// GetAnnouncement retrieves a record by key. A key that does not parse as a
// UUID is treated the same as a missing record.
func (r *AnnouncementsRepo) GetAnnouncement(ctx context.Context, key string) (*model.Announcement, error) {
	timer := utils.TrackDBOperation("find", "announcements")
	defer timer.ObserveDuration()

	if _, err := uuid.Parse(key); err != nil {
		return nil, ErrNotFound
	}

	var a model.Announcement
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": key}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("db")
		return nil, err
	}
	return &a, nil
}

// UpdateAnnouncement persists the schema fields of an existing record.
// Last writer wins; there is no version check.
func (r *AnnouncementsRepo) UpdateAnnouncement(ctx context.Context, a *model.Announcement) error {
	timer := utils.TrackDBOperation("update", "announcements")
	defer timer.ObserveDuration()

	a.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":      a.Title,
			"date":       a.Date,
			"html":       a.HTML,
			"is_draft":   a.IsDraft,
			"updated_at": a.UpdatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": a.ID}, update)
	if err != nil {
		utils.TrackError("db")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAnnouncement removes a record and reports whether one existed.
// Malformed and unknown keys both delete nothing without error.
func (r *AnnouncementsRepo) DeleteAnnouncement(ctx context.Context, key string) (bool, error) {
	timer := utils.TrackDBOperation("delete", "announcements")
	defer timer.ObserveDuration()

	if _, err := uuid.Parse(key); err != nil {
		return false, nil
	}

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		utils.TrackError("db")
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// ListAnnouncements returns records in reverse date order, capped at
// ListFetchLimit.
func (r *AnnouncementsRepo) ListAnnouncements(ctx context.Context) ([]*model.Announcement, error) {
	timer := utils.TrackDBOperation("find", "announcements")
	defer timer.ObserveDuration()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(ListFetchLimit)

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.Announcement
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CountAnnouncements counts all records.
func (r *AnnouncementsRepo) CountAnnouncements(ctx context.Context) (int64, error) {
	timer := utils.TrackDBOperation("count", "announcements")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{})
}
