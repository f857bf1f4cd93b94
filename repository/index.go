package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	announcementIndexes := []mongo.IndexModel{
		// Reverse date order backs the list view
		{
			Keys: bson.D{{Key: "date", Value: -1}},
			Options: options.Index().
				SetName("announcements_date_desc"),
		},
		{
			Keys: bson.D{{Key: "is_draft", Value: 1}},
			Options: options.Index().
				SetName("announcements_draft"),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("users_email").
				SetUnique(true),
		},
	}

	studentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
				{Key: "enrolled", Value: 1},
			},
			Options: options.Index().
				SetName("students_email_enrolled"),
		},
	}

	_, err := db.Collection("announcements").Indexes().CreateMany(ctx, announcementIndexes)
	if err != nil {
		return fmt.Errorf("failed to create announcement indexes: %w", err)
	}

	_, err = db.Collection("users").Indexes().CreateMany(ctx, userIndexes)
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = db.Collection("students").Indexes().CreateMany(ctx, studentIndexes)
	if err != nil {
		return fmt.Errorf("failed to create student indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
