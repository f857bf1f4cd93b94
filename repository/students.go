package repository

import (
	"context"
	"os"

	"courseboard/model"
	"courseboard/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StudentsRepo struct {
	MongoCollection *mongo.Collection
}

func GetStudentsRepo(client *mongo.Client) *StudentsRepo {
	return &StudentsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("students"),
	}
}

func (r *StudentsRepo) AddStudent(ctx context.Context, student *model.Student) error {
	timer := utils.TrackDBOperation("insert", "students")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, student)
	if err != nil {
		utils.TrackError("db")
	}
	return err
}

// GetEnrolledStudentByEmail returns nil, nil when the email has no enrolled
// student record.
func (r *StudentsRepo) GetEnrolledStudentByEmail(ctx context.Context, email string) (*model.Student, error) {
	timer := utils.TrackDBOperation("find", "students")
	defer timer.ObserveDuration()

	var student model.Student
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"email": email, "enrolled": true}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("db")
		return nil, err
	}
	return &student, nil
}
