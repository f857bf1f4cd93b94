package usecase

import (
	"context"
	"errors"
	"time"

	"courseboard/model"
	"courseboard/repository"
	"courseboard/services"

	"github.com/google/uuid"
)

type UserService struct {
	UsersRepo    *repository.UsersRepo
	StudentsRepo *repository.StudentsRepo
}

// RegisterStudent creates a student-role user and enrolls them.
func (s *UserService) RegisterStudent(ctx context.Context, email, name, password string) (*model.User, error) {
	existing, err := s.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already exists")
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    uuid.New().String(),
		Email:     email,
		Password:  hash,
		Role:      model.RoleStudent,
		CreatedAt: time.Now(),
	}
	if err := s.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}

	student := &model.Student{
		Email:      email,
		Name:       name,
		Enrolled:   true,
		EnrolledAt: time.Now(),
	}
	if err := s.StudentsRepo.AddStudent(ctx, student); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks credentials and returns the user on success.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid email")
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		return nil, errors.New("incorrect password")
	}
	return user, nil
}
