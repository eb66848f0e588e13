package service

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

type UserService interface {
	GetAllUsers() ([]model.User, error)
	GetUser(id uuid.UUID) (*model.User, error)
	CreateUser(user *model.User) error
	UpdateUser(id uuid.UUID, patch *model.UserPatch) (*model.User, error)
	DeleteUser(id uuid.UUID) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{userRepo: repo}
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) GetUser(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(user *model.User) error {
	if errs := validator.ValidateStruct(user); len(errs) > 0 {
		return validationError(errs)
	}
	return s.userRepo.Create(user)
}

func (s *userService) UpdateUser(id uuid.UUID, patch *model.UserPatch) (*model.User, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	patch.Apply(user)
	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return nil, err
	}
	return user, nil
}
