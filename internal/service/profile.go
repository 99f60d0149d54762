package service

import (
	"errors"

	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/repository"
)

type ProfileService interface {
	Get(userID string) (model.Profile, error)
	List(limit, offset int) ([]model.Profile, int64, error)
}

type profileService struct {
	profiles repository.ProfileRepository
}

func NewProfileService(profiles repository.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(userID string) (model.Profile, error) {
	profile, err := s.profiles.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return model.Profile{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return model.Profile{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return profile, nil
}

func (s *profileService) List(limit, offset int) ([]model.Profile, int64, error) {
	profiles, err := s.profiles.List(limit, offset)
	if err != nil {
		return nil, 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	total, err := s.profiles.Count()
	if err != nil {
		return nil, 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return profiles, total, nil
}
