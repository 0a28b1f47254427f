package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ServiceUsecase struct {
	services repo.ServiceRepository
}

// DI
func NewServiceUsecase(services repo.ServiceRepository) *ServiceUsecase {
	return &ServiceUsecase{services: services}
}

type CreateServiceInput struct {
	Title       string
	Description string
	Price       int64
}

type ServiceListOutput struct {
	Items []model.Service `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ServiceUsecase) Create(ctx context.Context, ownerID int64, in CreateServiceInput) (model.Service, error) {
	if ownerID <= 0 {
		return model.Service{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" || len(title) > 255 {
		return model.Service{}, NewHTTPError(http.StatusBadRequest, "invalid title")
	}
	if in.Price < 0 {
		return model.Service{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	created, err := u.services.Create(ctx, model.Service{
		OwnerID:     ownerID,
		Title:       title,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		return model.Service{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}

func (u *ServiceUsecase) Get(ctx context.Context, id int64) (model.Service, error) {
	if id <= 0 {
		return model.Service{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s, err := u.services.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Service{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Service{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return s, nil
}

func (u *ServiceUsecase) List(ctx context.Context, page int, limit int) (ServiceListOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := u.services.List(ctx, page, limit)
	if err != nil {
		return ServiceListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ServiceListOutput{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
