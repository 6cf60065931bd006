package services

import (
	"context"
	"strings"

	"github.com/terraincognita07/dayledger/internal/models"
)

type ClientRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Client, error)
	FindByUserAndID(ctx context.Context, userID string, clientID string) (models.Client, bool, error)
	Create(ctx context.Context, client *models.Client) error
	UpdateColumns(ctx context.Context, userID string, clientID string, updates map[string]any) error
	DeleteByUserAndID(ctx context.Context, userID string, clientID string) (bool, error)
}

type ClientDraft struct {
	Name    string  `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

type ClientPatch struct {
	Name    Optional[string] `json:"name"`
	Email   Optional[string] `json:"email"`
	Company Optional[string] `json:"company"`
	Phone   Optional[string] `json:"phone"`
	Address Optional[string] `json:"address"`
	Notes   Optional[string] `json:"notes"`
}

type ClientService struct {
	clients ClientRepository
}

func NewClientService(clients ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

func (service *ClientService) List(ctx context.Context, owner string) ([]models.Client, error) {
	clients, err := service.clients.ListByUser(ctx, owner)
	if err != nil {
		return nil, persistenceError("fetch clients", err)
	}
	if clients == nil {
		clients = make([]models.Client, 0)
	}
	return clients, nil
}

func (service *ClientService) Get(ctx context.Context, owner string, clientID string) (models.Client, error) {
	client, found, err := service.clients.FindByUserAndID(ctx, owner, clientID)
	if err != nil {
		return models.Client{}, persistenceError("fetch client", err)
	}
	if !found {
		return models.Client{}, notFoundError("client")
	}
	return client, nil
}

func (service *ClientService) Create(ctx context.Context, owner string, draft ClientDraft) (models.Client, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Email != nil {
		email := strings.TrimSpace(*draft.Email)
		draft.Email = &email
	}
	if err := validateDraft(draft); err != nil {
		return models.Client{}, err
	}

	client := models.Client{
		UserID:  owner,
		Name:    draft.Name,
		Email:   draft.Email,
		Company: draft.Company,
		Phone:   draft.Phone,
		Address: draft.Address,
		Notes:   draft.Notes,
	}
	if err := service.clients.Create(ctx, &client); err != nil {
		return models.Client{}, persistenceError("create client", err)
	}
	return client, nil
}

func (service *ClientService) Patch(ctx context.Context, owner string, clientID string, patch ClientPatch) (models.Client, error) {
	if _, err := service.Get(ctx, owner, clientID); err != nil {
		return models.Client{}, err
	}

	updates := make(map[string]any)
	if patch.Name.Set {
		name := strings.TrimSpace(patch.Name.ValueOr(""))
		if name == "" {
			return models.Client{}, requiredFieldError("name")
		}
		updates["name"] = name
	}
	if patch.Email.Set {
		if patch.Email.Value != nil && *patch.Email.Value != "" {
			if err := draftValidation().Var(*patch.Email.Value, "email"); err != nil {
				return models.Client{}, newValidationError("email", "invalid email")
			}
		}
		updates["email"] = patch.Email.Value
	}
	for column, field := range map[string]Optional[string]{
		"company": patch.Company,
		"phone":   patch.Phone,
		"address": patch.Address,
		"notes":   patch.Notes,
	} {
		if field.Set {
			updates[column] = field.Value
		}
	}

	if err := service.clients.UpdateColumns(ctx, owner, clientID, updates); err != nil {
		return models.Client{}, persistenceError("update client", err)
	}
	return service.Get(ctx, owner, clientID)
}

func (service *ClientService) Delete(ctx context.Context, owner string, clientID string) error {
	deleted, err := service.clients.DeleteByUserAndID(ctx, owner, clientID)
	if err != nil {
		return persistenceError("delete client", err)
	}
	if !deleted {
		return notFoundError("client")
	}
	return nil
}
