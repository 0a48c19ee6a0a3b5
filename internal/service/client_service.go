package service

import (
	"context"

	"github.com/google/uuid"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/store"
)

// ClientService defines the client management contract.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (domain.Client, error)
	Save(ctx context.Context, client domain.Client) (domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type clientService struct {
	clients *store.Collection[domain.Client]
}

// NewClientService creates a ClientService over the client collection.
func NewClientService(clients *store.Collection[domain.Client]) ClientService {
	return &clientService{clients: clients}
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.GetAll(ctx)
}

func (s *clientService) Get(ctx context.Context, id string) (domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) Save(ctx context.Context, client domain.Client) (domain.Client, error) {
	verr := &domain.ValidationError{}
	if client.Name == "" {
		verr.Add("name", "must not be empty")
	}
	if client.Email == "" {
		verr.Add("email", "must not be empty")
	}
	if verr.HasErrors() {
		return domain.Client{}, verr
	}

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	return s.clients.Save(ctx, client)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.clients.DeleteByID(ctx, id)
}
