package services

import (
	"context"
	"strings"

	"github.com/baharkarakas/credit-ledger/internal/api/validate"
	"github.com/baharkarakas/credit-ledger/internal/events"
	"github.com/baharkarakas/credit-ledger/internal/metrics"
	"github.com/baharkarakas/credit-ledger/internal/models"
	repo "github.com/baharkarakas/credit-ledger/internal/repository"
)

const (
	maxNameLen  = 120
	maxPhoneLen = 32
)

type ClientInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// normalize trims input and turns an empty phone into nil.
func (in ClientInput) normalize() (string, *string, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if err := validate.Collect(
		validate.Required("name", name),
		validate.MaxLen("name", name, maxNameLen),
		validate.MaxLen("phone", phone, maxPhoneLen),
	); err != nil {
		return "", nil, err
	}
	if phone == "" {
		return name, nil, nil
	}
	return name, &phone, nil
}

type ClientService struct {
	r      repo.Clients
	events *events.Dispatcher
}

func NewClientService(r repo.Clients, ev *events.Dispatcher) *ClientService {
	return &ClientService{r: r, events: ev}
}

func (s *ClientService) List(ctx context.Context, ownerID string) ([]models.Client, error) {
	cs, err := s.r.List(ctx, ownerID)
	return cs, observe(err)
}

func (s *ClientService) Get(ctx context.Context, ownerID, id string) (models.Client, error) {
	c, err := s.r.Get(ctx, ownerID, id)
	return c, observe(err)
}

func (s *ClientService) Create(ctx context.Context, ownerID string, in ClientInput) (models.Client, error) {
	name, phone, err := in.normalize()
	if err != nil {
		return models.Client{}, err
	}
	c, err := s.r.Create(ctx, models.Client{UserID: ownerID, Name: name, Phone: phone})
	if err != nil {
		return models.Client{}, observe(err)
	}
	metrics.ClientOpsTotal.WithLabelValues("create").Inc()
	s.events.Emit(events.Event{Type: events.ClientCreated, UserID: ownerID, ClientID: c.ID})
	return c, nil
}

func (s *ClientService) Update(ctx context.Context, ownerID, id string, in ClientInput) (models.Client, error) {
	name, phone, err := in.normalize()
	if err != nil {
		return models.Client{}, err
	}
	c, err := s.r.Update(ctx, ownerID, id, name, phone)
	if err != nil {
		return models.Client{}, observe(err)
	}
	metrics.ClientOpsTotal.WithLabelValues("update").Inc()
	s.events.Emit(events.Event{Type: events.ClientUpdated, UserID: ownerID, ClientID: c.ID})
	return c, nil
}

// Delete removes the client together with all of its transactions.
func (s *ClientService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.r.Delete(ctx, ownerID, id); err != nil {
		return observe(err)
	}
	metrics.ClientOpsTotal.WithLabelValues("delete").Inc()
	s.events.Emit(events.Event{Type: events.ClientDeleted, UserID: ownerID, ClientID: id})
	return nil
}
