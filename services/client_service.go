package services

import (
	"law_console_go/models"
	"law_console_go/store"
	"time"

	"github.com/google/uuid"
)

// ClientService is the mutation API for the client collection. Cases
// reference clients by ID only; removing or hiding a client never cascades
// to its cases.
type ClientService struct {
	store *store.Store
}

// NewClientService creates a client service backed by the given store
func NewClientService(st *store.Store) *ClientService {
	return &ClientService{store: st}
}

// CreateClientInput carries the caller-supplied fields for a new client
type CreateClientInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// UpdateClientInput carries a partial update; nil fields are left untouched
type UpdateClientInput struct {
	Name     *string `json:"name,omitempty"`
	Status   *string `json:"status,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Document *string `json:"document,omitempty"`
	Hidden   *bool   `json:"hidden,omitempty"`
}

// CreateClient appends a new active client to the collection
func (s *ClientService) CreateClient(input CreateClientInput) *models.Client {
	now := time.Now()
	clients := s.store.LoadClients()

	client := models.Client{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Status:    models.ClientStatusActive,
		Email:     input.Email,
		Phone:     input.Phone,
		Document:  input.Document,
		CreatedAt: now,
		UpdatedAt: now,
	}

	clients = append(clients, client)
	s.store.SaveClients(clients)
	return &client
}

// UpdateClient applies a partial update and refreshes the last-modified
// timestamp. Returns false when no client has the given ID.
func (s *ClientService) UpdateClient(id string, input UpdateClientInput) bool {
	clients := s.store.LoadClients()

	for i := range clients {
		if clients[i].ID != id {
			continue
		}

		if input.Name != nil {
			clients[i].Name = *input.Name
		}
		if input.Status != nil {
			clients[i].Status = *input.Status
		}
		if input.Email != nil {
			clients[i].Email = *input.Email
		}
		if input.Phone != nil {
			clients[i].Phone = *input.Phone
		}
		if input.Document != nil {
			clients[i].Document = *input.Document
		}
		if input.Hidden != nil {
			clients[i].Hidden = *input.Hidden
		}

		clients[i].UpdatedAt = time.Now()
		s.store.SaveClients(clients)
		return true
	}

	return false
}

// ListClients returns non-hidden clients, or all when includeHidden is set
func (s *ClientService) ListClients(includeHidden bool) []models.Client {
	clients := s.store.LoadClients()
	listed := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if c.Hidden && !includeHidden {
			continue
		}
		listed = append(listed, c)
	}
	return listed
}
