package repository

import (
	"context"

	"vetapi/internal/model"
)

// ClientRepository defines data access for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) (*model.Client, error)

	// FindByID returns a client by its ID.
	FindByID(ctx context.Context, id string) (*model.Client, error)

	List(ctx context.Context) ([]model.Client, error)

	// Update persists the mutable fields of the client. Returns the stored row.
	Update(ctx context.Context, c *model.Client) (*model.Client, error)

	// Delete removes a client by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error

	// AppendPatient pushes the patient id onto the client's patients list.
	AppendPatient(ctx context.Context, clientID, patientID string) error

	// RemovePatient pulls the patient id from the client's patients list.
	RemovePatient(ctx context.Context, clientID, patientID string) error
}
