package globalsearch

import (
	"context"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/permissions"
)

// Field is an archive field definition.
type Field struct {
	ID     int    `json:"ID"`
	Name   string `json:"Name"`
	Type   string `json:"Type"`
	Length int    `json:"Length,omitempty"`

	// List is the ID of the list backing a dropdown or dynamic list field.
	List int `json:"List,omitempty"`

	// Properties is the decoded "Prop" level.
	Properties permissions.FieldProperties `json:"Prop"`
}

// Validate checks the field before it is sent.
func (f *Field) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.ID, validation.Required, validation.Min(1)),
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Length, validation.Min(0)),
	)
}

// Fields lists the field definitions of a database.
func (c *Client) Fields(ctx context.Context, db int) ([]Field, error) {
	if err := validateIDs("database", db); err != nil {
		return nil, err
	}

	var fields []Field
	if err := c.doRequest(ctx, http.MethodGet, buildPath("admin", "dbs", db, "fields"), nil, &fields); err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}

	return fields, nil
}

// UpdateField saves a field definition. The property level is re-encoded
// from the flags, dropping the reserved bit.
func (c *Client) UpdateField(ctx context.Context, db int, field *Field) error {
	if err := validateIDs("database", db); err != nil {
		return err
	}
	if field == nil {
		return fmt.Errorf("%w: field is nil", ErrInvalidArgument)
	}
	if err := field.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	field.Properties.Encode()

	path := buildPath("admin", "dbs", db, "fields", field.ID)
	if err := c.doRequest(ctx, http.MethodPut, path, field, nil); err != nil {
		return fmt.Errorf("failed to update field %d: %w", field.ID, err)
	}

	return nil
}
