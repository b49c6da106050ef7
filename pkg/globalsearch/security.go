package globalsearch

import (
	"context"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/permissions"
)

// Grant is one principal's permission entry on a secured object.
type Grant[P any] struct {
	// Name is the user or group name.
	Name string `json:"Name"`

	// Group is true when Name refers to a security group.
	Group bool `json:"IsGroup"`

	// Level is the decoded permission level.
	Level P `json:"Level"`
}

// ArchiveGrant is a permission entry on an archive.
type ArchiveGrant = Grant[permissions.ArchivePermissions]

// InboxGrant is a permission entry on an inbox.
type InboxGrant = Grant[permissions.InboxPermissions]

// SecurityUpdate assigns permission levels to users or groups on archives
// and inboxes in a single call.
type SecurityUpdate struct {
	// Database is required when Archives is not empty.
	Database int      `json:"Database,omitempty"`
	Archives []int    `json:"Archives,omitempty"`
	Inboxes  []int    `json:"Inboxes,omitempty"`
	Users    []string `json:"Users"`

	ArchiveLevel *permissions.ArchivePermissions `json:"ArchiveLevel,omitempty"`
	InboxLevel   *permissions.InboxPermissions   `json:"InboxLevel,omitempty"`
}

// Validate checks the update before it is sent.
func (u *SecurityUpdate) Validate() error {
	hasArchives := len(u.Archives) > 0
	hasInboxes := len(u.Inboxes) > 0

	return validation.ValidateStruct(u,
		validation.Field(&u.Users, validation.Required.Error("at least one user or group is required")),
		validation.Field(&u.Archives,
			validation.When(!hasInboxes, validation.Required.Error("at least one archive or inbox is required")),
			validation.Each(validation.Required, validation.Min(1)),
		),
		validation.Field(&u.Inboxes, validation.Each(validation.Required, validation.Min(1))),
		validation.Field(&u.Database, validation.When(hasArchives, validation.Required, validation.Min(1))),
		validation.Field(&u.ArchiveLevel, validation.When(hasArchives, validation.NotNil)),
		validation.Field(&u.InboxLevel, validation.When(hasInboxes, validation.NotNil)),
	)
}

type levelResponse[P any] struct {
	Level P `json:"Level"`
}

// ArchivePermissions returns the authenticated user's permissions on an
// archive. The returned set carries the level exactly as the server sent it.
func (c *Client) ArchivePermissions(ctx context.Context, db, archive int) (*permissions.ArchivePermissions, error) {
	if err := validateIDs("database", db, "archive", archive); err != nil {
		return nil, err
	}

	var resp levelResponse[permissions.ArchivePermissions]
	path := buildPath("dbs", db, "archives", archive, "permissions")
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get archive permissions: %w", err)
	}

	return &resp.Level, nil
}

// InboxPermissions returns the authenticated user's permissions on an inbox.
func (c *Client) InboxPermissions(ctx context.Context, inbox int) (*permissions.InboxPermissions, error) {
	if err := validateIDs("inbox", inbox); err != nil {
		return nil, err
	}

	var resp levelResponse[permissions.InboxPermissions]
	path := buildPath("inboxes", inbox, "permissions")
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get inbox permissions: %w", err)
	}

	return &resp.Level, nil
}

// ArchiveSecurity lists every user and group granted access to an archive.
func (c *Client) ArchiveSecurity(ctx context.Context, db, archive int) ([]ArchiveGrant, error) {
	if err := validateIDs("database", db, "archive", archive); err != nil {
		return nil, err
	}

	var grants []ArchiveGrant
	path := buildPath("admin", "dbs", db, "archives", archive, "security")
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &grants); err != nil {
		return nil, fmt.Errorf("failed to list archive security: %w", err)
	}

	return grants, nil
}

// InboxSecurity lists every user and group granted access to an inbox.
func (c *Client) InboxSecurity(ctx context.Context, inbox int) ([]InboxGrant, error) {
	if err := validateIDs("inbox", inbox); err != nil {
		return nil, err
	}

	var grants []InboxGrant
	path := buildPath("admin", "inboxes", inbox, "security")
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &grants); err != nil {
		return nil, fmt.Errorf("failed to list inbox security: %w", err)
	}

	return grants, nil
}

// UpdateSecurity applies a security update. Levels are encoded from the
// current flags of each set, so reserved bits are never sent.
func (c *Client) UpdateSecurity(ctx context.Context, update *SecurityUpdate) error {
	if update == nil {
		return fmt.Errorf("%w: security update is nil", ErrInvalidArgument)
	}
	if err := update.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	if update.ArchiveLevel != nil {
		update.ArchiveLevel.Encode()
	}
	if update.InboxLevel != nil {
		update.InboxLevel.Encode()
	}

	c.logger.Info("updating security",
		"database", update.Database,
		"archives", update.Archives,
		"inboxes", update.Inboxes,
		"users", len(update.Users))

	if err := c.doRequest(ctx, http.MethodPost, buildPath("admin", "security"), update, nil); err != nil {
		return fmt.Errorf("failed to update security: %w", err)
	}

	return nil
}

// validateIDs takes name/value pairs and checks that every ID is positive.
func validateIDs(pairs ...interface{}) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _ := pairs[i].(string)
		if err := validation.Validate(pairs[i+1], validation.Required, validation.Min(1)); err != nil {
			return fmt.Errorf("%w: %s id %v: %v", ErrInvalidArgument, name, pairs[i+1], err)
		}
	}
	return nil
}
