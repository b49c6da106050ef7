package globalsearch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/permissions"
)

func TestArchivePermissions(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/square9api/api/dbs/1/archives/7/permissions", r.URL.Path)
		w.Write([]byte(`{"Level": 961194}`))
	})

	perms, err := client.ArchivePermissions(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, uint64(961194), perms.Level())
	assert.True(t, perms.Has(permissions.ArchiveFullAPIAccess))
	assert.True(t, perms.Has(permissions.ArchiveDeleteBatches))
	assert.True(t, perms.Has(permissions.ArchiveMoveDoc))
	assert.False(t, perms.Has(permissions.ArchiveModifyPages))
	assert.False(t, perms.Has(permissions.ArchiveView))
}

func TestInboxPermissions_KeepsServerLevel(t *testing.T) {
	// Bit 2 is reserved in the inbox table.
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/square9api/api/inboxes/3/permissions", r.URL.Path)
		w.Write([]byte(`{"Level": "32769"}`))
	})

	perms, err := client.InboxPermissions(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, uint64(32769), perms.Level())
	assert.Equal(t, []permissions.InboxFlag{permissions.InboxView}, perms.Enabled())
	assert.Equal(t, uint64(1), perms.Encode())
}

func TestPermissions_InvalidIDs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})
	ctx := context.Background()

	_, err := client.ArchivePermissions(ctx, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.ArchivePermissions(ctx, 1, -2)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.InboxPermissions(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.ArchiveSecurity(ctx, -1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.InboxSecurity(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArchiveSecurity(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/square9api/api/admin/dbs/2/archives/5/security", r.URL.Path)
		w.Write([]byte(`[
			{"Name": "SSAdministrator", "IsGroup": false, "Level": 1048575},
			{"Name": "Accounting", "IsGroup": true, "Level": 3}
		]`))
	})

	grants, err := client.ArchiveSecurity(context.Background(), 2, 5)
	require.NoError(t, err)
	require.Len(t, grants, 2)

	assert.Equal(t, "SSAdministrator", grants[0].Name)
	assert.False(t, grants[0].Group)
	assert.Len(t, grants[0].Level.Enabled(), 20)

	assert.Equal(t, "Accounting", grants[1].Name)
	assert.True(t, grants[1].Group)
	assert.Equal(t,
		[]permissions.ArchiveFlag{permissions.ArchiveAdd, permissions.ArchiveView},
		grants[1].Level.Enabled())
}

func TestInboxSecurity(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/square9api/api/admin/inboxes/9/security", r.URL.Path)
		w.Write([]byte(`[{"Name": "clerk", "IsGroup": false, "Level": 198719}]`))
	})

	grants, err := client.InboxSecurity(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Len(t, grants[0].Level.Enabled(), 9)
}

func TestUpdateSecurity(t *testing.T) {
	var body map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/square9api/api/admin/security", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusNoContent)
	})

	archive := permissions.NewArchivePermissions(0)
	archive.Enable(permissions.ArchiveView, permissions.ArchiveAdd)

	// A level read from the server with a reserved bit set.
	inbox := permissions.Inbox.Decode(1<<15 | 1)

	err := client.UpdateSecurity(context.Background(), &SecurityUpdate{
		Database:     1,
		Archives:     []int{4, 5},
		Inboxes:      []int{2},
		Users:        []string{"jdoe", "Accounting"},
		ArchiveLevel: archive,
		InboxLevel:   inbox,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(1), body["Database"])
	assert.Equal(t, []interface{}{float64(4), float64(5)}, body["Archives"])
	assert.Equal(t, []interface{}{float64(2)}, body["Inboxes"])
	assert.Equal(t, []interface{}{"jdoe", "Accounting"}, body["Users"])
	assert.Equal(t, float64(3), body["ArchiveLevel"])
	assert.Equal(t, float64(1), body["InboxLevel"], "reserved bits are dropped")
	assert.Equal(t, uint64(1), inbox.Level())
}

func TestUpdateSecurity_InboxOnly(t *testing.T) {
	var body map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	})

	inbox := permissions.NewInboxPermissions(0)
	inbox.SelectAll()

	err := client.UpdateSecurity(context.Background(), &SecurityUpdate{
		Inboxes:    []int{2},
		Users:      []string{"clerk"},
		InboxLevel: inbox,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(198719), body["InboxLevel"])
	assert.NotContains(t, body, "Database")
	assert.NotContains(t, body, "Archives")
	assert.NotContains(t, body, "ArchiveLevel")
}

func TestUpdateSecurity_Invalid(t *testing.T) {
	level := permissions.NewArchivePermissions(1)

	tests := []struct {
		name    string
		update  *SecurityUpdate
		wantErr string
	}{
		{
			name:    "nil update",
			update:  nil,
			wantErr: "security update is nil",
		},
		{
			name:    "no users",
			update:  &SecurityUpdate{Database: 1, Archives: []int{1}, ArchiveLevel: level},
			wantErr: "at least one user or group is required",
		},
		{
			name:    "no targets",
			update:  &SecurityUpdate{Users: []string{"jdoe"}},
			wantErr: "at least one archive or inbox is required",
		},
		{
			name:    "archives without database",
			update:  &SecurityUpdate{Archives: []int{1}, Users: []string{"jdoe"}, ArchiveLevel: level},
			wantErr: "Database: cannot be blank",
		},
		{
			name:    "archives without level",
			update:  &SecurityUpdate{Database: 1, Archives: []int{1}, Users: []string{"jdoe"}},
			wantErr: "ArchiveLevel: is required",
		},
		{
			name:    "invalid archive id",
			update:  &SecurityUpdate{Database: 1, Archives: []int{0}, Users: []string{"jdoe"}, ArchiveLevel: level},
			wantErr: "Archives",
		},
		{
			name:    "invalid inbox id",
			update:  &SecurityUpdate{Inboxes: []int{3, 0}, Users: []string{"jdoe"}, InboxLevel: permissions.NewInboxPermissions(1)},
			wantErr: "Inboxes",
		},
		{
			name:    "negative archive id",
			update:  &SecurityUpdate{Database: 1, Archives: []int{-4}, Users: []string{"jdoe"}, ArchiveLevel: level},
			wantErr: "Archives",
		},
		{
			name:    "inboxes without level",
			update:  &SecurityUpdate{Inboxes: []int{3}, Users: []string{"jdoe"}},
			wantErr: "InboxLevel: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				t.Errorf("unexpected request to %s", r.URL.Path)
			})

			err := client.UpdateSecurity(context.Background(), tt.update)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
