// Package globalsearch is a client for the security and field administration
// endpoints of a GlobalSearch server.
//
// # Overview
//
// GlobalSearch exchanges archive permissions, inbox permissions and field
// properties as packed integer levels. This client decodes those levels into
// permission sets from package permissions on the way in and encodes them on
// the way out, so callers only ever work with named flags.
//
// # Configuration Example
//
//	server {
//	  base_url    = "https://gs.example.com/square9api"
//	  username    = "admin"
//	  password    = env("GLOBALSEARCH_PASSWORD")
//	  timeout     = "30s"
//	  max_retries = 3
//	}
//
// # API Endpoints Used
//
// Permissions of the authenticated user:
//   - GET  /api/dbs/:db/archives/:archive/permissions
//   - GET  /api/inboxes/:inbox/permissions
//
// Security administration:
//   - GET  /api/admin/dbs/:db/archives/:archive/security
//   - GET  /api/admin/inboxes/:inbox/security
//   - POST /api/admin/security
//
// Field administration:
//   - GET  /api/admin/dbs/:db/fields
//   - PUT  /api/admin/dbs/:db/fields/:id
//
// # Error Handling
//
// Transport errors and 5xx responses are retried with exponential backoff.
// Other non-2xx responses are returned as *APIError; use errors.Is with
// ErrNotFound or ErrUnauthorized to classify them.
//
// # Security
//
//   - Basic authentication on every request
//   - Password is never logged or serialized to JSON
//   - TLS verification can be disabled for development servers only
package globalsearch
