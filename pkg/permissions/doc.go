// Package permissions converts GlobalSearch permission and property levels
// between their packed integer wire form and named boolean flags.
//
// # Core Concepts
//
//  1. Codec: a fixed-width flag table. Bit position 0 is the most-significant
//     bit of the width, the last position is the least-significant bit.
//     Positions without a flag are reserved and always encode as zero.
//
//  2. Set: the in-memory flag assignment for one codec plus its current
//     level. Every mutation re-encodes the level.
//
//  3. Level: the integer exchanged with the server (for example the "Level"
//     field of an archive permission response).
//
// # Built-in codecs
//
//	Archive  20 bits, no reserved positions
//	Inbox    18 bits, positions 2-5 and 7-11 reserved
//	Field    12 bits, position 11 reserved
//
// # Usage Examples
//
//	// Decode a level returned by the server
//	perms := permissions.NewArchivePermissions(1048575)
//	if perms.Has(permissions.ArchiveView) {
//	    ...
//	}
//
//	// Build a level for an update request
//	inbox := permissions.Inbox.New()
//	inbox.Enable(permissions.InboxView, permissions.InboxAdd)
//	level := inbox.Level() // 3
//
// Sets marshal to JSON as their integer level, so request and response types
// can embed them directly.
package permissions
