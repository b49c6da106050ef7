package permissions

// InboxFlag names one inbox permission.
type InboxFlag string

const (
	InboxMove              InboxFlag = "Move"
	InboxModifyPages       InboxFlag = "ModifyPages"
	InboxModifyAnnotations InboxFlag = "ModifyAnnotations"
	InboxEmail             InboxFlag = "Email"
	InboxPrint             InboxFlag = "Print"
	InboxDelete            InboxFlag = "Delete"
	InboxModifyDocument    InboxFlag = "ModifyDocument"
	InboxAdd               InboxFlag = "Add"
	InboxView              InboxFlag = "View"
)

// InboxWidth is the bit width of an inbox permission level.
const InboxWidth = 18

// Inbox is the inbox permission codec. It is a subset of the archive layout
// kept positionally aligned with it by the server, so positions 2-5 and 7-11
// are reserved.
var Inbox = MustCodec("inbox", InboxWidth,
	Position[InboxFlag]{0, InboxMove},
	Position[InboxFlag]{1, InboxModifyPages},
	Position[InboxFlag]{6, InboxModifyAnnotations},
	Position[InboxFlag]{12, InboxEmail},
	Position[InboxFlag]{13, InboxPrint},
	Position[InboxFlag]{14, InboxDelete},
	Position[InboxFlag]{15, InboxModifyDocument},
	Position[InboxFlag]{16, InboxAdd},
	Position[InboxFlag]{17, InboxView},
)

// InboxPermissions is a user's or group's permission set on an inbox.
type InboxPermissions = Set[InboxFlag]

// NewInboxPermissions decodes and normalizes an inbox level.
func NewInboxPermissions(level uint64) *InboxPermissions {
	return Inbox.FromLevel(level)
}
