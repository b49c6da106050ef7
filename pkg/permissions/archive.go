package permissions

// ArchiveFlag names one archive permission.
type ArchiveFlag string

const (
	ArchiveFullAPIAccess     ArchiveFlag = "FullAPIAccess"
	ArchiveDeleteBatches     ArchiveFlag = "DeleteBatches"
	ArchiveMoveDoc           ArchiveFlag = "MoveDoc"
	ArchiveModifyPages       ArchiveFlag = "ModifyPages"
	ArchivePublishRevisions  ArchiveFlag = "PublishRevisions"
	ArchiveViewDocRevision   ArchiveFlag = "ViewDocRevision"
	ArchiveLaunchDocCopy     ArchiveFlag = "LaunchDocCopy"
	ArchiveLaunchDoc         ArchiveFlag = "LaunchDoc"
	ArchiveModifyAnnotations ArchiveFlag = "ModifyAnnotations"
	ArchiveModifyData        ArchiveFlag = "ModifyData"
	ArchiveViewDocHistory    ArchiveFlag = "ViewDocHistory"
	ArchiveViewInAcrobat     ArchiveFlag = "ViewInAcrobat"
	ArchiveExportDocs        ArchiveFlag = "ExportDocs"
	ArchiveExportData        ArchiveFlag = "ExportData"
	ArchiveEmail             ArchiveFlag = "Email"
	ArchivePrint             ArchiveFlag = "Print"
	ArchiveDelete            ArchiveFlag = "Delete"
	ArchiveModifyDocument    ArchiveFlag = "ModifyDocument"
	ArchiveAdd               ArchiveFlag = "Add"
	ArchiveView              ArchiveFlag = "View"
)

// ArchiveWidth is the bit width of an archive permission level.
const ArchiveWidth = 20

// Archive is the archive permission codec. Every one of its 20 bits is named.
var Archive = MustCodec("archive", ArchiveWidth,
	Position[ArchiveFlag]{0, ArchiveFullAPIAccess},
	Position[ArchiveFlag]{1, ArchiveDeleteBatches},
	Position[ArchiveFlag]{2, ArchiveMoveDoc},
	Position[ArchiveFlag]{3, ArchiveModifyPages},
	Position[ArchiveFlag]{4, ArchivePublishRevisions},
	Position[ArchiveFlag]{5, ArchiveViewDocRevision},
	Position[ArchiveFlag]{6, ArchiveLaunchDocCopy},
	Position[ArchiveFlag]{7, ArchiveLaunchDoc},
	Position[ArchiveFlag]{8, ArchiveModifyAnnotations},
	Position[ArchiveFlag]{9, ArchiveModifyData},
	Position[ArchiveFlag]{10, ArchiveViewDocHistory},
	Position[ArchiveFlag]{11, ArchiveViewInAcrobat},
	Position[ArchiveFlag]{12, ArchiveExportDocs},
	Position[ArchiveFlag]{13, ArchiveExportData},
	Position[ArchiveFlag]{14, ArchiveEmail},
	Position[ArchiveFlag]{15, ArchivePrint},
	Position[ArchiveFlag]{16, ArchiveDelete},
	Position[ArchiveFlag]{17, ArchiveModifyDocument},
	Position[ArchiveFlag]{18, ArchiveAdd},
	Position[ArchiveFlag]{19, ArchiveView},
)

// ArchivePermissions is a user's or group's permission set on an archive.
type ArchivePermissions = Set[ArchiveFlag]

// NewArchivePermissions decodes and normalizes an archive level.
func NewArchivePermissions(level uint64) *ArchivePermissions {
	return Archive.FromLevel(level)
}
