package permissions

// FieldProperty names one property of an archive field definition.
type FieldProperty string

// SystemFieldLastModifedBy keeps the server's historical spelling.
const (
	PropSystemFieldReadOnly      FieldProperty = "SystemFieldReadOnly"
	PropSystemFieldFileType      FieldProperty = "SystemFieldFileType"
	PropTableField               FieldProperty = "TableField"
	PropSystemFieldLastModifedBy FieldProperty = "SystemFieldLastModifedBy"
	PropDynamicList              FieldProperty = "DynamicList"
	PropDropdownList             FieldProperty = "DropdownList"
	PropMultiValueField          FieldProperty = "MultiValueField"
	PropSystemFieldPageCount     FieldProperty = "SystemFieldPageCount"
	PropSystemFieldIndexedBy     FieldProperty = "SystemFieldIndexedBy"
	PropSystemFieldDateEntered   FieldProperty = "SystemFieldDateEntered"
	PropRequired                 FieldProperty = "Required"
)

// FieldWidth is the bit width of a field property level.
const FieldWidth = 12

// Field is the field property codec. The least-significant bit is reserved.
var Field = MustCodec("field", FieldWidth,
	Position[FieldProperty]{0, PropSystemFieldReadOnly},
	Position[FieldProperty]{1, PropSystemFieldFileType},
	Position[FieldProperty]{2, PropTableField},
	Position[FieldProperty]{3, PropSystemFieldLastModifedBy},
	Position[FieldProperty]{4, PropDynamicList},
	Position[FieldProperty]{5, PropDropdownList},
	Position[FieldProperty]{6, PropMultiValueField},
	Position[FieldProperty]{7, PropSystemFieldPageCount},
	Position[FieldProperty]{8, PropSystemFieldIndexedBy},
	Position[FieldProperty]{9, PropSystemFieldDateEntered},
	Position[FieldProperty]{10, PropRequired},
)

// FieldProperties is the property set of a field definition.
type FieldProperties = Set[FieldProperty]

// NewFieldProperties decodes and normalizes a field property level.
func NewFieldProperties(level uint64) *FieldProperties {
	return Field.FromLevel(level)
}
