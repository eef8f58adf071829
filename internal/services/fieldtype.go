package services

import "strings"

// Field type tags understood by the destination platform.
const (
	FieldTypeData     = "Data"
	FieldTypeText     = "Text"
	FieldTypeInt      = "Int"
	FieldTypeFloat    = "Float"
	FieldTypeDate     = "Date"
	FieldTypeDatetime = "Datetime"
	FieldTypeTime     = "Time"
	FieldTypeCheck    = "Check"
	FieldTypeLink     = "Link"
	FieldTypeSelect   = "Select"
	FieldTypeJSON     = "JSON"
	FieldTypeAttach   = "Attach"
)

var fieldTypeMap = map[string]string{
	// bounded character types
	"char":              FieldTypeData,
	"character":         FieldTypeData,
	"varchar":           FieldTypeData,
	"character varying": FieldTypeData,
	"bpchar":            FieldTypeData,
	"nchar":             FieldTypeData,
	"nvarchar":          FieldTypeData,

	// unbounded text
	"text":       FieldTypeText,
	"ntext":      FieldTypeText,
	"tinytext":   FieldTypeText,
	"mediumtext": FieldTypeText,
	"longtext":   FieldTypeText,
	"clob":       FieldTypeText,
	"xml":        FieldTypeText,

	// integers
	"int":         FieldTypeInt,
	"integer":     FieldTypeInt,
	"int2":        FieldTypeInt,
	"int4":        FieldTypeInt,
	"int8":        FieldTypeInt,
	"smallint":    FieldTypeInt,
	"bigint":      FieldTypeInt,
	"tinyint":     FieldTypeInt,
	"mediumint":   FieldTypeInt,
	"smallserial": FieldTypeInt,
	"serial":      FieldTypeInt,
	"bigserial":   FieldTypeInt,

	// exact and floating point numerics
	"decimal":          FieldTypeFloat,
	"numeric":          FieldTypeFloat,
	"float":            FieldTypeFloat,
	"float4":           FieldTypeFloat,
	"float8":           FieldTypeFloat,
	"real":             FieldTypeFloat,
	"double":           FieldTypeFloat,
	"double precision": FieldTypeFloat,
	"money":            FieldTypeFloat,
	"smallmoney":       FieldTypeFloat,

	// temporal types
	"date":                        FieldTypeDate,
	"datetime":                    FieldTypeDatetime,
	"datetime2":                   FieldTypeDatetime,
	"smalldatetime":               FieldTypeDatetime,
	"timestamp":                   FieldTypeDatetime,
	"timestamptz":                 FieldTypeDatetime,
	"timestamp without time zone": FieldTypeDatetime,
	"timestamp with time zone":    FieldTypeDatetime,
	"time":                        FieldTypeTime,
	"timetz":                      FieldTypeTime,
	"time without time zone":      FieldTypeTime,
	"time with time zone":         FieldTypeTime,

	// boolean-like
	"bit":     FieldTypeCheck,
	"bool":    FieldTypeCheck,
	"boolean": FieldTypeCheck,

	// structured documents
	"json":  FieldTypeJSON,
	"jsonb": FieldTypeJSON,

	// opaque identifiers and small binary values
	"uuid":             FieldTypeData,
	"uniqueidentifier": FieldTypeData,
	"binary":           FieldTypeData,
	"varbinary":        FieldTypeData,

	// large binary payloads
	"bytea":      FieldTypeAttach,
	"blob":       FieldTypeAttach,
	"tinyblob":   FieldTypeAttach,
	"mediumblob": FieldTypeAttach,
	"longblob":   FieldTypeAttach,
	"image":      FieldTypeAttach,

	// enumerations
	"enum": FieldTypeSelect,
}

var validFieldTypes = map[string]bool{
	FieldTypeData:     true,
	FieldTypeText:     true,
	FieldTypeInt:      true,
	FieldTypeFloat:    true,
	FieldTypeDate:     true,
	FieldTypeDatetime: true,
	FieldTypeTime:     true,
	FieldTypeCheck:    true,
	FieldTypeLink:     true,
	FieldTypeSelect:   true,
	FieldTypeJSON:     true,
	FieldTypeAttach:   true,
}

// MapFieldType translates a native SQL type name into a platform field type.
// Length suffixes like varchar(255) are ignored, and unknown types fall back
// to Data so the mapping is total.
func MapFieldType(sqlType string) string {
	key := strings.ToLower(strings.TrimSpace(sqlType))
	if fieldType, ok := fieldTypeMap[key]; ok {
		return fieldType
	}

	if idx := strings.Index(key, "("); idx > 0 {
		if fieldType, ok := fieldTypeMap[strings.TrimSpace(key[:idx])]; ok {
			return fieldType
		}
	}

	return FieldTypeData
}

// IsValidFieldType reports whether tag is one of the platform's field types.
func IsValidFieldType(tag string) bool {
	return validFieldTypes[tag]
}
