package models

// FieldSpec describes one column to carry into a doctype: the source column
// plus optional overrides. Keys line up with ColumnDescriptor so table
// structure output can be fed straight back in.
type FieldSpec struct {
	ColumnName   string `json:"column_name" binding:"required"`
	DataType     string `json:"data_type"`
	Required     bool   `json:"required"`
	OverrideType string `json:"override_type,omitempty"`
	OverrideName string `json:"override_name,omitempty"`
}

// FieldDescriptor is one resolved doctype field.
type FieldDescriptor struct {
	FieldName string `json:"field_name"`
	Label     string `json:"label"`
	FieldType string `json:"fieldtype"`
	Required  bool   `json:"reqd"`
}

type DocPermission struct {
	Role   string `json:"role"`
	Read   int    `json:"read"`
	Write  int    `json:"write"`
	Create int    `json:"create"`
	Delete int    `json:"delete"`
}

// TableDocument is a Frappe-compatible doctype definition generated from a
// table's columns.
type TableDocument struct {
	Doctype     string            `json:"doctype"`
	Name        string            `json:"name"`
	Module      string            `json:"module"`
	Custom      int               `json:"custom"`
	IsTable     int               `json:"istable"`
	Owner       string            `json:"owner"`
	Engine      string            `json:"engine"`
	FieldOrder  []string          `json:"field_order"`
	Fields      []FieldDescriptor `json:"fields"`
	Permissions []DocPermission   `json:"permissions"`
}
