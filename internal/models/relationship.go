package models

// RelationshipEdge is one foreign key edge. The parent side holds the
// constraint, the child side is the table it references.
type RelationshipEdge struct {
	ParentTable  string `json:"parent_table"`
	ParentColumn string `json:"parent_column"`
	ChildTable   string `json:"child_table"`
	ChildColumn  string `json:"child_column"`
}

// ColumnLink reports whether a single column is a foreign key and, when it
// is, which table a Link field for it should point at.
type ColumnLink struct {
	IsForeignKey       bool   `json:"is_foreign_key"`
	ReferenceTable     string `json:"reference_table,omitempty"`
	SuggestedFieldtype string `json:"suggested_fieldtype,omitempty"`
}
