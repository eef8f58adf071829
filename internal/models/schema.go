package models

// ColumnDescriptor is one row of a table's structure as reported by
// information_schema.columns.
type ColumnDescriptor struct {
	ColumnName string `json:"column_name"`
	DataType   string `json:"data_type"`
	MaxLength  *int   `json:"max_length"`
	IsNullable bool   `json:"is_nullable"`
}

type TableList struct {
	Tables      []string `json:"tables"`
	TotalTables int      `json:"total_tables"`
}
