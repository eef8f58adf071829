package models

// TableExport is the response payload for a table data export.
type TableExport struct {
	TableName string                   `json:"table_name"`
	Rows      []map[string]interface{} `json:"rows"`
}

// TableArtifact is the on-disk layout of an exported table.
type TableArtifact struct {
	TableName string                   `json:"table_name"`
	Data      []map[string]interface{} `json:"data"`
}
