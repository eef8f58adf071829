package services

import (
	"reflect"
	"testing"

	"github.com/niurkamc1962/backend-migracion/internal/models"
)

func TestResolveField(t *testing.T) {
	tests := []struct {
		name string
		spec models.FieldSpec
		want models.FieldDescriptor
	}{
		{
			"derived name and mapped type",
			models.FieldSpec{ColumnName: "CustomerId", DataType: "int", Required: true},
			models.FieldDescriptor{FieldName: "customer_id", Label: "CustomerId", FieldType: FieldTypeInt, Required: true},
		},
		{
			"varchar maps to Data",
			models.FieldSpec{ColumnName: "CustomerName", DataType: "varchar(100)", Required: true},
			models.FieldDescriptor{FieldName: "customer_name", Label: "CustomerName", FieldType: FieldTypeData, Required: true},
		},
		{
			"valid override type wins over mapping",
			models.FieldSpec{ColumnName: "CustomerId", DataType: "int", OverrideType: FieldTypeLink},
			models.FieldDescriptor{FieldName: "customer_id", Label: "CustomerId", FieldType: FieldTypeLink},
		},
		{
			"unknown override type falls back to mapping",
			models.FieldSpec{ColumnName: "Amount", DataType: "numeric", OverrideType: "Currency"},
			models.FieldDescriptor{FieldName: "amount", Label: "Amount", FieldType: FieldTypeFloat},
		},
		{
			"override name is lowercased, not snake cased",
			models.FieldSpec{ColumnName: "Total", DataType: "numeric", OverrideName: "GrandTotal"},
			models.FieldDescriptor{FieldName: "grandtotal", Label: "GrandTotal", FieldType: FieldTypeFloat},
		},
		{
			"optional column keeps reqd false",
			models.FieldSpec{ColumnName: "Notes", DataType: "text"},
			models.FieldDescriptor{FieldName: "notes", Label: "Notes", FieldType: FieldTypeText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveField(tt.spec); got != tt.want {
				t.Errorf("resolveField(%+v) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestAssembleDocument(t *testing.T) {
	req := &DoctypeRequest{
		Fields: []models.FieldSpec{
			{ColumnName: "CustomerId", DataType: "int", Required: true},
			{ColumnName: "CustomerName", DataType: "varchar(100)", Required: true},
			{ColumnName: "Notes", DataType: "text"},
		},
		Module:       "Ventas",
		IsChildTable: true,
	}

	doc := assembleDocument("Customers", req)

	if doc.Doctype != "DocType" || doc.Name != "Customers" {
		t.Fatalf("unexpected envelope: doctype=%q name=%q", doc.Doctype, doc.Name)
	}
	if doc.Module != "Ventas" {
		t.Errorf("Module = %q, want %q", doc.Module, "Ventas")
	}
	if doc.IsTable != 1 {
		t.Errorf("IsTable = %d, want 1", doc.IsTable)
	}
	if doc.Custom != 1 || doc.Owner != "Administrator" || doc.Engine != "InnoDB" {
		t.Errorf("unexpected defaults: custom=%d owner=%q engine=%q", doc.Custom, doc.Owner, doc.Engine)
	}

	wantOrder := []string{"customer_id", "customer_name", "notes"}
	if !reflect.DeepEqual(doc.FieldOrder, wantOrder) {
		t.Errorf("FieldOrder = %v, want %v", doc.FieldOrder, wantOrder)
	}
	if len(doc.Fields) != len(doc.FieldOrder) {
		t.Fatalf("got %d fields but %d entries in field_order", len(doc.Fields), len(doc.FieldOrder))
	}
	for i, field := range doc.Fields {
		if doc.FieldOrder[i] != field.FieldName {
			t.Errorf("FieldOrder[%d] = %q, want %q", i, doc.FieldOrder[i], field.FieldName)
		}
	}

	if doc.Fields[0].FieldType != FieldTypeInt || !doc.Fields[0].Required {
		t.Errorf("Fields[0] = %+v, want an Int required field", doc.Fields[0])
	}
	if doc.Fields[2].Required {
		t.Errorf("Fields[2] = %+v, want reqd false", doc.Fields[2])
	}

	if len(doc.Permissions) != 1 || doc.Permissions[0].Role != "System Manager" {
		t.Errorf("Permissions = %+v, want a single System Manager entry", doc.Permissions)
	}
}

func TestAssembleDocumentDefaults(t *testing.T) {
	doc := assembleDocument("Monedas", &DoctypeRequest{})

	if doc.Module != "Siscont" {
		t.Errorf("Module = %q, want the Siscont default", doc.Module)
	}
	if doc.IsTable != 0 {
		t.Errorf("IsTable = %d, want 0", doc.IsTable)
	}
	if doc.FieldOrder == nil || len(doc.FieldOrder) != 0 {
		t.Errorf("FieldOrder = %v, want an empty slice", doc.FieldOrder)
	}
	if doc.Fields == nil || len(doc.Fields) != 0 {
		t.Errorf("Fields = %v, want an empty slice", doc.Fields)
	}
}
