package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/niurkamc1962/backend-migracion/internal/config"
	"github.com/niurkamc1962/backend-migracion/internal/database"
	"github.com/niurkamc1962/backend-migracion/internal/models"
	"github.com/niurkamc1962/backend-migracion/internal/storage"
)

var seedStatements = []string{
	`CREATE TABLE "Customers" (
		"CustomerId"   integer PRIMARY KEY,
		"CustomerName" varchar(100) NOT NULL,
		"Balance"      numeric(10,2),
		"CreatedAt"    timestamp,
		"Avatar"       bytea
	)`,
	`CREATE TABLE "Orders" (
		"OrderId"    integer PRIMARY KEY,
		"CustomerId" integer NOT NULL REFERENCES "Customers" ("CustomerId"),
		"Total"      numeric(8,2)
	)`,
	`INSERT INTO "Customers" ("CustomerId", "CustomerName", "Balance", "CreatedAt")
		VALUES (1, 'Acme Corp', 12.50, '2024-03-01 10:30:00')`,
	`INSERT INTO "Orders" ("OrderId", "CustomerId", "Total") VALUES (7, 1, 99.95)`,
}

func TestServicesAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("siscont"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("secret"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, testcontainers.TerminateContainer(container))
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := &config.Config{
		SQLUser:   "postgres",
		SQLPort:   port.Port(),
		OutputDir: t.TempDir(),
	}
	params := models.ConnectionParams{Host: host, Database: "siscont", Password: "secret"}

	spec, err := database.NewConnSpec(params, cfg)
	require.NoError(t, err)
	conn, err := database.Connect(ctx, spec)
	require.NoError(t, err)
	for _, stmt := range seedStatements {
		_, err := conn.Exec(ctx, stmt)
		require.NoError(t, err)
	}
	_, err = conn.Exec(ctx, `UPDATE "Customers" SET "Avatar" = $1 WHERE "CustomerId" = 1`,
		[]byte{0xff, 0x48, 0x69, 0x21})
	require.NoError(t, err)
	require.NoError(t, conn.Close(ctx))

	store := storage.NewArtifactStore(cfg.OutputDir)

	t.Run("list tables", func(t *testing.T) {
		list, err := NewSchemaService(cfg).ListTables(ctx, params)
		require.NoError(t, err)
		require.Equal(t, []string{"Customers", "Orders"}, list.Tables)
		require.Equal(t, 2, list.TotalTables)
	})

	t.Run("describe table", func(t *testing.T) {
		columns, err := NewSchemaService(cfg).DescribeTable(ctx, params, "Customers")
		require.NoError(t, err)
		require.Len(t, columns, 5)

		require.Equal(t, "CustomerId", columns[0].ColumnName)
		require.Equal(t, "integer", columns[0].DataType)
		require.False(t, columns[0].IsNullable)

		require.Equal(t, "CustomerName", columns[1].ColumnName)
		require.Equal(t, "character varying", columns[1].DataType)
		require.NotNil(t, columns[1].MaxLength)
		require.Equal(t, 100, *columns[1].MaxLength)

		require.Equal(t, "Balance", columns[2].ColumnName)
		require.True(t, columns[2].IsNullable)
		require.Nil(t, columns[2].MaxLength)
	})

	t.Run("describe missing table is empty", func(t *testing.T) {
		columns, err := NewSchemaService(cfg).DescribeTable(ctx, params, "Nowhere")
		require.NoError(t, err)
		require.Empty(t, columns)
	})

	t.Run("relationships", func(t *testing.T) {
		svc := NewRelationService(cfg)

		all, err := svc.AllRelationships(ctx, params)
		require.NoError(t, err)
		require.Equal(t, []models.RelationshipEdge{{
			ParentTable:  "Orders",
			ParentColumn: "CustomerId",
			ChildTable:   "Customers",
			ChildColumn:  "CustomerId",
		}}, all)

		// filtering by either end of the edge returns the same subset
		forOrders, err := svc.TableRelationships(ctx, params, "Orders")
		require.NoError(t, err)
		require.Equal(t, all, forOrders)

		forCustomers, err := svc.TableRelationships(ctx, params, "Customers")
		require.NoError(t, err)
		require.Equal(t, all, forCustomers)

		none, err := svc.TableRelationships(ctx, params, "Nowhere")
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("column link check", func(t *testing.T) {
		svc := NewRelationService(cfg)

		link, err := svc.CheckColumn(ctx, params, "Orders", "CustomerId")
		require.NoError(t, err)
		require.True(t, link.IsForeignKey)
		require.Equal(t, "Customers", link.ReferenceTable)
		require.Equal(t, FieldTypeLink, link.SuggestedFieldtype)

		plain, err := svc.CheckColumn(ctx, params, "Orders", "OrderId")
		require.NoError(t, err)
		require.False(t, plain.IsForeignKey)
		require.Empty(t, plain.ReferenceTable)
	})

	t.Run("export table", func(t *testing.T) {
		svc := NewExportService(cfg, store)
		req := &ExportRequest{
			Params: params,
			Fields: []models.FieldSpec{
				{ColumnName: "OrderId", DataType: "int", Required: true},
				{ColumnName: "Total", DataType: "numeric", Required: false},
			},
		}

		export, writeErr, err := svc.Export(ctx, req, "Orders")
		require.NoError(t, err)
		require.Nil(t, writeErr)
		require.Equal(t, "Orders", export.TableName)
		require.Len(t, export.Rows, 1)
		require.Len(t, export.Rows[0], 1)
		require.EqualValues(t, 7, export.Rows[0]["OrderId"])

		raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, "Orders.json"))
		require.NoError(t, err)
		var artifact models.TableArtifact
		require.NoError(t, json.Unmarshal(raw, &artifact))
		require.Equal(t, "Orders", artifact.TableName)
		require.Len(t, artifact.Data, 1)
		require.EqualValues(t, 7, artifact.Data[0]["OrderId"])
	})

	t.Run("export coerces driver values", func(t *testing.T) {
		svc := NewExportService(cfg, store)
		req := &ExportRequest{
			Params: params,
			Fields: []models.FieldSpec{
				{ColumnName: "Balance", DataType: "numeric", Required: true},
				{ColumnName: "CreatedAt", DataType: "timestamp", Required: true},
				{ColumnName: "Avatar", DataType: "bytea", Required: true},
			},
		}

		export, writeErr, err := svc.Export(ctx, req, "Customers")
		require.NoError(t, err)
		require.Nil(t, writeErr)
		require.Len(t, export.Rows, 1)

		row := export.Rows[0]
		require.Equal(t, 12.5, row["Balance"])
		require.Equal(t, "2024-03-01 10:30:00", row["CreatedAt"])
		require.Equal(t, "Hi!", row["Avatar"])
	})

	t.Run("export missing table is not found", func(t *testing.T) {
		svc := NewExportService(cfg, store)
		req := &ExportRequest{
			Params: params,
			Fields: []models.FieldSpec{{ColumnName: "Nope", DataType: "int", Required: true}},
		}

		_, _, err := svc.Export(ctx, req, "Vanished")
		require.ErrorIs(t, err, ErrTableNotFound)
	})

	t.Run("export survives unwritable artifact dir", func(t *testing.T) {
		blocked := filepath.Join(t.TempDir(), "blocked")
		require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

		svc := NewExportService(cfg, storage.NewArtifactStore(blocked))
		req := &ExportRequest{
			Params: params,
			Fields: []models.FieldSpec{{ColumnName: "OrderId", DataType: "int", Required: true}},
		}

		export, writeErr, err := svc.Export(ctx, req, "Orders")
		require.NoError(t, err)
		require.NotNil(t, writeErr)
		require.Equal(t, "Orders", writeErr.Table)
		require.NotNil(t, export)
		require.Len(t, export.Rows, 1)
	})

	t.Run("generate doctype", func(t *testing.T) {
		svc := NewDoctypeService(cfg, store)
		req := &DoctypeRequest{
			Params: params,
			Fields: []models.FieldSpec{
				{ColumnName: "CustomerId", DataType: "int", Required: true},
				{ColumnName: "CustomerName", DataType: "varchar(100)", Required: true},
			},
			Module: "Ventas",
		}

		doc, writeErr, err := svc.Generate(ctx, req, "Customers")
		require.NoError(t, err)
		require.Nil(t, writeErr)
		require.Equal(t, []string{"customer_id", "customer_name"}, doc.FieldOrder)
		require.Equal(t, models.FieldDescriptor{
			FieldName: "customer_id",
			Label:     "CustomerId",
			FieldType: FieldTypeInt,
			Required:  true,
		}, doc.Fields[0])
		require.Equal(t, models.FieldDescriptor{
			FieldName: "customer_name",
			Label:     "CustomerName",
			FieldType: FieldTypeData,
			Required:  true,
		}, doc.Fields[1])

		raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, "doctype_Customers.json"))
		require.NoError(t, err)
		var persisted models.TableDocument
		require.NoError(t, json.Unmarshal(raw, &persisted))
		require.Equal(t, *doc, persisted)
	})

	t.Run("doctype survives unwritable artifact dir", func(t *testing.T) {
		blocked := filepath.Join(t.TempDir(), "blocked")
		require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

		svc := NewDoctypeService(cfg, storage.NewArtifactStore(blocked))
		req := &DoctypeRequest{
			Params: params,
			Fields: []models.FieldSpec{{ColumnName: "CustomerId", DataType: "int", Required: true}},
		}

		doc, writeErr, err := svc.Generate(ctx, req, "Customers")
		require.NoError(t, err)
		require.NotNil(t, writeErr)
		require.Equal(t, "Customers", writeErr.Table)
		require.NotNil(t, doc)
	})

	t.Run("bad credentials fail with connection error", func(t *testing.T) {
		bad := params
		bad.Password = "wrong"

		_, err := NewSchemaService(cfg).ListTables(ctx, bad)
		require.ErrorIs(t, err, database.ErrConnectionFailed)
	})
}
