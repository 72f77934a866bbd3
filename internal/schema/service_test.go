package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/schema"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/testutil"
)

func TestService_CreateTable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := schema.NewService(db)
	ctx := context.Background()
	preUser := testutil.CreateTestPreUser(t, db, nil)

	t.Run("creates table for existing pre-user", func(t *testing.T) {
		table, err := svc.CreateTable(ctx, schema.CreateTableInput{
			PreUserID:   preUser.ID,
			Name:        "Health Survey",
			Description: "Quarterly checkup data",
		})
		require.NoError(t, err)
		assert.NotZero(t, table.ID)
		assert.Equal(t, preUser.ID, table.PreUserID)
	})

	t.Run("rejects unknown pre-user", func(t *testing.T) {
		_, err := svc.CreateTable(ctx, schema.CreateTableInput{
			PreUserID: 9999,
			Name:      "Orphan",
		})
		assert.ErrorIs(t, err, schema.ErrPreUserNotFound)
	})
}

func TestService_AddColumn(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := schema.NewService(db)
	ctx := context.Background()
	preUser := testutil.CreateTestPreUser(t, db, nil)
	table := testutil.CreateTestTable(t, db, preUser.ID, "Survey")

	t.Run("datatype defaults to string", func(t *testing.T) {
		column, err := svc.AddColumn(ctx, schema.AddColumnInput{
			TableID: table.ID,
			Name:    "Notes",
		})
		require.NoError(t, err)
		assert.Equal(t, models.DatatypeString, column.Datatype)
	})

	t.Run("accepts a declared datatype", func(t *testing.T) {
		column, err := svc.AddColumn(ctx, schema.AddColumnInput{
			TableID:  table.ID,
			Name:     "Age",
			Datatype: models.DatatypeNumber,
		})
		require.NoError(t, err)
		assert.Equal(t, models.DatatypeNumber, column.Datatype)
	})

	t.Run("rejects invalid datatype", func(t *testing.T) {
		_, err := svc.AddColumn(ctx, schema.AddColumnInput{
			TableID:  table.ID,
			Name:     "Blob",
			Datatype: models.Datatype("binary"),
		})
		assert.ErrorIs(t, err, schema.ErrInvalidDatatype)
	})

	t.Run("rejects duplicate name within the same table", func(t *testing.T) {
		_, err := svc.AddColumn(ctx, schema.AddColumnInput{
			TableID: table.ID,
			Name:    "Age",
		})
		assert.ErrorIs(t, err, schema.ErrDuplicateColumn)
	})

	t.Run("same name on another table is fine", func(t *testing.T) {
		other := testutil.CreateTestTable(t, db, preUser.ID, "Second Survey")
		_, err := svc.AddColumn(ctx, schema.AddColumnInput{
			TableID: other.ID,
			Name:    "Age",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects unknown table", func(t *testing.T) {
		_, err := svc.AddColumn(ctx, schema.AddColumnInput{
			TableID: 9999,
			Name:    "Lost",
		})
		assert.ErrorIs(t, err, schema.ErrTableNotFound)
	})
}

func TestService_ListColumnsByTable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := schema.NewService(db)
	ctx := context.Background()
	preUser := testutil.CreateTestPreUser(t, db, nil)
	table := testutil.CreateTestTable(t, db, preUser.ID, "Survey")

	testutil.CreateTestColumn(t, db, table.ID, "Age", models.DatatypeNumber)
	testutil.CreateTestColumn(t, db, table.ID, "City", models.DatatypeString)
	testutil.CreateTestColumn(t, db, table.ID, "Joined", models.DatatypeDate)

	t.Run("returns columns in creation order", func(t *testing.T) {
		columns, err := svc.ListColumnsByTable(ctx, table.ID)
		require.NoError(t, err)
		require.Len(t, columns, 3)
		assert.Equal(t, "Age", columns[0].Name)
		assert.Equal(t, "City", columns[1].Name)
		assert.Equal(t, "Joined", columns[2].Name)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := svc.ListColumnsByTable(ctx, 9999)
		assert.ErrorIs(t, err, schema.ErrTableNotFound)
	})
}

func TestService_ListTablesByPreUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := schema.NewService(db)
	ctx := context.Background()

	owner := testutil.CreateTestPreUser(t, db, nil)
	bystander := testutil.CreateTestPreUser(t, db, nil)
	table := testutil.CreateTestTable(t, db, owner.ID, "Mine")
	testutil.CreateTestTable(t, db, bystander.ID, "Theirs")
	testutil.CreateTestColumn(t, db, table.ID, "Score", models.DatatypeNumber)

	tables, err := svc.ListTablesByPreUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "Mine", tables[0].Name)
	require.Len(t, tables[0].Columns, 1)
	assert.Equal(t, "Score", tables[0].Columns[0].Name)
}
