package data_test

import (
	"context"
	"errors"
	"testing"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/data/config"
	"github.com/milindvishnoi/FSND/data/datatest"
	_ "github.com/milindvishnoi/FSND/data/redis"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var notesTable = schema.NewTable("notes").
	AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true}).
	AddColumn(&schema.Column{Name: "body", Type: field.TypeString})

func insertNote(t *testing.T, ctx context.Context, d *data.Data, body string) int {
	t.Helper()
	id, err := d.InsertID(ctx, d.Builder().Insert("notes").Set("body", body))
	require.NoError(t, err)
	return id
}

func countNotes(t *testing.T, d *data.Data) int {
	t.Helper()
	n, err := d.Count(context.Background(), d.Builder().Select().Count().From(entsql.Table("notes")))
	require.NoError(t, err)
	return n
}

func TestData_InsertQueryCount(t *testing.T) {
	ctx := context.Background()
	d := datatest.New(t, notesTable)

	first := insertNote(t, ctx, d, "hello")
	second := insertNote(t, ctx, d, "world")
	assert.Equal(t, first+1, second)
	assert.Equal(t, 2, countNotes(t, d))

	rows, err := d.Query(ctx, d.Builder().Select("body").From(entsql.Table("notes")).
		Where(entsql.ContainsFold("body", "WOR")))
	require.NoError(t, err)
	defer rows.Close()

	var bodies []string
	for rows.Next() {
		var b string
		require.NoError(t, rows.Scan(&b))
		bodies = append(bodies, b)
	}
	assert.Equal(t, []string{"world"}, bodies)
}

func TestData_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	d := datatest.New(t, notesTable)
	id := insertNote(t, ctx, d, "draft")

	res, err := d.Exec(ctx, d.Builder().Update("notes").Set("body", "final").Where(entsql.EQ("id", id)))
	require.NoError(t, err)
	n, _ := res.RowsAffected()
	assert.EqualValues(t, 1, n)

	res, err = d.Exec(ctx, d.Builder().Delete("notes").Where(entsql.EQ("id", id)))
	require.NoError(t, err)
	n, _ = res.RowsAffected()
	assert.EqualValues(t, 1, n)
	assert.Equal(t, 0, countNotes(t, d))
}

func TestData_WithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	d := datatest.New(t, notesTable)
	boom := errors.New("boom")

	err := d.WithTx(ctx, func(ctx context.Context) error {
		insertNote(t, ctx, d, "lost")
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countNotes(t, d))

	require.NoError(t, d.WithTx(ctx, func(ctx context.Context) error {
		insertNote(t, ctx, d, "kept")
		return nil
	}))
	assert.Equal(t, 1, countNotes(t, d))
}

func TestData_Closed(t *testing.T) {
	d, cleanup, err := data.New(context.Background(), datatest.Config(t))
	require.NoError(t, err)
	cleanup()

	assert.ErrorIs(t, d.Ping(context.Background()), data.ErrClosed)
	_, err = d.Exec(context.Background(), d.Builder().Delete("notes"))
	assert.ErrorIs(t, err, data.ErrClosed)
	assert.Empty(t, d.Close())
}

func TestData_UnknownDriver(t *testing.T) {
	cfg := datatest.Config(t)
	cfg.Database.Master.Driver = "oracle"
	_, _, err := data.New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestData_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := datatest.Config(t)
	cfg.Redis = &config.Redis{Addr: mr.Addr()}

	d, cleanup, err := data.New(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, d.Redis())
	assert.NoError(t, d.Ping(context.Background()))
}
