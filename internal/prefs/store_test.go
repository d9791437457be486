package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/sales-ledger/constants"
)

func TestColumnWidthsRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Open(ctx, path, nil)
	require.NoError(t, err)
	defer s.Close()

	widths, err := s.ColumnWidths(ctx)
	require.NoError(t, err)
	assert.Empty(t, widths)

	require.NoError(t, s.SetColumnWidth(ctx, constants.FieldUPC, "180px"))
	require.NoError(t, s.SetColumnWidth(ctx, constants.FieldUPC, "200px")) // overwrite
	require.NoError(t, s.SetColumnWidth(ctx, constants.FieldDate, "90px"))

	widths, err = s.ColumnWidths(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[constants.FieldKey]string{
		constants.FieldUPC:  "200px",
		constants.FieldDate: "90px",
	}, widths)
}

func TestColumnWidthsSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Open(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, s.SetColumnWidth(ctx, constants.FieldBill, "140px"))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path, nil)
	require.NoError(t, err)
	defer s.Close()

	widths, err := s.ColumnWidths(ctx)
	require.NoError(t, err)
	assert.Equal(t, "140px", widths[constants.FieldBill])
}
