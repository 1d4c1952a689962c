package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/blogem/petition-desk/apperrors"
	"github.com/blogem/petition-desk/models"
	"github.com/blogem/petition-desk/repositories/mocks"
)

func exportFixture() []*models.Entry {
	return []*models.Entry{
		{
			ID:        "id-2",
			AFN:       "AFN2",
			Year:      "3rd",
			Branch:    "ECE",
			Comment:   "first line\nsecond, with comma",
			FormType:  "demand",
			CreatedAt: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:       "id-1",
			AFN:      "AFN1",
			FormType: "petition",
		},
	}
}

func expectEntries(repo *mocks.MockEntryRepository, entries []*models.Entry) {
	repo.EXPECT().ForEachNewestFirst(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(*models.Entry) error) error {
			for _, e := range entries {
				if err := fn(e); err != nil {
					return err
				}
			}
			return nil
		})
}

func TestExportCSV(t *testing.T) {
	repo := mocks.NewMockEntryRepository(t)
	expectEntries(repo, exportFixture())

	data, err := NewExportService(repo, true).ExportCSV(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "id,afn,year,branch,form_type,comment,created_at_utc_iso\r\n"))

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"id-2", "AFN2", "3rd", "ECE", "demand", `first line \n second, with comma`, "2025-06-02T08:00:00Z"}, rows[1])
	assert.Equal(t, []string{"id-1", "AFN1", "", "", "petition", "", ""}, rows[2])
	assert.Equal(t, 3, strings.Count(string(data), "\n"), "each entry must stay on one line")
}

func TestExportCSV_ReadFailureProducesNoDocument(t *testing.T) {
	repo := mocks.NewMockEntryRepository(t)
	repo.EXPECT().ForEachNewestFirst(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(*models.Entry) error) error {
			_ = fn(exportFixture()[0])
			return errors.New("connection lost mid-cursor")
		})

	data, err := NewExportService(repo, true).ExportCSV(context.Background())

	assert.Nil(t, data)
	assert.Equal(t, apperrors.ExportFailedMsg, apperrors.From(err).Message)
}

func TestExportXLSX(t *testing.T) {
	repo := mocks.NewMockEntryRepository(t)
	expectEntries(repo, exportFixture())

	data, err := NewExportService(repo, true).ExportXLSX(context.Background())
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{ExportSheetName}, workbook.GetSheetList())

	rows, err := workbook.GetRows(ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.ExportHeader, rows[0])
	assert.Equal(t, `first line \n second, with comma`, rows[1][5])
	assert.Equal(t, "petition", rows[2][4])
}

func TestExport_Unavailable(t *testing.T) {
	repo := mocks.NewMockEntryRepository(t)
	service := NewExportService(repo, false)

	_, err := service.ExportCSV(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.KindServiceUnavailable))

	_, err = service.ExportXLSX(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.KindServiceUnavailable))
}
