package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/blogem/petition-desk/apperrors"
	"github.com/blogem/petition-desk/models"
	"github.com/blogem/petition-desk/repositories"
)

const (
	ExportCSVFilename  = "petition_records.csv"
	ExportXLSXFilename = "petition_records.xlsx"
	ExportSheetName    = "Records"
)

// ExportService renders all entries for the admin downloads. Documents are
// built completely in memory so a storage failure never produces a
// truncated file.
type ExportService interface {
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type exportService struct {
	entryRepo repositories.EntryRepository
	available bool
}

// NewExportService creates a new export service
func NewExportService(entryRepo repositories.EntryRepository, available bool) ExportService {
	return &exportService{
		entryRepo: entryRepo,
		available: available,
	}
}

// ExportCSV renders every entry, newest first, as CSV with a header row
func (s *exportService) ExportCSV(ctx context.Context) ([]byte, error) {
	if !s.available {
		return nil, apperrors.ServiceUnavailable()
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.UseCRLF = true

	if err := writer.Write(models.ExportHeader); err != nil {
		return nil, apperrors.Internal(apperrors.ExportFailedMsg, err)
	}

	err := s.entryRepo.ForEachNewestFirst(ctx, func(entry *models.Entry) error {
		return writer.Write(entry.ExportRow())
	})
	if err != nil {
		return nil, apperrors.Internal(apperrors.ExportFailedMsg, err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, apperrors.Internal(apperrors.ExportFailedMsg, err)
	}

	return buf.Bytes(), nil
}

// ExportXLSX renders the same rows as ExportCSV into a single sheet workbook
func (s *exportService) ExportXLSX(ctx context.Context) ([]byte, error) {
	if !s.available {
		return nil, apperrors.ServiceUnavailable()
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := prepareRecordsSheet(workbook); err != nil {
		return nil, apperrors.Internal(apperrors.ExportFailedMsg, err)
	}

	rowIndex := 2
	err := s.entryRepo.ForEachNewestFirst(ctx, func(entry *models.Entry) error {
		if err := setRow(workbook, rowIndex, entry.ExportRow()); err != nil {
			return err
		}
		rowIndex++
		return nil
	})
	if err != nil {
		return nil, apperrors.Internal(apperrors.ExportFailedMsg, err)
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, apperrors.Internal(apperrors.ExportFailedMsg, err)
	}
	return buf.Bytes(), nil
}

func prepareRecordsSheet(workbook *excelize.File) error {
	index, err := workbook.NewSheet(ExportSheetName)
	if err != nil {
		return err
	}
	workbook.SetActiveSheet(index)
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := setRow(workbook, 1, models.ExportHeader); err != nil {
		return err
	}

	lastColumn, err := excelize.ColumnNumberToName(len(models.ExportHeader))
	if err != nil {
		return err
	}
	headerRange := fmt.Sprintf("A1:%s1", lastColumn)

	if err := workbook.SetCellStyle(ExportSheetName, "A1", lastColumn+"1", getHeaderStyle(workbook)); err != nil {
		return err
	}
	if err := workbook.SetColWidth(ExportSheetName, "A", lastColumn, 20); err != nil {
		return err
	}
	return workbook.AutoFilter(ExportSheetName, headerRange, []excelize.AutoFilterOptions{})
}

func setRow(workbook *excelize.File, rowIndex int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIndex)
	if err != nil {
		return err
	}
	return workbook.SetSheetRow(ExportSheetName, cell, &values)
}

func getHeaderStyle(file *excelize.File) (style int) {
	headerStyle, _ := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Family: "Arial",
			Size:   10,
			Color:  "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4E79A0"},
			Pattern: 1,
		},
	})
	return headerStyle
}
