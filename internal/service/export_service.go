package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
	"github.com/Sai69186/ai-time-table-generator/pkg/export"
	appErrors "github.com/Sai69186/ai-time-table-generator/pkg/errors"
)

// Export formats supported for timetable downloads.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var timetableExportHeaders = []string{"Day", "Start", "End", "Subject Code", "Subject", "Teacher", "Room", "Building"}

type timetableFetcher interface {
	Get(ctx context.Context, sectionID int) (*models.Timetable, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult carries a rendered timetable document.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders stored timetables into downloadable documents.
type ExportService struct {
	timetables timetableFetcher
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(timetables timetableFetcher, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{timetables: timetables, csv: csv, pdf: pdf, logger: logger}
}

// Export renders the section's stored timetable in the requested format.
func (s *ExportService) Export(ctx context.Context, sectionID int, format string) (*ExportResult, error) {
	timetable, err := s.timetables.Get(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	dataset := buildTimetableDataset(timetable)

	switch format {
	case ExportFormatCSV, "":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("timetable-section-%d.csv", sectionID),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, timetable.Name)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("timetable-section-%d.pdf", sectionID),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// buildTimetableDataset flattens per-day assignments into table rows
// following working day order. Column order must match
// timetableExportHeaders.
func buildTimetableDataset(timetable *models.Timetable) export.Dataset {
	rows := make([][]string, 0)
	for _, day := range timetable.WorkingDays {
		for _, slot := range timetable.Slots[day] {
			rows = append(rows, []string{
				slot.Day,
				slot.StartTime,
				slot.EndTime,
				slot.SubjectCode,
				slot.SubjectName,
				slot.TeacherName,
				slot.RoomNumber,
				slot.Building,
			})
		}
	}
	return export.Dataset{Headers: timetableExportHeaders, Rows: rows}
}
