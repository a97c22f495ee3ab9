package service

import (
	"io"

	"nutriledger/internal/domain/entity"
)

// SummaryExporter renders a period summary as a downloadable document.
type SummaryExporter interface {
	ContentType() string
	FileExtension() string
	Export(w io.Writer, summary *entity.PeriodSummary) error
}
