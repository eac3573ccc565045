package service

import (
	"context"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/report"
)

// RegisterInput is a manual registration as typed into the form.
type RegisterInput struct {
	Barcode string `json:"barcode" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"required,datetime=15:04"`
	Shift   string `json:"shift" validate:"required,oneof=T1 T2"`
	CountT1 int    `json:"t1" validate:"gte=0"`
	CountT2 int    `json:"t2" validate:"gte=0"`
}

// ListFilter narrows List. Empty fields do not filter.
type ListFilter struct {
	Month string // YYYY-MM
	Date  string // YYYY-MM-DD
}

type RecordService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.WorkRecord, error)
	Scan(ctx context.Context, session domain.Session, barcode string) (*domain.WorkRecord, error)
	List(ctx context.Context, f ListFilter) ([]*domain.WorkRecord, error)
	Recent(ctx context.Context, n int) ([]*domain.WorkRecord, error)
	Delete(ctx context.Context, id int64) error
}

// ReportView is a generated report ready for rendering.
type ReportView struct {
	Kind     report.Kind
	Period   string
	Title    string
	Subtitle string
	Result   report.Result
}

type ReportService interface {
	Generate(ctx context.Context, kind report.Kind, period string) (*ReportView, error)
	Daily(ctx context.Context, date string) (*ReportView, error)
	Weekly(ctx context.Context, year, week int) (*ReportView, error)
	Monthly(ctx context.Context, year, month int) (*ReportView, error)
	Annual(ctx context.Context, year int) (*ReportView, error)
}
