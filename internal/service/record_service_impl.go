package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/report"
	"github.com/alexanderramin/shiftlog/internal/repository"
	"github.com/go-playground/validator/v10"
)

type recordService struct {
	store    repository.RecordStore
	clock    domain.Clock
	validate *validator.Validate
	observer UseCaseObserver
}

func NewRecordService(store repository.RecordStore, clock domain.Clock, observers ...UseCaseObserver) RecordService {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &recordService{
		store:    store,
		clock:    clock,
		validate: newValidator(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recordService) Register(ctx context.Context, in RegisterInput) (rec *domain.WorkRecord, err error) {
	defer observe(ctx, s.observer, "register", time.Now(), map[string]any{"barcode": in.Barcode}, &err)

	in.Barcode = strings.TrimSpace(in.Barcode)
	in.Shift = strings.ToUpper(strings.TrimSpace(in.Shift))
	if verr := s.validate.Struct(in); verr != nil {
		return nil, toValidationError(verr)
	}

	rec = &domain.WorkRecord{
		Barcode:   in.Barcode,
		Date:      in.Date,
		Time:      in.Time,
		Shift:     domain.Shift(in.Shift),
		CountT1:   in.CountT1,
		CountT2:   in.CountT2,
		CreatedAt: s.clock.Now(),
	}
	if _, err = s.store.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) Scan(ctx context.Context, session domain.Session, barcode string) (rec *domain.WorkRecord, err error) {
	barcode = strings.TrimSpace(barcode)
	defer observe(ctx, s.observer, "scan", time.Now(), map[string]any{"barcode": barcode, "shift": string(session.Shift)}, &err)

	verr := &domain.ValidationError{}
	if barcode == "" {
		verr.Missing = append(verr.Missing, "barcode")
	}
	if !session.Shift.Valid() {
		verr.Missing = append(verr.Missing, "shift")
	}
	if len(verr.Missing) > 0 {
		return nil, verr
	}

	rec = domain.NewScanRecord(barcode, session.Shift, s.clock.Now())
	if _, err = s.store.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) List(ctx context.Context, f ListFilter) (records []*domain.WorkRecord, err error) {
	defer observe(ctx, s.observer, "list", time.Now(), map[string]any{"month": f.Month, "date": f.Date}, &err)

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var preds []report.Predicate
	if f.Month != "" {
		if _, perr := time.Parse("2006-01", f.Month); perr != nil {
			return nil, fmt.Errorf("invalid month %q (want YYYY-MM)", f.Month)
		}
		preds = append(preds, report.Prefix(f.Month))
	}
	if f.Date != "" {
		if _, perr := domain.ParseDate(f.Date); perr != nil {
			return nil, perr
		}
		preds = append(preds, report.Daily(f.Date))
	}

	records = report.Filter(all, report.And(preds...))
	sortByDateDesc(records)
	return records, nil
}

func (s *recordService) Recent(ctx context.Context, n int) ([]*domain.WorkRecord, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return lastN(all, n), nil
}

func (s *recordService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "delete", time.Now(), map[string]any{"id": id}, &err)
	return s.store.Delete(ctx, id)
}
