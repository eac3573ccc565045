package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/report"
	"github.com/alexanderramin/shiftlog/internal/repository"
	"golang.org/x/text/language"
)

type reportService struct {
	store    repository.RecordStore
	clock    domain.Clock
	lang     language.Tag
	observer UseCaseObserver
}

func NewReportService(store repository.RecordStore, clock domain.Clock, lang language.Tag, observers ...UseCaseObserver) ReportService {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &reportService{
		store:    store,
		clock:    clock,
		lang:     lang,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate resolves period for kind (empty means the current one), reads
// every record and aggregates the ones inside the period.
func (s *reportService) Generate(ctx context.Context, kind report.Kind, period string) (view *ReportView, err error) {
	fields := map[string]any{"kind": string(kind), "period": period}
	defer observe(ctx, s.observer, "report", time.Now(), fields, &err)

	p, err := report.ParsePeriod(kind, period, s.clock.Now(), s.lang)
	if err != nil {
		return nil, err
	}
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	res := report.Aggregate(records, p.Predicate)
	fields["empty"] = res.Empty()
	if !res.Empty() {
		fields["groups"] = len(res.Report.Groups)
	}
	return &ReportView{
		Kind:     kind,
		Period:   p.Key,
		Title:    kind.Title(s.lang),
		Subtitle: report.Capitalize(p.Subtitle, s.lang),
		Result:   res,
	}, nil
}

func (s *reportService) Daily(ctx context.Context, date string) (*ReportView, error) {
	return s.Generate(ctx, report.KindDaily, date)
}

func (s *reportService) Weekly(ctx context.Context, year, week int) (*ReportView, error) {
	return s.Generate(ctx, report.KindWeekly, report.FormatWeek(year, week))
}

func (s *reportService) Monthly(ctx context.Context, year, month int) (*ReportView, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", report.ErrInvalidPeriod, month)
	}
	return s.Generate(ctx, report.KindMonthly, fmt.Sprintf("%04d-%02d", year, month))
}

func (s *reportService) Annual(ctx context.Context, year int) (*ReportView, error) {
	return s.Generate(ctx, report.KindAnnual, strconv.Itoa(year))
}
