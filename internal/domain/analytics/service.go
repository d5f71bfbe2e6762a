package analytics

import (
	"context"
	"errors"

	"medtrack/internal/domain/adherence"
)

// ErrInvalidQuery agrupa los errores de contrato del agregador (mes/año fuera de rango).
var ErrInvalidQuery = errors.New("invalid query")

// RecordSource entrega la colección completa de tomas. El agregador no filtra:
// la fuente decide qué registros corresponden al paciente.
type RecordSource interface {
	Snapshot(ctx context.Context) ([]adherence.DoseRecord, error)
}

type Service struct {
	records RecordSource
	agg     *adherence.Aggregator
}

func NewService(records RecordSource, agg *adherence.Aggregator) *Service {
	if agg == nil {
		agg = adherence.NewAggregator(nil)
	}
	return &Service{records: records, agg: agg}
}

// Dashboard es lo que consume la vista de analytics en una sola llamada.
type Dashboard struct {
	Summary      adherence.Summary       `json:"summary"`
	Calendar     adherence.MonthCalendar `json:"calendar"`
	Distribution []adherence.TimePoint   `json:"distribution"`
}

func (s *Service) Summary(ctx context.Context) (adherence.Summary, error) {
	recs, err := s.records.Snapshot(ctx)
	if err != nil {
		return adherence.Summary{}, err
	}
	return s.agg.Summarize(recs), nil
}

// Calendar proyecta el mes pedido; nil usa el mes actual en la zona del agregador.
func (s *Service) Calendar(ctx context.Context, year, monthIndex *int) (adherence.MonthCalendar, error) {
	recs, err := s.records.Snapshot(ctx)
	if err != nil {
		return adherence.MonthCalendar{}, err
	}
	return s.calendar(recs, year, monthIndex)
}

func (s *Service) Distribution(ctx context.Context) ([]adherence.TimePoint, error) {
	recs, err := s.records.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.agg.TimeDistribution(recs), nil
}

// Dashboard calcula las tres vistas sobre el mismo snapshot.
func (s *Service) Dashboard(ctx context.Context, year, monthIndex *int) (Dashboard, error) {
	recs, err := s.records.Snapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	cal, err := s.calendar(recs, year, monthIndex)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Summary:      s.agg.Summarize(recs),
		Calendar:     cal,
		Distribution: s.agg.TimeDistribution(recs),
	}, nil
}

func (s *Service) calendar(recs []adherence.DoseRecord, year, monthIndex *int) (adherence.MonthCalendar, error) {
	cal, err := s.agg.ProjectCalendar(recs, year, monthIndex)
	if err != nil {
		if errors.Is(err, adherence.ErrInvalidMonthIndex) || errors.Is(err, adherence.ErrInvalidYear) {
			return adherence.MonthCalendar{}, errors.Join(ErrInvalidQuery, err)
		}
		return adherence.MonthCalendar{}, err
	}
	return cal, nil
}
