// Package remote lee las tomas de otra instancia de medtrack por HTTP.
package remote

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"medtrack/internal/domain/adherence"
	"medtrack/internal/platform/httpclient"
)

// pageLimit coincide con el máximo que acepta GET /records.
const pageLimit = 500

type recordDTO struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Dose   string `json:"dose"`
	Status string `json:"status"`
}

// Source implementa analytics.RecordSource contra GET {base}/records.
type Source struct {
	client *httpclient.Client

	// From/To acotan el rango (YYYY-MM-DD); vacío => todo.
	From string
	To   string
}

func New(baseURL string, timeout time.Duration) (*Source, error) {
	c, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if c.BaseURL == "" {
		return nil, fmt.Errorf("remote source: base url required")
	}
	c.Retries = 2
	return &Source{client: c}, nil
}

// Snapshot recorre GET /records por páginas de pageLimit hasta recibir una página corta.
func (s *Source) Snapshot(ctx context.Context) ([]adherence.DoseRecord, error) {
	out := make([]adherence.DoseRecord, 0, pageLimit)
	for offset := 0; ; offset += pageLimit {
		page, err := s.fetchPage(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("remote source: offset %d: %w", offset, err)
		}
		for _, it := range page {
			out = append(out, adherence.DoseRecord{
				Name:   it.Name,
				Date:   it.Date,
				Time:   it.Time,
				Dose:   it.Dose,
				Status: it.Status,
			})
		}
		if len(page) < pageLimit {
			return out, nil
		}
	}
}

func (s *Source) fetchPage(ctx context.Context, offset int) ([]recordDTO, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(pageLimit))
	q.Set("offset", strconv.Itoa(offset))
	if s.From != "" {
		q.Set("from", s.From)
	}
	if s.To != "" {
		q.Set("to", s.To)
	}

	var items []recordDTO
	if err := s.client.GetJSON(ctx, "/records", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}
