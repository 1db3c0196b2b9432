// Package dashboard fetches staff and records together and turns them into the
// dashboard view.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"campus-check-dashboard/src/models"
	"campus-check-dashboard/src/services/aggregation"
	"campus-check-dashboard/src/services/apiclient"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FetchErrorMessage ข้อความเดียวที่แสดงเมื่อดึงข้อมูลไม่สำเร็จ
const FetchErrorMessage = "Error fetching data."

// Getter is the part of the API client the dashboard reads through.
type Getter interface {
	Get(ctx context.Context, path string, out any) error
}

type Service struct {
	api  Getter
	opts aggregation.Options

	mu      sync.RWMutex
	view    models.DashboardView
	errText string
}

func NewService(api Getter, opts aggregation.Options) *Service {
	if opts.GateCount <= 0 {
		opts.GateCount = aggregation.DefaultGateCount
	}
	return &Service{
		api:  api,
		opts: opts,
		view: aggregation.Empty(opts.GateCount),
	}
}

// Load fetches staff and records concurrently and rebuilds the whole view. If either
// fetch fails the previous view is kept and the error is returned.
func (s *Service) Load(ctx context.Context) (models.DashboardView, error) {
	cycleID := uuid.NewString()

	var staffRes models.StaffResponse
	var recordRes models.RecordResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.api.Get(gctx, "/staff/", &staffRes); err != nil {
			return fmt.Errorf("fetch staff: %w", err)
		}
		if staffRes.Staff == nil {
			return fmt.Errorf("fetch staff: %w", missingKey("/staff/", "staff"))
		}
		return nil
	})
	g.Go(func() error {
		if err := s.api.Get(gctx, "/record/", &recordRes); err != nil {
			return fmt.Errorf("fetch records: %w", err)
		}
		if recordRes.Records == nil {
			return fmt.Errorf("fetch records: %w", missingKey("/record/", "records"))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("❌ Error fetching data (cycle %s): %v", cycleID, err)
		s.mu.Lock()
		s.errText = FetchErrorMessage
		view := s.view
		s.mu.Unlock()
		return view, err
	}

	view := aggregation.Build(staffRes.Staff, recordRes.Records, s.opts)
	view.CycleID = cycleID

	s.mu.Lock()
	s.view = view
	s.errText = ""
	s.mu.Unlock()

	log.Printf("✅ Dashboard loaded (cycle %s): %d staff, %d records", cycleID, len(staffRes.Staff), len(recordRes.Records))
	return view, nil
}

// missingKey a 2xx body without the list (absent or null) is as bad as malformed JSON;
// an empty list must be sent as [].
func missingKey(path, key string) error {
	return &apiclient.DecodeError{Method: "GET", Path: path, Err: errors.New(`missing "` + key + `" list`)}
}

// Current returns the last successful view and the current error message, if any.
func (s *Service) Current() (models.DashboardView, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view, s.errText
}
