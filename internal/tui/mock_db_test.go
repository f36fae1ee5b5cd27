package tui

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/akyairhashvil/salestrack/internal/database"
	"github.com/akyairhashvil/salestrack/internal/database/mocks"
	"github.com/akyairhashvil/salestrack/internal/export"
	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/testutil"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// expectRefresh stubs every read issued by refresh with an empty store.
func expectRefresh(repo *mocks.MockRepository, leads []models.Lead) {
	rec := repo.EXPECT()
	rec.FindLeads(gomock.Any(), gomock.Any()).Return(leads, nil).AnyTimes()
	rec.GetSales(gomock.Any()).Return([]models.Sale{}, nil).AnyTimes()
	rec.GetRevenueStats(gomock.Any()).Return(models.RevenueStats{}, nil).AnyTimes()
	rec.GetLeadStatistics(gomock.Any()).Return(models.LeadStats{}, nil).AnyTimes()
	rec.GetPipelineCounts(gomock.Any()).Return(models.PipelineCounts{}, nil).AnyTimes()
	rec.CountLeadsSince(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	rec.GetMonthlyRevenue(gomock.Any(), gomock.Any()).Return([]models.MonthlyRevenue{}, nil).AnyTimes()
}

func TestRefreshErrorIsShownAndLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().FindLeads(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk on fire"))

	core, logs := observer.New(zap.ErrorLevel)
	m := New(context.Background(), repo, WithLogger(zap.New(core)))

	if !m.msgIsErr || !strings.Contains(m.Message, "disk on fire") {
		t.Fatalf("expected error status, got %q", m.Message)
	}
	if logs.FilterMessage("Error loading leads").Len() != 1 {
		t.Fatalf("expected one logged error, got %v", logs.All())
	}
}

func TestMarkWonErrorKeepsModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	expectRefresh(repo, []models.Lead{
		testutil.NewLead().WithID(7).WithName("Acme").WithStatus(models.LeadHot).Build(),
	})
	repo.EXPECT().MarkLeadWon(gomock.Any(), int64(7)).Return(database.WonResult{}, errors.New("locked"))

	m := send(t, New(context.Background(), repo), keyRunes("2"), keyRunes("w"))
	if !m.msgIsErr || !strings.Contains(m.Message, "locked") {
		t.Fatalf("expected error status, got %q", m.Message)
	}
	if m.tab != TabLeads {
		t.Fatalf("expected to stay on leads tab")
	}
}

func TestSeedFailureKeepsData(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	expectRefresh(repo, []models.Lead{})
	repo.EXPECT().SeedDummyData(gomock.Any()).Return(database.SeedResult{}, errors.New("constraint failed"))

	m := send(t, New(context.Background(), repo), keyRunes("S"))
	if !m.msgIsErr || !strings.Contains(m.Message, "existing data kept") {
		t.Fatalf("expected seed failure message, got %q", m.Message)
	}
}

func TestEmptySelectionIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	expectRefresh(repo, []models.Lead{})

	// No MarkLeadWon, UpdateLeadStatus or DeleteLead expectation: any call fails the test.
	send(t, New(context.Background(), repo), keyRunes("2"), keyRunes("w"), keyRunes("l"), keyRunes("d"))
}

type stubExporter struct {
	data  export.Data
	paths []string
	err   error
}

func (s *stubExporter) All(_ context.Context, data export.Data) ([]string, error) {
	s.data = data
	return s.paths, s.err
}

func TestExportKey(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		m := send(t, New(context.Background(), setupModelDB(t)), keyRunes("x"))
		if !m.msgIsErr {
			t.Fatalf("expected error without exporter")
		}
	})

	t.Run("exports unfiltered leads", func(t *testing.T) {
		db := setupModelDB(t)
		addLead(t, db, "Hot One", models.LeadHot, 10)
		addLead(t, db, "Cold One", models.LeadCold, 10)
		stub := &stubExporter{paths: []string{"a.xlsx", "b.xlsx", "c.pdf", "d.json"}}

		m := New(context.Background(), db, WithExporter(stub))
		m = send(t, m, keyRunes("2"), keyRunes("f"))
		if len(m.leads) != 1 {
			t.Fatalf("expected filtered view, got %d", len(m.leads))
		}
		m = send(t, m, keyRunes("x"))
		if m.msgIsErr {
			t.Fatalf("unexpected error: %s", m.Message)
		}
		if len(stub.data.Leads) != 2 {
			t.Fatalf("expected every lead exported, got %d", len(stub.data.Leads))
		}
		if !strings.Contains(m.Message, "4 files") {
			t.Fatalf("unexpected message %q", m.Message)
		}
	})

	t.Run("real exporter", func(t *testing.T) {
		db := setupModelDB(t)
		addLead(t, db, "Alice", models.LeadWarm, 10)
		dir := t.TempDir()
		m := New(context.Background(), db, WithExporter(export.New(dir)))
		m = send(t, m, keyRunes("x"))
		if m.msgIsErr {
			t.Fatalf("unexpected error: %s", m.Message)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir failed: %v", err)
		}
		if len(entries) != 4 {
			t.Fatalf("expected 4 export files, got %d", len(entries))
		}
	})
}
