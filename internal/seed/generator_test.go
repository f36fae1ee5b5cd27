package seed

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *Generator {
	return New(
		WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestGenerateShape(t *testing.T) {
	ds := newTestGenerator(1).Generate()

	require.Len(t, ds.Leads, config.SeedLeadCount)
	require.Len(t, ds.Sales, config.SeedSaleCount)
	_, err := uuid.Parse(ds.RunID)
	assert.NoError(t, err)
	assert.Equal(t, config.SeedSaleCount+ds.WonCount(), ds.SaleCount())
}

func TestGenerateLeadFields(t *testing.T) {
	phone := regexp.MustCompile(`^\+1 \(555\) \d{3}-\d{4}$`)
	oldest := fixedNow.Add(-config.SeedMonthsBack*config.SeedMonthLength - config.SeedDaysBack*24*time.Hour)

	for seed := uint64(0); seed < 5; seed++ {
		for _, e := range newTestGenerator(seed).Generate().Leads {
			l := e.Lead
			assert.True(t, l.Status.Valid(), "status %q", l.Status)
			assert.GreaterOrEqual(t, l.Value, float64(config.SeedLeadValueMin))
			assert.LessOrEqual(t, l.Value, float64(config.SeedLeadValueMax))
			assert.Equal(t, l.Value, float64(int(l.Value)), "value should be whole")
			assert.Regexp(t, phone, l.Phone)
			assert.Equal(t, seedAddress, l.Address)

			parts := strings.SplitN(l.Name, " ", 2)
			require.Len(t, parts, 2)
			biz := strings.SplitN(l.BusinessName, " ", 2)
			require.Len(t, biz, 2)
			assert.Contains(t, firstNames, parts[0])
			assert.Contains(t, lastNames, parts[1])
			assert.Contains(t, industries, biz[0])
			assert.Contains(t, services, biz[1])
			assert.Equal(t, strings.ToLower(parts[0]+"."+parts[1]+"@"+biz[0]+".com"), l.Email)
			assert.Equal(t, "Interested in "+strings.ToLower(biz[1])+" solutions.", l.Notes)

			assert.False(t, l.CreatedAt.After(fixedNow))
			assert.False(t, l.CreatedAt.Before(oldest))
		}
	}
}

func TestGenerateWonLeadsCarryMatchingSale(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		ds := newTestGenerator(seed).Generate()
		for _, e := range ds.Leads {
			if e.Lead.Status != models.LeadWon {
				assert.Nil(t, e.Sale)
				continue
			}
			require.NotNil(t, e.Sale)
			assert.Equal(t, ContractPrefix+e.Lead.BusinessName, e.Sale.Description)
			assert.Equal(t, e.Lead.Value, e.Sale.Amount)
			assert.True(t, e.Sale.Date.Equal(e.Lead.CreatedAt))
			assert.True(t, e.Sale.CreatedAt.Equal(fixedNow))
		}
	}
}

func TestGenerateStandaloneSales(t *testing.T) {
	ds := newTestGenerator(7).Generate()
	for _, s := range ds.Sales {
		assert.True(t, strings.HasPrefix(s.Description, ClosedDealPrefix))
		assert.GreaterOrEqual(t, s.Amount, float64(config.SeedSaleAmountMin))
		assert.LessOrEqual(t, s.Amount, float64(config.SeedSaleAmountMax))
		assert.False(t, s.Date.After(fixedNow))
	}
}

func TestGenerateDeterministicWithSameRand(t *testing.T) {
	a := newTestGenerator(42).Generate()
	b := newTestGenerator(42).Generate()
	require.Len(t, b.Leads, len(a.Leads))
	for i := range a.Leads {
		assert.Equal(t, a.Leads[i].Lead, b.Leads[i].Lead)
	}
	assert.Equal(t, a.Sales, b.Sales)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestGenerateCoversEveryStatus(t *testing.T) {
	seen := map[models.LeadStatus]bool{}
	for seed := uint64(0); seed < 20; seed++ {
		for _, e := range newTestGenerator(seed).Generate().Leads {
			seen[e.Lead.Status] = true
		}
	}
	for _, s := range models.LeadStatuses {
		assert.True(t, seen[s], "status %s never generated", s)
	}
}
