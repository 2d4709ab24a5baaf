package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

func logEntry(id, workerID, workerName, factoryID, date string, amount int64, approved bool) domain.DailyLog {
	return domain.DailyLog{
		LogID:       id,
		WorkerID:    workerID,
		WorkerName:  workerName,
		FactoryID:   factoryID,
		FactoryName: "Factory " + factoryID,
		Date:        date,
		AmountPKR:   decimal.NewFromInt(amount),
		Approved:    approved,
	}
}

func sampleLogs() []domain.DailyLog {
	return []domain.DailyLog{
		logEntry("l1", "w1", "Bilal", "fa", "2024-03-05", 1500, false),
		logEntry("l2", "w2", "Muhammad Abdullah", "fa", "2024-03-06", 700, false),
		logEntry("l3", "w1", "Bilal", "fa", "2024-03-07", 300, true),
		logEntry("l4", "w3", "Sana", "fb", "2024-03-07", 1000, false),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.TotalAmount.IsZero())
	assert.True(t, s.AverageAmount.IsZero())
	assert.Equal(t, 0, s.PendingCount)
}

func TestSummarizeTotals(t *testing.T) {
	logs := sampleLogs()
	s := Summarize(logs)
	assert.Equal(t, 4, s.Count)
	assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(3500)), s.TotalAmount.String())
	assert.True(t, s.AverageAmount.Equal(decimal.NewFromInt(875)), s.AverageAmount.String())
	assert.Equal(t, 3, s.PendingCount)
}

func TestSummarizeSingleLog(t *testing.T) {
	s := Summarize([]domain.DailyLog{logEntry("l1", "w1", "Bilal", "fa", "2024-03-05", 1500, false)})
	assert.Equal(t, 1, s.Count)
	assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, s.AverageAmount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 1, s.PendingCount)
}

func TestGroupByWorkerConservesTotal(t *testing.T) {
	logs := sampleLogs()
	points := GroupByWorker(logs)
	require.Len(t, points, 3)

	assert.Equal(t, "Bilal", points[0].Label)
	assert.True(t, points[0].Amount.Equal(decimal.NewFromInt(1800)))
	assert.Equal(t, "Muhammad A...", points[1].Label)
	assert.Equal(t, "Sana", points[2].Label)

	sum := decimal.Zero
	for _, p := range points {
		sum = sum.Add(p.Amount)
	}
	assert.True(t, sum.Equal(Summarize(logs).TotalAmount))
}

func TestGroupByFactory(t *testing.T) {
	points := GroupByFactory(sampleLogs())
	require.Len(t, points, 2)
	assert.Equal(t, "Factory fa", points[0].Label)
	assert.True(t, points[0].Amount.Equal(decimal.NewFromInt(2500)))
	assert.True(t, points[1].Amount.Equal(decimal.NewFromInt(1000)))
}

func TestGroupByWorkerMergesSharedName(t *testing.T) {
	logs := []domain.DailyLog{
		logEntry("l1", "w1", "Bilal", "fa", "2024-03-05", 1500, false),
		logEntry("l2", "w9", "Bilal", "fb", "2024-03-06", 500, false),
		logEntry("l3", "w4", "Abdul Rehman Khan", "fa", "2024-03-06", 200, false),
		logEntry("l4", "w5", "Abdul Rehman Khan", "fb", "2024-03-07", 100, false),
	}
	points := GroupByWorker(logs)
	require.Len(t, points, 2)
	assert.Equal(t, "Bilal", points[0].Label)
	assert.True(t, points[0].Amount.Equal(decimal.NewFromInt(2000)), points[0].Amount.String())
	assert.Equal(t, "Abdul Rehm...", points[1].Label)
	assert.True(t, points[1].Amount.Equal(decimal.NewFromInt(300)), points[1].Amount.String())
}

func TestGroupByFactoryMergesSharedName(t *testing.T) {
	a := logEntry("l1", "w1", "Bilal", "fa", "2024-03-05", 1500, false)
	b := logEntry("l2", "w2", "Sana", "fb", "2024-03-06", 500, false)
	a.FactoryName, b.FactoryName = "Main", "Main"

	points := GroupByFactory([]domain.DailyLog{a, b})
	require.Len(t, points, 1)
	assert.Equal(t, "Main", points[0].Label)
	assert.True(t, points[0].Amount.Equal(decimal.NewFromInt(2000)))
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "Bilal", TruncateLabel("Bilal"))
	assert.Equal(t, "0123456789", TruncateLabel("0123456789"))
	assert.Equal(t, "0123456789...", TruncateLabel("0123456789X"))
	assert.Equal(t, "محمد عبدال...", TruncateLabel("محمد عبداللہ خان"))
}

func TestApplyScopeManagerNeverSeesOtherFactory(t *testing.T) {
	manager := domain.Scope{IdentityID: "m1", FactoryID: "fa"}
	got := ApplyScope(sampleLogs(), manager, "fb")
	require.Len(t, got, 3)
	for _, l := range got {
		assert.Equal(t, "fa", l.FactoryID)
	}

	assert.Empty(t, ApplyScope(sampleLogs(), domain.Scope{IdentityID: "p1"}, ""))
}

func TestApplyScopeOwnerSelection(t *testing.T) {
	owner := domain.Scope{IdentityID: "o1", Owner: true}
	assert.Len(t, ApplyScope(sampleLogs(), owner, ""), 4)
	assert.Len(t, ApplyScope(sampleLogs(), owner, "fb"), 1)
}

func TestToExportRows(t *testing.T) {
	rows := ToExportRows(sampleLogs())
	require.Len(t, rows, 4)
	assert.Equal(t, StatusPending, rows[0].Status)
	assert.Equal(t, StatusApproved, rows[2].Status)
	assert.Equal(t, "2024-03-05", rows[0].Date)
	assert.Equal(t, "Muhammad Abdullah", rows[1].WorkerName)
}
