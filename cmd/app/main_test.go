package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	for _, env := range os.Environ() {
		key, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(key, "SALESTRACK_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

// run executes one CLI invocation against dbPath and returns its stdout.
func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	a := newApp()
	a.isTTY = func() bool { return false }
	root := a.rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--db", dbPath, "--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	a.teardown()
	return out.String(), err
}

func mustRun(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	out, err := run(t, dbPath, args...)
	require.NoError(t, err, "salestrack %s", strings.Join(args, " "))
	return out
}

func newDBPath(t *testing.T) string {
	t.Helper()
	isolateEnv(t)
	return filepath.Join(t.TempDir(), "cli.db")
}

func TestLeadAddListShow(t *testing.T) {
	db := newDBPath(t)

	out := mustRun(t, db, "lead", "add", "--name", "Jane Smith", "--company", "Initech", "--value", "12000", "--status", "warm")
	assert.Contains(t, out, "Added lead #1 Jane Smith")
	mustRun(t, db, "lead", "add", "--name", "Bob", "--value", "500")

	out = mustRun(t, db, "lead", "list")
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "Initech")
	assert.Contains(t, out, "$12,000")
	assert.Contains(t, out, "Bob")

	out = mustRun(t, db, "lead", "list", "--status", "cold")
	assert.Contains(t, out, "Bob")
	assert.NotContains(t, out, "Jane Smith")

	out = mustRun(t, db, "lead", "list", "--search", "init")
	assert.Contains(t, out, "Jane Smith")
	assert.NotContains(t, out, "Bob")

	out = mustRun(t, db, "lead", "show", "1")
	assert.Contains(t, out, "Status:   Warm")
	assert.Contains(t, out, "Company:  Initech")
}

func TestLeadAddRejectsInvalidInput(t *testing.T) {
	db := newDBPath(t)

	_, err := run(t, db, "lead", "add", "--name", "X", "--status", "lukewarm")
	assert.Error(t, err)

	_, err = run(t, db, "lead", "add", "--name", "   ")
	assert.Error(t, err)

	_, err = run(t, db, "lead", "add", "--name", "Neg", "--value=-5")
	assert.Error(t, err)

	_, err = run(t, db, "lead", "add")
	assert.Error(t, err, "name is required")

	out := mustRun(t, db, "lead", "list")
	assert.Contains(t, out, "No leads.")
}

func TestLeadWonRecordsSaleOnce(t *testing.T) {
	db := newDBPath(t)
	mustRun(t, db, "lead", "add", "--name", "Acme", "--value", "7500", "--status", "hot")

	out := mustRun(t, db, "lead", "won", "1")
	assert.Contains(t, out, "recorded sale #1")

	out = mustRun(t, db, "lead", "status", "1", "won")
	assert.Contains(t, out, "already won")

	out = mustRun(t, db, "lead", "won", "99")
	assert.Contains(t, out, "No lead #99")

	out = mustRun(t, db, "sale", "list")
	assert.Contains(t, out, "Converted Lead: Acme")
	assert.Equal(t, 1, strings.Count(out, "Converted Lead"))

	out = mustRun(t, db, "stats")
	assert.Contains(t, out, "$7,500 across 1 sales")
	assert.Contains(t, out, "Conversion rate: 100%")
}

func TestLeadStatusLostRecordsNoSale(t *testing.T) {
	db := newDBPath(t)
	mustRun(t, db, "lead", "add", "--name", "Stalled", "--value", "900")

	out := mustRun(t, db, "lead", "status", "1", "LOST")
	assert.Contains(t, out, "Lead #1 is now Lost")
	assert.Contains(t, mustRun(t, db, "sale", "list"), "No sales.")

	_, err := run(t, db, "lead", "status", "abc", "hot")
	assert.Error(t, err)
}

func TestLeadEditChangesOnlyGivenFields(t *testing.T) {
	db := newDBPath(t)
	mustRun(t, db, "lead", "add", "--name", "Dana", "--company", "Globex", "--value", "100", "--email", "dana@globex.test")

	mustRun(t, db, "lead", "edit", "1", "--value", "250", "--phone", "555-0100")

	out := mustRun(t, db, "lead", "show", "1")
	assert.Contains(t, out, "Value:    $250")
	assert.Contains(t, out, "Phone:    555-0100")
	assert.Contains(t, out, "Email:    dana@globex.test")
	assert.Contains(t, out, "Company:  Globex")

	_, err := run(t, db, "lead", "edit", "42", "--value", "1")
	assert.Error(t, err)
}

func TestLeadAddAndEditIntoWonRecordSale(t *testing.T) {
	db := newDBPath(t)

	out := mustRun(t, db, "lead", "add", "--name", "Direct", "--value", "400", "--status", "won")
	assert.Contains(t, out, "recorded sale #1")

	mustRun(t, db, "lead", "add", "--name", "Later", "--value", "600", "--status", "hot")
	out = mustRun(t, db, "lead", "edit", "2", "--status", "won", "--value", "650")
	assert.Contains(t, out, "won and recorded sale #2")

	out = mustRun(t, db, "lead", "edit", "2", "--status", "won", "--notes", "signed")
	assert.NotContains(t, out, "recorded sale")

	out = mustRun(t, db, "sale", "list")
	assert.Contains(t, out, "Converted Lead: Direct")
	assert.Contains(t, out, "Converted Lead: Later")
	assert.Equal(t, 2, strings.Count(out, "Converted Lead"))

	out = mustRun(t, db, "stats")
	assert.Contains(t, out, "$1,050 across 2 sales")
}

func TestLeadDeleteKeepsSales(t *testing.T) {
	db := newDBPath(t)
	mustRun(t, db, "lead", "add", "--name", "Acme", "--value", "100")
	mustRun(t, db, "lead", "won", "1")
	mustRun(t, db, "lead", "delete", "1")

	assert.Contains(t, mustRun(t, db, "lead", "list"), "No leads.")
	assert.Contains(t, mustRun(t, db, "sale", "list"), "Converted Lead: Acme")
}

func TestSalesChronological(t *testing.T) {
	db := newDBPath(t)
	mustRun(t, db, "sale", "add", "--desc", "Older", "--amount", "10", "--date", "2024-01-05")
	mustRun(t, db, "sale", "add", "--desc", "Newest", "--amount", "20", "--date", "2024-03-01T09:00:00Z")
	mustRun(t, db, "sale", "add", "--desc", "Middle", "--amount", "30", "--date", "2024-02-10 12:00:00")

	out := mustRun(t, db, "sale", "list")
	newest := strings.Index(out, "Newest")
	middle := strings.Index(out, "Middle")
	older := strings.Index(out, "Older")
	assert.True(t, newest < middle && middle < older, "unexpected order:\n%s", out)

	_, err := run(t, db, "sale", "add", "--desc", "Bad", "--amount", "5", "--date", "yesterday")
	assert.Error(t, err)

	mustRun(t, db, "sale", "delete", "1")
	assert.NotContains(t, mustRun(t, db, "sale", "list"), "Older")
}

func TestBareCommandPrintsStatsWithoutTerminal(t *testing.T) {
	db := newDBPath(t)
	mustRun(t, db, "lead", "add", "--name", "A", "--value", "100", "--status", "won")
	mustRun(t, db, "lead", "add", "--name", "B", "--value", "300", "--status", "hot")

	out := mustRun(t, db)
	assert.Contains(t, out, "Pipeline value:  $300")
	assert.Contains(t, out, "2 total, 1 active, 1 won, 0 lost")
	assert.Contains(t, out, "Conversion rate: 50%")
	assert.Contains(t, out, "New leads:       2 this week")
}

func TestSeedAndReset(t *testing.T) {
	db := newDBPath(t)
	mustRun(t, db, "lead", "add", "--name", "Replaced", "--value", "1")

	_, err := run(t, db, "seed")
	assert.ErrorIs(t, err, errNeedsConfirm)

	out := mustRun(t, db, "seed", "--yes", "--rand-seed", "7")
	assert.Contains(t, out, "Seeded 40 leads")

	out = mustRun(t, db, "lead", "list")
	assert.NotContains(t, out, "Replaced")

	_, err = run(t, db, "reset")
	assert.ErrorIs(t, err, errNeedsConfirm)

	mustRun(t, db, "reset", "--yes")
	assert.Contains(t, mustRun(t, db, "lead", "list"), "No leads.")
	assert.Contains(t, mustRun(t, db, "sale", "list"), "No sales.")
}

func TestSeedWithFixedRandSeedIsReproducible(t *testing.T) {
	db := newDBPath(t)
	figures := func() []string {
		out := mustRun(t, db, "stats")
		lines := strings.Split(out, "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		return lines[:3]
	}

	mustRun(t, db, "seed", "--yes", "--rand-seed", "11")
	first := figures()
	mustRun(t, db, "seed", "--yes", "--rand-seed", "11")
	assert.Equal(t, first, figures())
}

func TestInfoShowsSchemaVersion(t *testing.T) {
	db := newDBPath(t)
	out := mustRun(t, db, "info", "--export-dir", "/tmp/salestrack-exports")
	assert.Contains(t, out, "Database: "+db)
	assert.Contains(t, out, "Driver:   sqlite3")
	assert.Regexp(t, `Schema:   \S+`, out)
	assert.Contains(t, out, "Exports:  /tmp/salestrack-exports")
}

func TestExportThenImport(t *testing.T) {
	db := newDBPath(t)
	exportDir := t.TempDir()
	mustRun(t, db, "lead", "add", "--name", "Acme", "--value", "1000", "--status", "hot")
	mustRun(t, db, "lead", "add", "--name", "Globex", "--value", "2000")
	mustRun(t, db, "lead", "won", "2")
	mustRun(t, db, "sale", "add", "--desc", "Support", "--amount", "99.5", "--date", "2024-02-01")

	out := mustRun(t, db, "--export-dir", exportDir, "export")
	paths := strings.Fields(out)
	require.Len(t, paths, 4)
	assert.True(t, strings.HasSuffix(paths[0], ".xlsx"))
	assert.True(t, strings.HasSuffix(paths[2], ".pdf"))
	backup := paths[3]
	assert.True(t, strings.HasSuffix(backup, ".json"))
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}

	other := filepath.Join(t.TempDir(), "restored.db")
	_, err := run(t, other, "import", backup)
	assert.ErrorIs(t, err, errNeedsConfirm)

	out = mustRun(t, other, "import", "--yes", backup)
	assert.Contains(t, out, "Imported 2 leads and 2 sales")
	assert.Equal(t, mustRun(t, db, "lead", "list"), mustRun(t, other, "lead", "list"))
	assert.Equal(t, mustRun(t, db, "sale", "list"), mustRun(t, other, "sale", "list"))
}

func TestExportSingleFormat(t *testing.T) {
	db := newDBPath(t)
	exportDir := t.TempDir()

	out := mustRun(t, db, "--export-dir", exportDir, "export", "--format", "backup")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), ".json"))

	_, err := run(t, db, "export", "--format", "csv")
	assert.Error(t, err)
}

func TestInvalidDriverFlag(t *testing.T) {
	db := newDBPath(t)
	_, err := run(t, db, "--driver", "postgres", "stats")
	assert.Error(t, err)
}

func TestModerncDriver(t *testing.T) {
	db := newDBPath(t)
	mustRun(t, db, "--driver", "sqlite", "lead", "add", "--name", "Pure Go", "--value", "1")
	assert.Contains(t, mustRun(t, db, "--driver", "sqlite", "lead", "list"), "Pure Go")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "x"} {
		_, err := parseID(raw)
		assert.Error(t, err, raw)
	}
}
