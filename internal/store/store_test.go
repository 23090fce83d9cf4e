package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/r8slab/the-drop/internal/core"
)

func testIssue(id string, generated time.Time) core.Issue {
	return core.Issue{
		ID:      id,
		Subject: "Today's Drop: " + id,
		HTML:    "<html><body>issue body</body></html>",
		Sections:      []string{"GOOD_MORNING", "TECH_AI", "READS_OF_THE_WEEK"},
		EmailCount:    7,
		MarketImage:   "https://cdn.example.com/chart.png",
		ModelUsed:     "gemini-2.5-flash",
		DateGenerated: generated,
	}
}

func TestNewStore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewStore(tmpDir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	if store.db == nil {
		t.Error("Store database should not be nil")
	}

	// Check that database file was created
	dbPath := filepath.Join(tmpDir, "drop.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file should be created")
	}
}

func TestNewStoreInvalidDirectory(t *testing.T) {
	// Try to create store in a file (not directory)
	tmpDir := t.TempDir()
	invalidPath := filepath.Join(tmpDir, "file.txt")
	_ = os.WriteFile(invalidPath, []byte("test"), 0644)

	_, err := NewStore(invalidPath)
	if err == nil {
		t.Error("Expected error when creating store in invalid directory")
	}
}

func TestLastRunUnset(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	lastRun, err := store.LastRun()
	if err != nil {
		t.Fatalf("LastRun failed: %v", err)
	}
	if !lastRun.IsZero() {
		t.Errorf("Expected zero time before any run, got %v", lastRun)
	}
}

func TestSaveLastRunRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	want := time.Date(2025, 8, 4, 7, 15, 0, 0, time.UTC)
	if err := store.SaveLastRun(want); err != nil {
		t.Fatalf("SaveLastRun failed: %v", err)
	}

	got, err := store.LastRun()
	if err != nil {
		t.Fatalf("LastRun failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("Expected last run %v, got %v", want, got)
	}

	// Saving again replaces the single row
	later := want.Add(24 * time.Hour)
	if err := store.SaveLastRun(later); err != nil {
		t.Fatalf("SaveLastRun failed: %v", err)
	}
	got, err = store.LastRun()
	if err != nil {
		t.Fatalf("LastRun failed: %v", err)
	}
	if !got.Equal(later) {
		t.Errorf("Expected last run %v, got %v", later, got)
	}
}

func TestSaveIssueFindIssue(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	issue := testIssue(uuid.NewString(), time.Date(2025, 8, 4, 7, 0, 0, 0, time.UTC))
	if err := store.SaveIssue(issue); err != nil {
		t.Fatalf("SaveIssue failed: %v", err)
	}

	found, err := store.FindIssue(issue.ID)
	if err != nil {
		t.Fatalf("FindIssue failed: %v", err)
	}
	if found == nil {
		t.Fatal("Expected archived issue, got nil")
	}

	if found.Subject != issue.Subject {
		t.Errorf("Expected subject %s, got %s", issue.Subject, found.Subject)
	}
	if found.HTML != issue.HTML {
		t.Errorf("Expected HTML %s, got %s", issue.HTML, found.HTML)
	}
	if found.EmailCount != issue.EmailCount {
		t.Errorf("Expected email count %d, got %d", issue.EmailCount, found.EmailCount)
	}
	if found.MarketImage != issue.MarketImage {
		t.Errorf("Expected market image %s, got %s", issue.MarketImage, found.MarketImage)
	}
	if found.ModelUsed != issue.ModelUsed {
		t.Errorf("Expected model %s, got %s", issue.ModelUsed, found.ModelUsed)
	}
	if !found.DateGenerated.Equal(issue.DateGenerated) {
		t.Errorf("Expected date %v, got %v", issue.DateGenerated, found.DateGenerated)
	}
	if len(found.Sections) != len(issue.Sections) {
		t.Fatalf("Expected %d sections, got %d", len(issue.Sections), len(found.Sections))
	}
	for i, name := range issue.Sections {
		if found.Sections[i] != name {
			t.Errorf("Expected section %q at index %d, got %q", name, i, found.Sections[i])
		}
	}
}

func TestFindIssuePartialID(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	issueID := "1234567890abcdef"
	issue := testIssue(issueID, time.Now().UTC())
	if err := store.SaveIssue(issue); err != nil {
		t.Fatalf("SaveIssue failed: %v", err)
	}

	// Test exact match
	found, err := store.FindIssue(issueID)
	if err != nil {
		t.Fatalf("FindIssue failed: %v", err)
	}
	if found == nil || found.ID != issueID {
		t.Error("Should find issue with exact ID match")
	}

	// Test partial match
	found, err = store.FindIssue("1234")
	if err != nil {
		t.Fatalf("FindIssue failed: %v", err)
	}
	if found == nil || found.ID != issueID {
		t.Error("Should find issue with partial ID match")
	}

	// Test non-existent
	found, err = store.FindIssue("xyz")
	if err != nil {
		t.Fatalf("FindIssue failed: %v", err)
	}
	if found != nil {
		t.Error("Should not find issue with non-matching partial ID")
	}
}

func TestListIssues(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	base := time.Date(2025, 8, 1, 7, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		issue := testIssue(uuid.NewString(), base.Add(time.Duration(i)*24*time.Hour))
		if err := store.SaveIssue(issue); err != nil {
			t.Fatalf("SaveIssue failed: %v", err)
		}
	}

	issues, err := store.ListIssues(3)
	if err != nil {
		t.Fatalf("ListIssues failed: %v", err)
	}

	if len(issues) != 3 {
		t.Errorf("Expected 3 issues, got %d", len(issues))
	}

	// Should be ordered by date descending (most recent first)
	for i := 0; i < len(issues)-1; i++ {
		if issues[i].DateGenerated.Before(issues[i+1].DateGenerated) {
			t.Error("Issues should be ordered by date descending")
		}
	}
}

func TestListIssuesNoLimit(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	base := time.Date(2025, 8, 1, 7, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		issue := testIssue(uuid.NewString(), base.Add(time.Duration(i)*24*time.Hour))
		if err := store.SaveIssue(issue); err != nil {
			t.Fatalf("SaveIssue failed: %v", err)
		}
	}

	issues, err := store.ListIssues(0)
	if err != nil {
		t.Fatalf("ListIssues failed: %v", err)
	}
	if len(issues) != 4 {
		t.Errorf("Expected all 4 issues, got %d", len(issues))
	}
}

func TestSaveIssueReplacesExisting(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	issue := testIssue(uuid.NewString(), time.Now().UTC())
	if err := store.SaveIssue(issue); err != nil {
		t.Fatalf("SaveIssue failed: %v", err)
	}

	issue.Subject = "Today's Drop: revised"
	if err := store.SaveIssue(issue); err != nil {
		t.Fatalf("SaveIssue failed: %v", err)
	}

	issues, err := store.ListIssues(0)
	if err != nil {
		t.Fatalf("ListIssues failed: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("Expected 1 issue after replace, got %d", len(issues))
	}
	if issues[0].Subject != "Today's Drop: revised" {
		t.Errorf("Expected replaced subject, got %s", issues[0].Subject)
	}
}
