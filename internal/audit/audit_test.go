package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestLog(t *testing.T) (*Log, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	l, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open audit log: %v", err)
	}
	return l, path
}

func testEntry(op string) Entry {
	return Entry{Actor: "parent@laptop", Operation: op, Target: "chatgpt.com"}
}

func writeLines(t *testing.T, path string, lines []string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600); err != nil {
		t.Fatal(err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestSequentialWritesProduceValidChain(t *testing.T) {
	l, path := newTestLog(t)
	for i := 0; i < 5; i++ {
		if err := l.Record(testEntry("site.disable")); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	l.Close()

	res := Verify(path)
	if !res.Valid || res.Lines != 5 {
		t.Fatalf("Verify = %+v", res)
	}
}

func TestRecordFillsDefaults(t *testing.T) {
	l, path := newTestLog(t)
	if err := l.Record(testEntry("state.pause")); err != nil {
		t.Fatal(err)
	}
	l.Close()

	var e Entry
	if err := json.Unmarshal([]byte(readLines(t, path)[0]), &e); err != nil {
		t.Fatal(err)
	}
	if e.PrevHash != GenesisHash {
		t.Errorf("prev_hash = %s", e.PrevHash)
	}
	if e.Result != ResultOK || e.Timestamp == "" || e.Actor != "parent@laptop" {
		t.Errorf("entry = %+v", e)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func([]string) []string
		wantLine int
	}{
		{"edited", func(l []string) []string {
			l[1] = strings.Replace(l[1], `"site.disable"`, `"site.enable"`, 1)
			return l
		}, 3},
		{"deleted", func(l []string) []string { return []string{l[0], l[2]} }, 2},
		{"inserted", func(l []string) []string {
			fake, _ := json.Marshal(Entry{Actor: "x", Operation: "rule.delete", PrevHash: "sha256:fake"})
			return []string{l[0], string(fake), l[1], l[2]}
		}, 2},
		{"garbage", func(l []string) []string { return []string{l[0], "{not json"} }, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, path := newTestLog(t)
			for i := 0; i < 3; i++ {
				if err := l.Record(testEntry("site.disable")); err != nil {
					t.Fatal(err)
				}
			}
			l.Close()
			writeLines(t, path, tt.mutate(readLines(t, path)))

			res := Verify(path)
			if res.Valid {
				t.Fatal("expected broken chain")
			}
			if res.ErrorLine != tt.wantLine {
				t.Errorf("error line = %d, want %d (%s)", res.ErrorLine, tt.wantLine, res.Error)
			}
		})
	}
}

func TestEmptyLogPassesVerification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jsonl")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}
	res := Verify(path)
	if !res.Valid || res.Lines != 0 {
		t.Fatalf("Verify = %+v", res)
	}
}

func TestConcurrentWritesSerializeCorrectly(t *testing.T) {
	l, path := newTestLog(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Record(testEntry("rule.update"))
		}()
	}
	wg.Wait()
	l.Close()

	res := Verify(path)
	if !res.Valid || res.Lines != 50 {
		t.Fatalf("Verify = %+v", res)
	}
}

func TestOpenExistingLogContinuesChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	for round := 0; round < 2; round++ {
		l, err := Open(path)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			if err := l.Record(testEntry("state.resume")); err != nil {
				t.Fatal(err)
			}
		}
		l.Close()
	}
	res := Verify(path)
	if !res.Valid || res.Lines != 6 {
		t.Fatalf("Verify = %+v", res)
	}
}

func TestTail(t *testing.T) {
	l, path := newTestLog(t)
	for _, op := range []string{"a", "b", "c", "d"} {
		if err := l.Record(testEntry(op)); err != nil {
			t.Fatal(err)
		}
	}
	l.Close()

	got, err := Tail(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Operation != "c" || got[1].Operation != "d" {
		t.Errorf("Tail = %+v", got)
	}

	all, _ := Tail(path, 0)
	if len(all) != 4 {
		t.Errorf("Tail(0) returned %d entries", len(all))
	}

	missing, err := Tail(filepath.Join(t.TempDir(), "nope.jsonl"), 5)
	if err != nil || missing != nil {
		t.Errorf("missing file = %v, %v", missing, err)
	}
}

func TestHashLine(t *testing.T) {
	h1 := HashLine([]byte(`{"ts":"x"}`))
	if h1 != HashLine([]byte(`{"ts":"x"}`)) {
		t.Fatal("hash not deterministic")
	}
	if !strings.HasPrefix(h1, "sha256:") || len(h1) != 7+64 {
		t.Fatalf("hash = %s", h1)
	}
	if h1 == HashLine([]byte(`{"ts":"y"}`)) {
		t.Fatal("different input produced same hash")
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Record(testEntry("noop")); err != nil {
		t.Fatal(err)
	}
}
