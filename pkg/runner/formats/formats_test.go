package formats

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func TestFormatsTable(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	f := Formats{Example: time.Date(2025, time.March, 15, 13, 5, 0, 0, time.UTC), Out: &buf}
	if err := f.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"ddMMyyyy",
		"yyyyMMddhhmmA",
		"day month year",
		"year month day hour minute ampm",
		"15/03/2025",
		"2025/03/15 01:05 PM",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatsJSON(t *testing.T) {
	var buf bytes.Buffer
	f := Formats{Example: time.Date(2025, time.March, 15, 13, 5, 0, 0, time.UTC), Out: &buf, JSON: true}
	if err := f.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got []formatJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 9 {
		t.Fatalf("expected 9 formats, got %d", len(got))
	}
	if got[4].Name != "MMddyyyyHHmm" || got[4].Example != "03/15/2025 13:05" {
		t.Fatalf("unexpected entry %+v", got[4])
	}
}
