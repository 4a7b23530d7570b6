package fiber

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		endOfDay bool
		want     time.Time
		wantErr  error
	}{
		{"date start", "2025-12-01", false, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), nil},
		{"date end", "2025-12-01", true, time.Date(2025, 12, 1, 23, 59, 59, 999999999, time.UTC), nil},
		{"rfc3339 kept as instant", "2025-12-01T10:30:00Z", true, time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC), nil},
		{"rfc3339 offset normalised", "2025-12-01T01:00:00+03:00", false, time.Date(2025, 11, 30, 22, 0, 0, 0, time.UTC), nil},
		{"garbage", "01/12/2025", false, time.Time{}, ErrInvalidDate},
		{"empty", "", false, time.Time{}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.in, tt.endOfDay)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
			if err == nil && got.Location() != time.UTC {
				t.Fatalf("expected UTC location, got %s", got.Location())
			}
		})
	}
}
