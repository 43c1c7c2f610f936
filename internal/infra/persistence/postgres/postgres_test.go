package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	tests := []struct {
		name       string
		prev, cur  sql.DBStats
		wantWaited bool
		wantLevel  slog.Level
	}{
		{
			name:       "no new waits",
			prev:       sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:        sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			wantWaited: false,
			wantLevel:  slog.LevelDebug,
		},
		{
			name:       "short waits",
			prev:       sql.DBStats{WaitCount: 1, WaitDuration: 0},
			cur:        sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantWaited: true,
			wantLevel:  slog.LevelDebug,
		},
		{
			name:       "long waits",
			prev:       sql.DBStats{WaitCount: 0},
			cur:        sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond},
			wantWaited: true,
			wantLevel:  slog.LevelWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, attrs, waited := poolWaitReport(tt.prev, tt.cur)
			assert.Equal(t, tt.wantWaited, waited)
			assert.Equal(t, tt.wantLevel, level)
			if waited {
				assert.NotEmpty(t, attrs)
			}
		})
	}
}
