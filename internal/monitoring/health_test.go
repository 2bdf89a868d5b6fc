package monitoring

import (
	"strings"
	"testing"
)

func TestVolumeAnomaly(t *testing.T) {
	week := []uint64{100, 110, 90, 105, 95, 100, 100}

	tests := []struct {
		name      string
		today     uint64
		history   []uint64
		anomalous bool
		want      string
	}{
		{"normal volume", 100, week, false, ""},
		{"drop below half of average", 40, week, true, "dropped"},
		{"spike above double the average", 250, week, true, "spiked"},
		{"exactly at the drop boundary", 50, week, false, ""},
		{"exactly at the spike boundary", 200, week, false, ""},
		{"no history", 100, nil, false, ""},
		{"all-zero history", 100, []uint64{0, 0, 0}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, anomalous := volumeAnomaly(tt.today, tt.history)
			if anomalous != tt.anomalous {
				t.Fatalf("anomalous = %v, want %v (details %q)", anomalous, tt.anomalous, details)
			}
			if tt.want != "" && !strings.Contains(details, tt.want) {
				t.Errorf("details %q does not mention %q", details, tt.want)
			}
		})
	}
}
