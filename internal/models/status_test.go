package models

import "testing"

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOn, "On"},
		{StatusIdle, "Idle"},
		{StatusShutoff, "Off"},
		{Status(42), "Idle"},
		{Status(-1), "Idle"},
	}

	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestTagColorFor(t *testing.T) {
	tests := []struct {
		status Status
		want   TagColor
	}{
		{StatusOn, TagGreen},
		{StatusShutoff, TagRed},
		{StatusIdle, TagBlue},
		{Status(7), TagBlue},
	}

	for _, tt := range tests {
		if got := TagColorFor(tt.status); got != tt.want {
			t.Errorf("TagColorFor(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestRegionModeFor(t *testing.T) {
	tests := []struct {
		name   string
		room   Room
		target string
		want   RegionMode
	}{
		{"other room while on", Room{ID: "bathroom", Status: StatusOn}, "kitchen", RegionTransparent},
		{"other room while idle", Room{ID: "bathroom", Status: StatusIdle}, "kitchen", RegionTransparent},
		{"other room while shutoff", Room{ID: "bathroom", Status: StatusShutoff}, "kitchen", RegionTransparent},
		{"target on", Room{ID: "bathroom", Status: StatusOn}, "bathroom", RegionActive},
		{"target idle", Room{ID: "bathroom", Status: StatusIdle}, "bathroom", RegionOff},
		{"target shutoff", Room{ID: "bathroom", Status: StatusShutoff}, "bathroom", RegionOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegionModeFor(tt.room, tt.target); got != tt.want {
				t.Errorf("RegionModeFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsumptionAssetFor(t *testing.T) {
	if ConsumptionAssetFor(StatusOn) != ConsumptionHigh {
		t.Error("Expected high consumption asset when on")
	}
	for _, s := range []Status{StatusIdle, StatusShutoff, Status(9)} {
		if ConsumptionAssetFor(s) != ConsumptionLow {
			t.Errorf("Expected low consumption asset for %v", s)
		}
	}
}

func TestActionLabelAndSummary(t *testing.T) {
	if got := ActionLabel(StatusOn); got != "Mark as idle" {
		t.Errorf("ActionLabel(on) = %q", got)
	}
	if got := ActionLabel(StatusIdle); got != "Force on" {
		t.Errorf("ActionLabel(idle) = %q", got)
	}
	if got := ActionLabel(StatusShutoff); got != "Force on" {
		t.Errorf("ActionLabel(shutoff) = %q", got)
	}

	if got := ConsumptionSummary(StatusIdle); got != "10 kWh per day, currently idle" {
		t.Errorf("ConsumptionSummary(idle) = %q", got)
	}
	if got := ConsumptionSummary(StatusOn); got != "16 kWh per day, currently on" {
		t.Errorf("ConsumptionSummary(on) = %q", got)
	}
	if got := ConsumptionSummary(StatusShutoff); got != "16 kWh per day, currently off" {
		t.Errorf("ConsumptionSummary(shutoff) = %q", got)
	}
}

func TestNextStatus(t *testing.T) {
	// On needs two toggles to come back
	s := NextStatus(StatusOn)
	if s != StatusIdle {
		t.Fatalf("Expected on -> idle, got %v", s)
	}
	if NextStatus(s) != StatusOn {
		t.Errorf("Expected idle -> on")
	}

	if NextStatus(StatusShutoff) != StatusOn {
		t.Error("Expected shutoff -> on")
	}

	// No input ever produces shutoff
	for _, in := range []Status{StatusOn, StatusIdle, StatusShutoff, Status(5)} {
		if NextStatus(in) == StatusShutoff {
			t.Errorf("NextStatus(%v) produced shutoff", in)
		}
	}
}

func TestToggledCopiesRoom(t *testing.T) {
	room := Room{
		ID:        "kitchen",
		Name:      "Kitchen",
		Status:    StatusOn,
		Schedules: []Schedule{{Start: 60, End: 120}},
	}

	toggled := Toggled(room)
	if toggled.Status != StatusIdle {
		t.Errorf("Expected idle, got %v", toggled.Status)
	}
	if room.Status != StatusOn {
		t.Error("Toggled must not modify its input")
	}

	toggled.Schedules[0].Start = 0
	if room.Schedules[0].Start != 60 {
		t.Error("Toggled result must not share schedules with its input")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"on", StatusOn, false},
		{" IDLE ", StatusIdle, false},
		{"shutoff", StatusShutoff, false},
		{"off", StatusShutoff, false},
		{"broken", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, s := range []Status{StatusOn, StatusIdle, StatusShutoff} {
		back, err := ParseStatus(s.String())
		if err != nil || back != s {
			t.Errorf("Expected %v to parse back from %q", s, s.String())
		}
	}
}
