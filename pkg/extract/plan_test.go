package extract

import (
	"errors"
	"testing"
)

// The step must come from frameCount combined with the duration estimate. A
// VFR clip reporting fps=29.98 but holding only 892 frames over 29.75s used
// to collapse the step to 1 and extract every single frame.
func TestPlanIntervalVFRStep(t *testing.T) {
	plan, err := PlanInterval(892, 29.75, 2.0)
	if err != nil {
		t.Fatalf("PlanInterval: %v", err)
	}

	// estimated = floor(29.75/2.0) = 14, step = floor(892/14) = 63
	if len(plan.Entries) != 15 {
		t.Fatalf("plan length = %d, want 15", len(plan.Entries))
	}
	if got := plan.Entries[1].FrameIndex; got != 63 {
		t.Errorf("step = %d, want 63", got)
	}
	if got := plan.Entries[14].FrameIndex; got != 882 {
		t.Errorf("last index = %d, want 882", got)
	}
}

func TestPlanIntervalProperties(t *testing.T) {
	cases := []struct {
		name       string
		frameCount int64
		duration   float64
		interval   float64
	}{
		{"one_per_second", 300, 10.0, 1.0},
		{"interval_longer_than_video", 300, 10.0, 60.0},
		{"tiny_interval", 300, 10.0, 0.001},
		{"single_frame_video", 1, 0.04, 2.0},
		{"zero_duration", 500, 0, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := PlanInterval(tc.frameCount, tc.duration, tc.interval)
			if err != nil {
				t.Fatalf("PlanInterval: %v", err)
			}
			if len(plan.Entries) == 0 {
				t.Fatal("empty plan")
			}

			step := plan.Entries[0].FrameIndex
			if len(plan.Entries) > 1 {
				step = plan.Entries[1].FrameIndex - plan.Entries[0].FrameIndex
			}
			if len(plan.Entries) > 1 && step < 1 {
				t.Errorf("step = %d, want >= 1", step)
			}

			prev := int64(-1)
			for i, e := range plan.Entries {
				if e.OutputIndex != i+1 {
					t.Errorf("entry %d: output index %d, want %d", i, e.OutputIndex, i+1)
				}
				if e.FrameIndex >= tc.frameCount {
					t.Errorf("entry %d: frame index %d out of range [0,%d)", i, e.FrameIndex, tc.frameCount)
				}
				if e.FrameIndex <= prev {
					t.Errorf("entry %d: frame index %d not increasing", i, e.FrameIndex)
				}
				prev = e.FrameIndex
			}

			if step >= 1 && int64(len(plan.Entries)) > tc.frameCount/step+1 {
				t.Errorf("plan length %d exceeds floor(frameCount/step)+1 = %d",
					len(plan.Entries), tc.frameCount/step+1)
			}
		})
	}
}

func TestPlanIntervalRejectsNonPositive(t *testing.T) {
	for _, interval := range []float64{0, -1.5} {
		if _, err := PlanInterval(100, 10, interval); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("PlanInterval(interval=%g) error = %v, want ErrInvalidArgument", interval, err)
		}
	}
}

func TestPlanCount(t *testing.T) {
	cases := []struct {
		name       string
		frameCount int64
		count      int
		wantLast   int64
	}{
		{"even_split", 100, 10, 90},
		{"count_equals_frames", 10, 10, 9},
		{"more_frames_requested_than_exist", 5, 10, 4},
		{"single", 100, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := PlanCount(tc.frameCount, tc.count)
			if err != nil {
				t.Fatalf("PlanCount: %v", err)
			}
			if len(plan.Entries) != tc.count {
				t.Fatalf("plan length = %d, want exactly %d", len(plan.Entries), tc.count)
			}
			if got := plan.Entries[len(plan.Entries)-1].FrameIndex; got != tc.wantLast {
				t.Errorf("last frame index = %d, want %d", got, tc.wantLast)
			}
			if plan.PadTotal != tc.count {
				t.Errorf("PadTotal = %d, want %d", plan.PadTotal, tc.count)
			}
			for i, e := range plan.Entries {
				if e.FrameIndex < 0 || e.FrameIndex >= tc.frameCount {
					t.Errorf("entry %d: frame index %d out of range", i, e.FrameIndex)
				}
			}
		})
	}
}

func TestPlanCountDuplicatesWhenShort(t *testing.T) {
	// 3 frames, 10 requested: trailing entries clamp to the last frame and
	// the driver writes duplicate-content files under distinct names.
	plan, err := PlanCount(3, 10)
	if err != nil {
		t.Fatalf("PlanCount: %v", err)
	}
	if len(plan.Entries) != 10 {
		t.Fatalf("plan length = %d, want 10", len(plan.Entries))
	}
	for _, e := range plan.Entries[3:] {
		if e.FrameIndex != 2 {
			t.Errorf("entry %d: frame index %d, want clamp to 2", e.OutputIndex, e.FrameIndex)
		}
	}
}

func TestPlanCountInvalid(t *testing.T) {
	for _, count := range []int{0, -3} {
		plan, err := PlanCount(100, count)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("PlanCount(count=%d) error = %v, want ErrInvalidArgument", count, err)
		}
		if len(plan.Entries) != 0 {
			t.Errorf("PlanCount(count=%d) produced %d entries, want none", count, len(plan.Entries))
		}
	}
}

func TestPlanTimestamp(t *testing.T) {
	plan := PlanTimestamp(30.0, 90.0, "01:30")

	if len(plan.Entries) != 1 {
		t.Fatalf("plan length = %d, want 1", len(plan.Entries))
	}
	if got := plan.Entries[0].FrameIndex; got != 2700 {
		t.Errorf("frame index = %d, want 2700", got)
	}
	if !plan.Single() {
		t.Error("Single() = false, want true")
	}
	if plan.Label != "01:30" {
		t.Errorf("label = %q, want %q", plan.Label, "01:30")
	}
}

func TestPlanTimestampDefaultLabel(t *testing.T) {
	plan := PlanTimestamp(25.0, 12.5, "")
	if plan.Label != "12.5" {
		t.Errorf("label = %q, want %q", plan.Label, "12.5")
	}
}

func TestModesProduceSamePlans(t *testing.T) {
	meta := testMetadata(892, 29.98)
	meta.Duration = 29.75

	intervalPlan, err := Interval{Seconds: 2.0}.Plan(meta)
	if err != nil {
		t.Fatalf("Interval.Plan: %v", err)
	}
	direct, _ := PlanInterval(892, 29.75, 2.0)
	if len(intervalPlan.Entries) != len(direct.Entries) {
		t.Errorf("Interval.Plan length %d != PlanInterval length %d",
			len(intervalPlan.Entries), len(direct.Entries))
	}

	countPlan, err := Count{N: 7}.Plan(meta)
	if err != nil {
		t.Fatalf("Count.Plan: %v", err)
	}
	if len(countPlan.Entries) != 7 {
		t.Errorf("Count.Plan length = %d, want 7", len(countPlan.Entries))
	}

	tsPlan, err := Timestamp{Seconds: 10, Label: "10"}.Plan(meta)
	if err != nil {
		t.Fatalf("Timestamp.Plan: %v", err)
	}
	if got := tsPlan.Entries[0].FrameIndex; got != int64(10*29.98) {
		t.Errorf("Timestamp.Plan frame index = %d, want %d", got, int64(10*29.98))
	}
}
