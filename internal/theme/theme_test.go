package theme

import "testing"

var testPalette = Palette{Ink: "#111111", Paper: "#eeeeee"}

func TestEvaluate_ResolvesEveryHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		wantDay := hour >= 6 && hour < 18

		// Fresh engines start in Day; run once from each state.
		for _, start := range []int{12, 0} {
			e := NewEngine(testPalette, DayStart, NightStart)
			e.Evaluate(start)
			got, _ := e.Evaluate(hour)
			if got.IsDay != wantDay {
				t.Fatalf("hour %d from %d: IsDay = %v, want %v", hour, start, got.IsDay, wantDay)
			}
		}
	}
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		e := NewEngine(testPalette, DayStart, NightStart)
		first, _ := e.Evaluate(hour)
		again, changed := e.Evaluate(hour)
		if changed {
			t.Fatalf("hour %d: second Evaluate reported a change", hour)
		}
		if again != first {
			t.Fatalf("hour %d: theme = %+v, want %+v", hour, again, first)
		}
	}
}

func TestEvaluate_InitialStateIsDaySentinel(t *testing.T) {
	e := NewEngine(testPalette, DayStart, NightStart)
	if !e.Current().IsDay {
		t.Fatalf("initial theme should be Day")
	}
	if _, changed := e.Evaluate(7); changed {
		t.Fatalf("Evaluate(7) from Day should not change")
	}

	e = NewEngine(testPalette, DayStart, NightStart)
	if _, changed := e.Evaluate(3); !changed {
		t.Fatalf("Evaluate(3) from Day should flip to Night")
	}
}

func TestEvaluate_DayToNightSwapsColors(t *testing.T) {
	e := NewEngine(testPalette, DayStart, NightStart)
	day, _ := e.Evaluate(7)
	night, changed := e.Evaluate(19)
	if !changed {
		t.Fatalf("Evaluate(19) should flip to Night")
	}
	if night.Foreground != day.Background || night.Background != day.Foreground {
		t.Fatalf("night = %+v, want swapped colors of %+v", night, day)
	}
	if day.Compositing != Normal || night.Compositing != Inverted {
		t.Fatalf("compositing day=%v night=%v, want normal/inverted", day.Compositing, night.Compositing)
	}
}

func TestEvaluate_TransitionsExactlyAtBoundaries(t *testing.T) {
	e := NewEngine(testPalette, DayStart, NightStart)
	transitions := 0
	// Two full days, hour by hour, starting at noon.
	for i := 0; i < 48; i++ {
		hour := (12 + i) % 24
		if _, changed := e.Evaluate(hour); changed {
			transitions++
			if hour != NightStart && hour != DayStart {
				t.Fatalf("transition at hour %d, want only at %d or %d", hour, DayStart, NightStart)
			}
		}
	}
	if transitions != 4 {
		t.Fatalf("transitions = %d, want 4", transitions)
	}
}

func TestEvaluate_CustomWindow(t *testing.T) {
	e := NewEngine(testPalette, 8, 20)
	if got, _ := e.Evaluate(7); got.IsDay {
		t.Fatalf("hour 7 with day window [8,20) should be Night")
	}
	if got, _ := e.Evaluate(19); !got.IsDay {
		t.Fatalf("hour 19 with day window [8,20) should be Day")
	}
}

func TestCompositingModeString(t *testing.T) {
	if Normal.String() != "normal" || Inverted.String() != "inverted" {
		t.Fatalf("String() = %q/%q", Normal.String(), Inverted.String())
	}
	if got := CompositingMode(7).String(); got != "CompositingMode(7)" {
		t.Fatalf("String() = %q, want CompositingMode(7)", got)
	}
}
