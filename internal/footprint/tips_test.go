package footprint

import (
	"strings"
	"testing"

	"github.com/theirongolddev/ecotrack/internal/model"
)

func TestTips_AllRulesFireInOrder(t *testing.T) {
	e := model.Entry{
		CarMiles:     25,
		TransitMiles: 1,
		ElecKWh:      40,
		Diet:         model.DietOmnivore,
	}

	tips := Tips(e)
	if len(tips) != 4 {
		t.Fatalf("got %d tips, want 4: %v", len(tips), tips)
	}

	wantOrder := []string{"carpool", "bus or train", "lights/appliances", "meatless"}
	for i, frag := range wantOrder {
		if !strings.Contains(tips[i], frag) {
			t.Errorf("tips[%d] = %q, want it to mention %q", i, tips[i], frag)
		}
	}
}

func TestTips_NoneFire(t *testing.T) {
	e := model.Entry{
		CarMiles:     5,
		TransitMiles: 10,
		ElecKWh:      10,
		Diet:         model.DietVegan,
	}

	if tips := Tips(e); len(tips) != 0 {
		t.Errorf("got %v, want no tips", tips)
	}
}

func TestTips_ThresholdsAreStrict(t *testing.T) {
	// Values exactly at the thresholds fire nothing (rules use > and <).
	e := model.Entry{
		CarMiles:     20,
		TransitMiles: 5,
		ElecKWh:      30,
		Diet:         model.DietVegetarian,
	}

	if tips := Tips(e); len(tips) != 0 {
		t.Errorf("got %v, want no tips at exact thresholds", tips)
	}
}

func TestTips_SingleRule(t *testing.T) {
	e := model.Entry{
		CarMiles:     5,
		TransitMiles: 10,
		ElecKWh:      10,
		Diet:         model.DietOmnivore,
	}

	tips := Tips(e)
	if len(tips) != 1 {
		t.Fatalf("got %d tips, want 1: %v", len(tips), tips)
	}
	if !strings.Contains(tips[0], "meatless") {
		t.Errorf("tips[0] = %q, want the meatless-meal tip", tips[0])
	}
}
