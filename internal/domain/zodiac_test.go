package domain

import (
	"encoding/json"
	"testing"
)

func TestSignNames(t *testing.T) {
	if got := len(AllSigns()); got != 12 {
		t.Fatalf("len(AllSigns()) = %d", got)
	}
	if Mesha.String() != "Mesha" || Meena.String() != "Meena" {
		t.Fatalf("unexpected names %q %q", Mesha, Meena)
	}
	if got := Sign(12).String(); got != "Sign(12)" {
		t.Fatalf("out of range sign = %q", got)
	}

	s, ok := ParseSign("vrishchika")
	if !ok || s != Vrishchika {
		t.Fatalf("ParseSign = %v, %v", s, ok)
	}
}

func TestNakshatraNames(t *testing.T) {
	all := AllNakshatras()
	if len(all) != 27 {
		t.Fatalf("len = %d", len(all))
	}
	if all[0].String() != "Ashwini" || all[14].String() != "Swati" || all[26].String() != "Revati" {
		t.Fatalf("unexpected order: %v %v %v", all[0], all[14], all[26])
	}
}

func TestChartJSONUsesNames(t *testing.T) {
	c := Chart{
		Sun:       Position{Sign: Dhanu},
		Nakshatra: Nakshatra(14),
		Paksha:    Krishna,
	}

	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Chart
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Sun.Sign != Dhanu || back.Nakshatra != 14 || back.Paksha != Krishna {
		t.Fatalf("got %+v", back)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["nakshatra"] != "Swati" || raw["paksha"] != "Krishna" {
		t.Fatalf("raw = %v", raw)
	}
}
