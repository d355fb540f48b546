package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
		want  string
	}{
		{"number", `7680.5`, true, "7680.5"},
		{"quoted number", `"7680.5"`, true, "7680.5"},
		{"negative quoted", `"-0.00025"`, true, "-0.00025"},
		{"integer", `188829147`, true, "188829147"},
		{"empty string", `""`, false, ""},
		{"null", `null`, false, ""},
		{"placeholder string", `"market_price"`, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n ExNumber
			if err := json.Unmarshal([]byte(tc.input), &n); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tc.input, err)
			}
			if n.Valid() != tc.valid {
				t.Fatalf("Valid()=%v, want %v", n.Valid(), tc.valid)
			}
			if tc.valid && n.Decimal().String() != tc.want {
				t.Fatalf("value=%s, want %s", n.Decimal().String(), tc.want)
			}
		})
	}
}

func TestExNumber_ArithmeticPropagatesAbsent(t *testing.T) {
	present := NumberFromFloat(10)
	var absent ExNumber

	if present.Add(absent).Valid() {
		t.Error("present + absent should be absent")
	}
	if absent.Sub(present).Valid() {
		t.Error("absent - present should be absent")
	}
	if present.Mul(absent).Valid() {
		t.Error("present * absent should be absent")
	}
	if present.Div(absent).Valid() {
		t.Error("present / absent should be absent")
	}

	sum := present.Add(NumberFromFloat(5))
	if !sum.Valid() || !sum.Decimal().Equal(decimal.NewFromInt(15)) {
		t.Errorf("10 + 5 = %s, want 15", sum.Decimal())
	}
}

func TestExNumber_DivByZeroIsAbsent(t *testing.T) {
	got := NumberFromFloat(10).Div(NumberFromInt(0))
	if got.Valid() {
		t.Error("division by zero should yield an absent value")
	}
}

func TestExNumber_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NumberFromString("7680.5"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "7680.5" {
		t.Errorf("Marshal=%s, want 7680.5", b)
	}

	var absent ExNumber
	b, err = json.Marshal(absent)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("Marshal(absent)=%s, want null", b)
	}
}
