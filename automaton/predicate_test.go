package automaton

import "testing"

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		p    Predicate
		yes  string
		no   string
	}{
		{"Byte", Byte('x'), "x", "yX"},
		{"Range", Range('b', 'd'), "bcd", "ae"},
		{"OneOf", OneOf("+-"), "+-", "*/"},
		{"Not", Not(Digit), "a ", "09"},
		{"Digit", Digit, "0123456789", "a/:"},
		{"Alpha", Alpha, "azAZ", "09_@["},
		{"Alnum", Alnum, "aZ5", "_ -"},
		{"Space", Space, " \t\n\r", "x_"},
		{"HexDigit", HexDigit, "09afAF", "gG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.yes); i++ {
				if !tt.p.Test(tt.yes[i]) {
					t.Errorf("%s should accept %q", tt.name, tt.yes[i])
				}
			}
			for i := 0; i < len(tt.no); i++ {
				if tt.p.Test(tt.no[i]) {
					t.Errorf("%s should reject %q", tt.name, tt.no[i])
				}
			}
		})
	}
}

func TestClassOf(t *testing.T) {
	c := classOf(Range(60, 70))
	for b := 0; b < alphabetSize; b++ {
		if c.has(byte(b)) != (b >= 60 && b <= 70) {
			t.Fatalf("class membership wrong for %d", b)
		}
	}
	if !classOf(Any()).has(255) || classOf(Not(Any())).has(0) {
		t.Errorf("Any/Not(Any) classes are wrong")
	}
}
