package hash

import "testing"

func TestSumKnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 9895},
		{"PING", 83176702},
		{"PONG", 83237908},
		{"REFRESH", 972080575},
		{"CONNECT", 2463738138},
		{"SUSPEND", 3643916638},
		{"RESUME", 1511404873},
		{"START", 134295406},
		{"Accelerometer", 1353510851},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Sum(tc.in); got != tc.want {
				t.Fatalf("Sum(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestSumSeedComposes(t *testing.T) {
	whole := Sum("MEMORY|RAM")
	staged := SumSeed("|RAM", Sum("MEMORY"))
	if whole != staged {
		t.Fatalf("staged hash %d, want %d", staged, whole)
	}
	if got := SumSeed("", 12345); got != 12345 {
		t.Fatalf("empty input should return seed, got %d", got)
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want []uint32
	}{
		{"single", "ab", 4, []uint32{9895}},
		{"two", "a|b", 4, []uint32{97, 98}},
		{"interior empty", "a||b", 4, []uint32{97, 0, 98}},
		{"trailing separator dropped", "a|", 4, []uint32{97}},
		{"empty input", "", 4, []uint32{}},
		{"max caps results", "a|b|ab", 2, []uint32{97, 98}},
		{"zero max", "a|b", 0, []uint32{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.in, '|', tc.max)
			if len(got) != len(tc.want) {
				t.Fatalf("Split(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Split(%q)[%d] = %d, want %d", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}
