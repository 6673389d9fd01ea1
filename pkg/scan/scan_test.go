package scan

import "testing"

func TestPackageStatus(t *testing.T) {
	unsafeFn := CounterBlock{Functions: Count{Safe: 3, Unsafe: 1}}
	safeOnly := CounterBlock{Exprs: Count{Safe: 10}}

	tests := []struct {
		name  string
		pkg   Package
		tests IncludeTests
		want  Status
	}{
		{"forbids and clean", Package{ForbidsUnsafe: true, Used: safeOnly}, IncludeTestsNo, NoneDetectedForbidsUnsafe},
		{"allows and clean", Package{Used: safeOnly}, IncludeTestsNo, NoneDetectedAllowsUnsafe},
		{"used unsafe", Package{Used: unsafeFn}, IncludeTestsNo, UnsafeDetected},
		{"used unsafe beats forbid", Package{ForbidsUnsafe: true, Used: unsafeFn}, IncludeTestsNo, UnsafeDetected},
		{"unused unsafe ignored", Package{Unused: unsafeFn}, IncludeTestsNo, NoneDetectedAllowsUnsafe},
		{"test unsafe excluded", Package{TestUsed: unsafeFn}, IncludeTestsNo, NoneDetectedAllowsUnsafe},
		{"test unsafe included", Package{TestUsed: unsafeFn}, IncludeTestsYes, UnsafeDetected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pkg.Status(tt.tests); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackageID(t *testing.T) {
	tests := []struct {
		pkg  Package
		want string
	}{
		{Package{ID: "serde 1.0.0 (registry)", Name: "serde", Version: "1.0.0"}, "serde 1.0.0"},
		{Package{ID: "serde", Name: "serde"}, "serde"},
		{Package{ID: "path+file:///app"}, "path+file:///app"},
	}
	for _, tt := range tests {
		if got := tt.pkg.PackageID(); got != tt.want {
			t.Errorf("PackageID() = %q, want %q", got, tt.want)
		}
	}
}

func TestCounterBlock(t *testing.T) {
	a := CounterBlock{
		Functions: Count{Safe: 1, Unsafe: 2},
		Methods:   Count{Safe: 4},
	}
	b := CounterBlock{
		Functions:  Count{Unsafe: 1},
		ItemTraits: Count{Safe: 1, Unsafe: 1},
	}
	sum := a.Add(b)

	if got := sum.Unsafe(); got != 4 {
		t.Errorf("Unsafe() = %d, want 4", got)
	}
	if got := sum.Total(); got != 10 {
		t.Errorf("Total() = %d, want 10", got)
	}
	if got := sum.Functions.Total(); got != 4 {
		t.Errorf("Functions.Total() = %d, want 4", got)
	}
}

func TestStatusSymbol(t *testing.T) {
	for _, s := range Statuses() {
		if s.Symbol(true) == s.Symbol(false) {
			t.Errorf("%v: ascii and utf8 symbols should differ", s)
		}
		if s.Description() == "" {
			t.Errorf("%v: empty description", s)
		}
	}
}

func TestUnsafeRatio(t *testing.T) {
	tests := []struct {
		name         string
		used, unused Count
		want         string
	}{
		{"empty", Count{}, Count{}, "0/0"},
		{"safe items ignored", Count{Safe: 10, Unsafe: 4}, Count{Safe: 7}, "4/4"},
		{"unused unsafe", Count{Unsafe: 1}, Count{Safe: 2, Unsafe: 3}, "1/4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnsafeRatio(tt.used, tt.unused); got != tt.want {
				t.Errorf("UnsafeRatio(%v, %v) = %q, want %q", tt.used, tt.unused, got, tt.want)
			}
		})
	}
}
