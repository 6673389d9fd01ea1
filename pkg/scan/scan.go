package scan

import "fmt"

// Count tallies the safe and unsafe occurrences of one kind of Rust item.
type Count struct {
	Safe   int `json:"safe"`
	Unsafe int `json:"unsafe"`
}

// Total returns Safe+Unsafe.
func (c Count) Total() int { return c.Safe + c.Unsafe }

// Add returns the element-wise sum of c and o.
func (c Count) Add(o Count) Count {
	return Count{Safe: c.Safe + o.Safe, Unsafe: c.Unsafe + o.Unsafe}
}

// UnsafeRatio formats the unsafe items of one kind as "used/total", where
// total counts both the used and the unused occurrences.
func UnsafeRatio(used, unused Count) string {
	return fmt.Sprintf("%d/%d", used.Unsafe, used.Unsafe+unused.Unsafe)
}

// CounterBlock holds a Count per item kind scanned in a package.
type CounterBlock struct {
	Functions  Count `json:"functions"`
	Exprs      Count `json:"exprs"`
	ItemImpls  Count `json:"item_impls"`
	ItemTraits Count `json:"item_traits"`
	Methods    Count `json:"methods"`
}

// Add returns the element-wise sum of b and o.
func (b CounterBlock) Add(o CounterBlock) CounterBlock {
	return CounterBlock{
		Functions:  b.Functions.Add(o.Functions),
		Exprs:      b.Exprs.Add(o.Exprs),
		ItemImpls:  b.ItemImpls.Add(o.ItemImpls),
		ItemTraits: b.ItemTraits.Add(o.ItemTraits),
		Methods:    b.Methods.Add(o.Methods),
	}
}

// Counts returns the per-kind counts in column order: functions,
// expressions, impls, traits, methods.
func (b CounterBlock) Counts() [5]Count {
	return [5]Count{b.Functions, b.Exprs, b.ItemImpls, b.ItemTraits, b.Methods}
}

// Unsafe returns the number of unsafe items across all kinds.
func (b CounterBlock) Unsafe() int {
	n := 0
	for _, c := range b.Counts() {
		n += c.Unsafe
	}
	return n
}

// Total returns the number of scanned items across all kinds.
func (b CounterBlock) Total() int {
	n := 0
	for _, c := range b.Counts() {
		n += c.Total()
	}
	return n
}

// IncludeTests controls whether unsafe code that is only compiled for tests
// counts towards a package's result.
type IncludeTests int

const (
	IncludeTestsNo IncludeTests = iota
	IncludeTestsYes
)

// String returns "yes" or "no".
func (t IncludeTests) String() string {
	if t == IncludeTestsYes {
		return "yes"
	}
	return "no"
}

// Package is the scan result for a single package together with the
// metadata the output pattern can reference.
type Package struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	License    string `json:"license,omitempty"`
	Repository string `json:"repository,omitempty"`

	// ForbidsUnsafe is set when the crate root declares #![forbid(unsafe_code)].
	ForbidsUnsafe bool `json:"forbids_unsafe"`

	// Used counts items reachable from the build; Unused counts the rest.
	Used   CounterBlock `json:"used"`
	Unused CounterBlock `json:"unused"`
	// TestUsed counts items that are only compiled under cfg(test).
	TestUsed CounterBlock `json:"test_used"`
}

// PackageID returns the display identifier "name version", falling back to
// ID when the name is unknown.
func (p *Package) PackageID() string {
	if p.Name == "" {
		return p.ID
	}
	if p.Version == "" {
		return p.Name
	}
	return p.Name + " " + p.Version
}

// PackageLicense returns the declared license expression, or "" if none.
func (p *Package) PackageLicense() string { return p.License }

// PackageRepository returns the declared repository URL, or "" if none.
func (p *Package) PackageRepository() string { return p.Repository }

// UsedCounts returns the used counters, including test-only code when
// tests is IncludeTestsYes.
func (p *Package) UsedCounts(tests IncludeTests) CounterBlock {
	if tests == IncludeTestsYes {
		return p.Used.Add(p.TestUsed)
	}
	return p.Used
}

// Status classifies the package. Any used unsafe item wins; otherwise the
// forbid attribute decides between the two "none detected" states.
func (p *Package) Status(tests IncludeTests) Status {
	if p.UsedCounts(tests).Unsafe() > 0 {
		return UnsafeDetected
	}
	if p.ForbidsUnsafe {
		return NoneDetectedForbidsUnsafe
	}
	return NoneDetectedAllowsUnsafe
}
