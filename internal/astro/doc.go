// Package astro is the shared reference module for classical chart
// doctrine: sign lordships, exaltation and debilitation positions,
// moolatrikona zones, natural friendships, graha drishti aspect patterns,
// house groupings, nakshatra cycles, ashtakavarga benefic-place tables, and
// degree-based special zones.
//
// All of it is static, read-only data. A single Reference value is built
// once per process (see Std) and injected into every scoring layer, so the
// doctrine lives in exactly one place instead of being re-declared per
// layer. Reference methods are pure lookups: no I/O, no mutation, safe for
// concurrent use.
package astro
