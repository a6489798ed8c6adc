// Package script defines target-script metadata for reverse romanization.
//
// A ReverseScript carries the per-script data the engine needs: writing
// direction, default vowels, a total fallback mapping for characters no rule
// covers, and the abugida vowel-insertion hook. Scripts are registered once
// at startup in a Registry and treated as immutable afterwards, so the
// Registry is shared across concurrent conversion calls without locking.
//
// The behavioral surface per script is deliberately small and data-driven:
// scripts are plain records plus two methods, not an inheritance hierarchy.
// Additional scripts can be declared in CUE files and loaded with LoadCUEDir.
package script
