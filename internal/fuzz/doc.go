// Package fuzztests houses Go fuzz harnesses that exercise the
// identifier pipeline (classifier -> reserved tables -> repair) on
// arbitrary inputs. Its goal is to smoke test robustness: no panics,
// and every repaired name must re-verify clean.
//
// It does not generate corpora or write files; seeds come from a small
// inline list plus testdata when present.
package fuzztests
