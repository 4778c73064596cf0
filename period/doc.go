// Package period computes block-wise windows: index values are floored to
// the start of their period (a granularity plus an integer multiplier,
// e.g. "2 months"), consecutive equal labels collapse into Blocks, and the
// window function runs once per block — optionally reaching whole blocks
// back or forward.
//
// 🚀 How it works
//
//  1. floor maps every index value to its block label; flooring preserves
//     order, so labels come out non-decreasing.
//  2. Maximal runs of equal consecutive labels become Blocks
//     (label, first position, last position).
//  3. Before/After — counted in WHOLE BLOCKS — resolve block-level
//     windows exactly like element-count sliding windows.
//  4. Each block window maps back to positions: the first position of its
//     leftmost block through the last position of its rightmost block,
//     and that pair feeds the engine.
//
// ⚠️ Output size equals the BLOCK count, not the input size — the one
// deliberate departure from size stability in this module.
//
// Built-in floors cover time.Time calendars (Year, Month, Week, Day,
// Hour, Minute — multipliers anchor at the Unix epoch, labels are
// UTC-normalized period starts) and integer domains (Every). Calendar
// semantics beyond that live with the caller: any order-preserving
// Floor[K, L] works.
package period
