// Package listview derives the visible page of a list from a backing
// collection and a small view state (query, sort key and direction, page,
// page size).
//
// # Pipeline
//
// Apply runs three steps in order:
//
//  1. Filter: keep items whose searchable text contains the query,
//     case-insensitively. An empty query keeps everything.
//  2. Sort: stable sort by the selected field. Descending order negates the
//     comparator, so items that compare equal keep their filtered order in
//     both directions.
//  3. Paginate: clamp the page into [1, TotalPages] and slice it out.
//     TotalPages is never below 1, even for an empty result.
//
// # Fields
//
// Fields are declared once in a Schema as typed accessors. Each Field knows
// how to render its value as text and how to compare two items, so sorting
// never inspects value types at runtime. Text fields compare their rendered
// form byte-wise (case-sensitive); numeric fields compare numerically.
//
// # View
//
// View owns one collection and its State. Every mutation re-clamps the page,
// so State never points past the last page.
package listview
