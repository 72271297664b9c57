// Package ranking defines the read models of the courier ranking engine.
//
// The engine serves one question: for a postal area and an optional merchant
// context, which couriers should be shown and in what order. Two sources can
// answer it. The dynamic source is a precomputed cache of per-area scores
// maintained by an external batch job. The fallback source is a live
// heuristic computed from raw order and review aggregates. Both produce the
// unified RankingCourier shape; FallbackScoreUsed tells them apart.
//
// Types here carry no behavior beyond what is intrinsic to the data; the
// algorithms that fill them live in the services package.
package ranking
