// Package analytic computes the closed-form Black-Scholes price used to
// smooth the terminal nodes of a pricing tree. It is deliberately narrow:
// European vanilla calls and puts only, under constant volatility and cost
// of carry — anything the tree itself needs to price (American exercise,
// jumps, discrete dividends) stays in tree/pricer.
package analytic
