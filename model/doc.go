// Package model binds the dist/tree/analytic primitives into the four
// market-model variants a pricer can be pointed at: plain Black-Scholes, the
// same with a single discrete dividend, a single log-normal jump added on
// top, and a Bernoulli mixture of two single-jump models.
//
// Each variant is a small, eagerly-validated struct rather than a shared
// base class — Go has no inheritance, and the four variants differ only in
// which extra fields they carry and how they wire tree.BuildParams, so
// embedding the narrower struct's params into the wider one expresses the
// "is-a-plus-more" relationship without virtual dispatch.
package model
