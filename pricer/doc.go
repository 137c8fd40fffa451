// Package pricer walks a tree.Tree backward to produce a single option
// price (Price), prices a batch of options sharing a model by caching one
// tree per distinct time to expiry (PriceBatch), and averages a step-count
// pair of batch prices to cancel first-order discretisation bias
// (PriceWithRichardson).
package pricer
