// Package scout implements the valuation and performance attribution core of
// the stock-scout dashboard. It turns a ledger of buy/sell/cash transactions,
// historical prices, and historical exchange rates into point-in-time
// valuations and period performance breakdowns, all expressed in a single
// base currency.
//
// The package is a pure computation library:
//   - Ledger: the immutable, chronological record of transactions, and the
//     single source of truth. Holdings, valuations, and breakdowns are all
//     recomputed from it on demand.
//   - MarketData: sparse historical price series per ticker and exchange rate
//     series per currency pair, queried strictly "at or before" a date so a
//     computation can never see a future value.
//   - Engine: the stateless calculator combining both. It produces per-holding
//     and aggregate valuations, period breakdowns (beginning/ending value,
//     external flows, income, P&L excluding flows), and time-weighted and
//     money-weighted returns.
//
// Ledgers and market data persist as JSONL files, one record per line, so
// portfolios stay human-readable and diff-friendly. Fetching quotes from the
// network and presentation are handled by the feed and renderer packages.
package scout
