// SPDX-License-Identifier: MIT

// Package ecb fetches the European Central Bank euro reference rates.
//
// Two feeds are supported: the latest business day (KindDaily) and the last
// 90 business days (KindHistorical). A Source combines the HTTP Client with
// an on-disk Cache that is considered fresh only when it was written today
// for the same feed, deduplicates concurrent fetches, and falls back to a
// small built-in table of major currencies when the feed is unreachable or
// empty.
//
// All rates are quoted against EUR: one euro buys Rate units of Currency.
package ecb
