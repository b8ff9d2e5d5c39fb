// Package models defines the domain records of the meal ledger.
//
// # Records
//
//   - Employee: a person who takes part in workplace meals
//   - Deposit: money credited to an employee for one calendar month
//   - MealEntry: whether an employee had lunch and/or dinner on a day
//   - MealCost: one employee's derived share of a day's meal cost
//
// Deposit, MealEntry and MealCost reference their Employee by ID string; there are no
// pointers between records. Referential integrity (cascade on employee delete) is
// enforced by the ledger engine, not by the stores.
//
// # Formats
//
// Months are "YYYY-MM" strings and days are "YYYY-MM-DD" strings, so a day belongs to
// a month when the month is its prefix. Timestamps are Unix seconds.
//
// The JSON field names are the persisted names used by the local fallback store and
// the record-store RPC.
package models
