package config

import "github.com/shopspring/decimal"

func decimalFromInt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func mustDecimal(s string) decimal.Decimal { return decimal.RequireFromString(s) }
