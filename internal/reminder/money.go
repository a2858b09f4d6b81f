package reminder

import (
	"database/sql"
	"fmt"
	"math"
)

// FormatKurus renders an amount in kuruş as lira with two decimals,
// e.g. 15000 -> "150.00 ₺".
func FormatKurus(kurus int64) string {
	sign := ""
	if kurus < 0 {
		sign = "-"
		kurus = -kurus
	}
	return fmt.Sprintf("%s%d.%02d ₺", sign, kurus/100, kurus%100)
}

// FormatAmount renders a nullable amount; an absent value renders as zero
// rather than an error.
func FormatAmount(kurus sql.NullInt64) string {
	if !kurus.Valid {
		return FormatKurus(0)
	}
	return FormatKurus(kurus.Int64)
}

// KurusFromLira converts a fractional lira amount to kuruş. Halves round
// away from zero, so -10.125 lira becomes -1013 kuruş.
func KurusFromLira(lira float64) int64 {
	if lira < 0 {
		return -int64(math.Floor(-lira*100 + 0.5))
	}
	return int64(math.Floor(lira*100 + 0.5))
}
