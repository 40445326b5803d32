// Package market holds the technical-indicator math used by the stock
// endpoints. All functions operate on a trailing window of daily bars,
// oldest first.
package market

import "math"

// Indicators bundles the values computed for one symbol.
type Indicators struct {
	Symbol string  `json:"symbol"`
	SMA    float64 `json:"sma"`
	VWAP   float64 `json:"vwap"`
	RSI    float64 `json:"rsi"`
	Period int     `json:"period"`
}

// SMA is the simple moving average of the last period closes.
// Returns 0 when there is not enough data.
func SMA(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period {
		return 0
	}
	window := closes[len(closes)-period:]
	sum := 0.0
	for _, p := range window {
		sum += p
	}
	return sum / float64(period)
}

// VWAP is the volume-weighted average price over the last period bars.
// Falls back to the SMA when the window traded no volume.
func VWAP(closes []float64, volumes []int64, period int) float64 {
	if period <= 0 || len(closes) < period || len(volumes) < period {
		return 0
	}
	cs := closes[len(closes)-period:]
	vs := volumes[len(volumes)-period:]

	var totalValue float64
	var totalVolume int64
	for i := range cs {
		totalValue += cs[i] * float64(vs[i])
		totalVolume += vs[i]
	}
	if totalVolume == 0 {
		return SMA(closes, period)
	}
	return totalValue / float64(totalVolume)
}

// RSI is a simplified relative strength index: gains and losses are
// summed over up to period price changes and averaged over period
// without smoothing. With exactly period closes only period-1 deltas
// exist; the divisor stays period.
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period {
		return 0
	}
	span := period + 1
	if span > len(closes) {
		span = len(closes)
	}
	window := closes[len(closes)-span:]

	var gains, losses float64
	for i := 1; i < len(window); i++ {
		change := window[i] - window[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	rs := 100.0
	if avgLoss != 0 {
		rs = avgGain / avgLoss
	}
	return 100 - (100 / (1 + rs))
}

// Compute evaluates all indicators for one symbol's bar history.
// Requires at least period bars.
func Compute(symbol string, closes []float64, volumes []int64, period int) (Indicators, bool) {
	if len(closes) < period {
		return Indicators{}, false
	}
	return Indicators{
		Symbol: symbol,
		SMA:    Round2(SMA(closes, period)),
		VWAP:   Round2(VWAP(closes, volumes, period)),
		RSI:    Round2(RSI(closes, period)),
		Period: period,
	}, true
}

// Round2 rounds to two decimal places, matching quote precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
