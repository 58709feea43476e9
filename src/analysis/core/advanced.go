package core

import (
	"math"
	"sort"

	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// Liquidity, flow and microstructure indicators over parallel price/volume
// series. Each function documents its fallback for insufficient data; none
// of them ever errors or panics.
// -----------------------------------------------------------------------------

// VWAP computes the Volume Weighted Average Price: cumulative P*V over
// cumulative V. Returns nil below 2 observations or when total volume is 0.
func VWAP(prices, volumes []float64) *float64 {
	if len(prices) < 2 || len(volumes) < 2 {
		return nil
	}

	n := len(prices)
	if len(volumes) < n {
		n = len(volumes)
	}

	tpVolume := 0.0
	totalVolume := 0.0
	for i := 0; i < n; i++ {
		tpVolume += prices[i] * volumes[i]
		totalVolume += volumes[i]
	}

	if totalVolume == 0 {
		return nil
	}

	result := Round2(tpVolume / totalVolume)
	return &result
}

// -----------------------------------------------------------------------------

// OrderFlow attributes each observation's volume to buy or sell pressure from
// the direction of the price move; unchanged prices split 50/50.
// Fallback is a balanced {0.5, 0.5, 1.0}.
func OrderFlow(prices, volumes []float64) models.MOrderFlow {
	neutral := models.MOrderFlow{BuyPressure: 0.5, SellPressure: 0.5, Ratio: 1.0}

	if len(prices) < 2 || len(volumes) < 2 {
		return neutral
	}

	n := len(prices)
	if len(volumes) < n {
		n = len(volumes)
	}

	buyVolume := 0.0
	sellVolume := 0.0

	for i := 1; i < n; i++ {
		switch {
		case prices[i] > prices[i-1]:
			buyVolume += volumes[i]
		case prices[i] < prices[i-1]:
			sellVolume += volumes[i]
		default:
			buyVolume += volumes[i] * 0.5
			sellVolume += volumes[i] * 0.5
		}
	}

	totalVolume := buyVolume + sellVolume
	if totalVolume == 0 {
		return neutral
	}

	return models.MOrderFlow{
		BuyPressure:  Round2(buyVolume / totalVolume),
		SellPressure: Round2(sellVolume / totalVolume),
		Ratio:        Round2(buyVolume / (sellVolume + 0.001)),
	}
}

// -----------------------------------------------------------------------------

// VolumeProfile bins prices into equal-width buckets and accumulates volume
// per bucket. POC is the highest-volume bucket; the value area is the minimal
// set of buckets (by descending volume) covering 70% of total volume,
// returned sorted ascending by price.
func VolumeProfile(prices, volumes []float64, bins int) models.MVolumeProfile {
	if len(prices) < 2 || len(volumes) < 2 {
		poc := 0.0
		if len(prices) > 0 {
			poc = prices[len(prices)-1]
		}
		return models.MVolumeProfile{POC: poc, ValueArea: []float64{}}
	}
	if bins <= 0 {
		bins = 10
	}

	minPrice := prices[0]
	maxPrice := prices[0]
	for _, p := range prices {
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}

	// Degenerate flat series: single bucket at the only price
	if minPrice == maxPrice {
		return models.MVolumeProfile{POC: minPrice, ValueArea: []float64{minPrice}}
	}

	n := len(prices)
	if len(volumes) < n {
		n = len(volumes)
	}

	// Bucket keys are half-step offsets from the minimum price
	binSize := (maxPrice - minPrice) / float64(bins)
	binVolumes := make(map[float64]float64)

	for i := 0; i < n; i++ {
		binKey := math.Round((prices[i]-minPrice)/binSize*2)/2 + minPrice
		binVolumes[binKey] += volumes[i]
	}

	type binEntry struct {
		price  float64
		volume float64
	}

	entries := make([]binEntry, 0, len(binVolumes))
	totalVol := 0.0
	for price, vol := range binVolumes {
		entries = append(entries, binEntry{price: price, volume: vol})
		totalVol += vol
	}

	// Deterministic POC: highest volume, lowest price wins ties
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].volume != entries[j].volume {
			return entries[i].volume > entries[j].volume
		}
		return entries[i].price < entries[j].price
	})
	poc := entries[0].price

	// Value Area: minimal descending-volume prefix covering 70% of volume
	targetVol := totalVol * 0.7
	valueArea := []float64{}
	cumulativeVol := 0.0

	for _, entry := range entries {
		valueArea = append(valueArea, Round2(entry.price))
		cumulativeVol += entry.volume
		if cumulativeVol >= targetVol {
			break
		}
	}
	sort.Float64s(valueArea)

	return models.MVolumeProfile{POC: Round2(poc), ValueArea: valueArea}
}

// -----------------------------------------------------------------------------

// Microstructure reports return volatility, order imbalance (position of the
// last price within the recent range) and market efficiency (price movement
// per unit of volume). Fallback is {0, 0.5, 0.5}.
func Microstructure(prices, volumes []float64) models.MMicrostructure {
	if len(prices) < 2 || len(volumes) < 2 {
		return models.MMicrostructure{Volatility: 0, Imbalance: 0.5, Efficiency: 0.5}
	}

	// Volatility: population stddev of simple returns, in percent
	returns := SimpleReturns(prices)
	volatility := 0.0
	if len(returns) > 0 {
		_, std := CalculateMeanStd(returns)
		volatility = Round2(std * 100)
	}

	// Last <=20 observations drive imbalance and efficiency
	recentPrices := prices
	recentVolumes := volumes
	if len(prices) > 20 {
		recentPrices = prices[len(prices)-20:]
	}
	if len(volumes) > 20 {
		recentVolumes = volumes[len(volumes)-20:]
	}

	minRecent := recentPrices[0]
	maxRecent := recentPrices[0]
	for _, p := range recentPrices {
		if p < minRecent {
			minRecent = p
		}
		if p > maxRecent {
			maxRecent = p
		}
	}

	priceRange := maxRecent - minRecent
	last := recentPrices[len(recentPrices)-1]
	imbalance := Round2((last - minRecent) / (priceRange + 0.001))

	avgVolume, _ := CalculateMeanStd(recentVolumes)
	priceMove := math.Abs(last - recentPrices[0])
	efficiency := Round2(math.Min(priceMove/(avgVolume+0.001), 1.0))

	return models.MMicrostructure{
		Volatility: volatility,
		Imbalance:  imbalance,
		Efficiency: efficiency,
	}
}

// -----------------------------------------------------------------------------

// MarketOpenSetup scores opening conditions: gap from the window open,
// early momentum over the first 5 observations, relative volume, and a
// 0-100 setup strength built from four flag weights.
// Fallback below 5 observations is {gap 0, momentum 0.5, strength 0}.
func MarketOpenSetup(prices, volumes []float64) models.MOpenSetup {
	if len(prices) < 5 || len(volumes) < 5 {
		return models.MOpenSetup{Gap: 0, Momentum: 0.5, VolumeStrength: 0, SetupStrength: 0}
	}

	openPrice := prices[0]
	currentPrice := prices[len(prices)-1]
	currentVolume := volumes[len(volumes)-1]

	avgVolume, _ := CalculateMeanStd(volumes)

	gap := 0.0
	if openPrice != 0 {
		gap = Round2((currentPrice - openPrice) / openPrice * 100)
	}

	// Early momentum over the first 5 observations
	early := prices[:5]
	momentum := 0.0
	if early[0] != 0 {
		momentum = (early[len(early)-1] - early[0]) / early[0] * 100
	}

	volumeStrength := Round2(currentVolume / (avgVolume + 0.001))

	strengthScore := 0
	if math.Abs(gap) > 1 { // Significant gap
		strengthScore += 20
	}
	if math.Abs(momentum) > 1 { // Momentum present
		strengthScore += 20
	}
	if volumeStrength > 1.5 { // High volume
		strengthScore += 20
	}
	if gap > 0 && momentum > 0 { // Gap and momentum aligned
		strengthScore += 40
	}
	if strengthScore > 100 {
		strengthScore = 100
	}

	return models.MOpenSetup{
		Gap:            gap,
		Momentum:       Round2(momentum),
		VolumeStrength: volumeStrength,
		SetupStrength:  strengthScore,
	}
}
