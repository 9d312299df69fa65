// Package summary renders classified transaction analyses into
// human-readable notification messages. Formatting is pure: no I/O, no
// clock, no shared state.
package summary

import (
	"fmt"
	"strings"

	"github.com/gabapcia/tokenwatch/internal/txanalysis"

	"github.com/shopspring/decimal"
)

// defaultETHUSDRate is a fixed ETH to USD conversion used to annotate buy
// and sell amounts with a rough dollar figure. It is an approximation, not
// a live price feed; wiring a price oracle is intentionally out of scope.
var defaultETHUSDRate = decimal.NewFromInt(2500)

// amountPlaces is the rounding applied to token amounts for display.
const amountPlaces = 4

// Formatter renders TransactionAnalysis values into notification text.
type Formatter struct {
	ethUSDRate decimal.Decimal
}

type config struct {
	ethUSDRate decimal.Decimal
}

// Option customizes the formatter.
type Option func(*config)

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	cfg := config{
		ethUSDRate: defaultETHUSDRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Formatter{
		ethUSDRate: cfg.ethUSDRate,
	}
}

// WithETHUSDRate overrides the fixed ETH to USD conversion rate used for
// the approximate dollar annotations.
func WithETHUSDRate(rate decimal.Decimal) Option {
	return func(c *config) {
		c.ethUSDRate = rate
	}
}

// usdEstimate renders the approximate dollar value of an ether amount.
func (f *Formatter) usdEstimate(eth decimal.Decimal) string {
	return f.ethUSDRate.Mul(eth).StringFixed(2)
}

// statusLine renders the execution outcome and gas footer shared by all
// message categories.
func statusLine(a txanalysis.TransactionAnalysis) string {
	status := "✅ success"
	if a.Status == txanalysis.StatusFailed {
		status = "❌ failed"
	}
	return fmt.Sprintf("%s · gas used %d\ntx: %s", status, a.GasUsed, a.Hash)
}

// Format renders the given analysis as a notification message on behalf of
// the labeled wallet.
//
// The second return value is false when the analysis carries nothing worth
// notifying (any category other than swap, buy, or sell). That is not an
// error; it is the formatter's contract for non-actionable analyses.
func (f *Formatter) Format(a txanalysis.TransactionAnalysis, walletLabel string) (string, bool) {
	var b strings.Builder

	switch a.Type {
	case txanalysis.AnalysisSwap:
		fmt.Fprintf(&b, "🔄 Swap on %s\n", a.Swap.DEX)
		fmt.Fprintf(&b, "%s swapped %s %s for %s %s\n",
			walletLabel,
			a.Swap.TokenIn.ScaledValue.StringFixed(amountPlaces), a.Swap.TokenIn.TokenSymbol,
			a.Swap.TokenOut.ScaledValue.StringFixed(amountPlaces), a.Swap.TokenOut.TokenSymbol,
		)

	case txanalysis.AnalysisBuy:
		fmt.Fprintf(&b, "🟢 Buy on %s\n", a.Buy.DEX)
		fmt.Fprintf(&b, "%s bought %s %s for %s ETH (~$%s)\n",
			walletLabel,
			a.Buy.TokenBought.ScaledValue.StringFixed(amountPlaces), a.Buy.TokenBought.TokenSymbol,
			a.Buy.ETHSpent.String(),
			f.usdEstimate(a.Buy.ETHSpent),
		)

	case txanalysis.AnalysisSell:
		fmt.Fprintf(&b, "🔴 Sell on %s\n", a.Sell.DEX)
		fmt.Fprintf(&b, "%s sold %s %s for %s ETH (~$%s)\n",
			walletLabel,
			a.Sell.TokenSold.ScaledValue.StringFixed(amountPlaces), a.Sell.TokenSold.TokenSymbol,
			a.Sell.ETHReceived.String(),
			f.usdEstimate(a.Sell.ETHReceived),
		)

	default:
		return "", false
	}

	b.WriteString(statusLine(a))
	return b.String(), true
}
