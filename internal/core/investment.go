package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType classifies a holding.
type InvestmentType string

const (
	InvestmentStocks      InvestmentType = "Stocks"
	InvestmentBonds       InvestmentType = "Bonds"
	InvestmentCrypto      InvestmentType = "Cryptocurrency"
	InvestmentETF         InvestmentType = "ETF"
	InvestmentMutualFund  InvestmentType = "Mutual Fund"
	InvestmentREIT        InvestmentType = "REIT"
	InvestmentCommodities InvestmentType = "Commodities"
	InvestmentOther       InvestmentType = "Other"
)

// InvestmentTypes returns every type in display order.
func InvestmentTypes() []InvestmentType {
	return []InvestmentType{
		InvestmentStocks, InvestmentBonds, InvestmentCrypto, InvestmentETF,
		InvestmentMutualFund, InvestmentREIT, InvestmentCommodities,
		InvestmentOther,
	}
}

// Investment is a single holding priced at shares times current price.
type Investment struct {
	ID            uuid.UUID       `json:"id"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Shares        decimal.Decimal `json:"shares"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	Type          InvestmentType  `json:"type"`
	Notes         string          `json:"notes,omitempty"`
}

// NewInvestment builds an investment with a fresh id.
func NewInvestment(symbol, name string, shares, purchasePrice, currentPrice decimal.Decimal, purchaseDate time.Time, typ InvestmentType) Investment {
	return Investment{
		ID:            uuid.New(),
		Symbol:        symbol,
		Name:          name,
		Shares:        shares,
		PurchasePrice: purchasePrice,
		CurrentPrice:  currentPrice,
		PurchaseDate:  purchaseDate,
		Type:          typ,
	}
}

func (i Investment) Validate() error {
	if strings.TrimSpace(i.Symbol) == "" {
		return ErrEmptyTitle
	}
	if i.Shares.IsNegative() || i.PurchasePrice.IsNegative() || i.CurrentPrice.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// TotalValue is shares times current price.
func (i Investment) TotalValue() decimal.Decimal {
	return i.Shares.Mul(i.CurrentPrice)
}

// TotalCost is shares times purchase price.
func (i Investment) TotalCost() decimal.Decimal {
	return i.Shares.Mul(i.PurchasePrice)
}

// GainLoss is the unrealized profit or loss.
func (i Investment) GainLoss() decimal.Decimal {
	return i.TotalValue().Sub(i.TotalCost())
}

// GainLossPercent is the gain relative to cost, in percent. Zero when the
// holding has no cost basis.
func (i Investment) GainLossPercent() float64 {
	cost := i.TotalCost()
	if !cost.IsPositive() {
		return 0
	}
	return i.GainLoss().Div(cost).InexactFloat64() * 100
}

func (i Investment) IsProfit() bool {
	return !i.GainLoss().IsNegative()
}

// Portfolio is a read-only view over the investment collection. It is
// derived on demand so it can never go stale.
type Portfolio struct {
	Investments []Investment `json:"investments"`
}

func (p Portfolio) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, inv := range p.Investments {
		total = total.Add(inv.TotalValue())
	}
	return total
}

func (p Portfolio) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, inv := range p.Investments {
		total = total.Add(inv.TotalCost())
	}
	return total
}

func (p Portfolio) TotalGainLoss() decimal.Decimal {
	return p.TotalValue().Sub(p.TotalCost())
}

func (p Portfolio) TotalGainLossPercent() float64 {
	cost := p.TotalCost()
	if !cost.IsPositive() {
		return 0
	}
	return p.TotalGainLoss().Div(cost).InexactFloat64() * 100
}

// DistinctTypes counts the investment types present in the portfolio.
func (p Portfolio) DistinctTypes() int {
	seen := make(map[InvestmentType]struct{}, len(p.Investments))
	for _, inv := range p.Investments {
		seen[inv.Type] = struct{}{}
	}
	return len(seen)
}
