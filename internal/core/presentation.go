package core

// Presentation metadata for the enums. The core computations never read
// these; they exist for the display layer only.

// Icon returns the symbol name for the category.
func (c ExpenseCategory) Icon() string {
	switch c {
	case CategoryFood:
		return "fork.knife"
	case CategoryTransportation:
		return "car.fill"
	case CategoryShopping:
		return "bag.fill"
	case CategoryEntertainment:
		return "tv.fill"
	case CategoryBills:
		return "doc.text.fill"
	case CategoryHealthcare:
		return "cross.fill"
	case CategoryEducation:
		return "book.fill"
	case CategoryTravel:
		return "airplane"
	case CategoryLifestyle:
		return "heart.fill"
	case CategoryInvestment:
		return "chart.line.uptrend.xyaxis"
	default:
		return "ellipsis.circle.fill"
	}
}

// Color returns the hex display color for the category.
func (c ExpenseCategory) Color() string {
	switch c {
	case CategoryFood:
		return "#FF6B6B"
	case CategoryTransportation:
		return "#4ECDC4"
	case CategoryShopping:
		return "#45B7D1"
	case CategoryEntertainment:
		return "#96CEB4"
	case CategoryBills:
		return "#FFEAA7"
	case CategoryHealthcare:
		return "#DDA0DD"
	case CategoryEducation:
		return "#98D8C8"
	case CategoryTravel:
		return "#F7DC6F"
	case CategoryLifestyle:
		return "#BB8FCE"
	case CategoryInvestment:
		return "#85C1E9"
	default:
		return "#D5DBDB"
	}
}

func (t InvestmentType) Icon() string {
	switch t {
	case InvestmentStocks:
		return "chart.line.uptrend.xyaxis"
	case InvestmentBonds:
		return "doc.text.fill"
	case InvestmentCrypto:
		return "bitcoinsign.circle.fill"
	case InvestmentETF:
		return "chart.bar.fill"
	case InvestmentMutualFund:
		return "building.columns.fill"
	case InvestmentREIT:
		return "house.fill"
	case InvestmentCommodities:
		return "cube.fill"
	default:
		return "ellipsis.circle.fill"
	}
}

func (t InvestmentType) Color() string {
	switch t {
	case InvestmentStocks:
		return "#2ECC71"
	case InvestmentBonds:
		return "#3498DB"
	case InvestmentCrypto:
		return "#F39C12"
	case InvestmentETF:
		return "#9B59B6"
	case InvestmentMutualFund:
		return "#1ABC9C"
	case InvestmentREIT:
		return "#E74C3C"
	case InvestmentCommodities:
		return "#34495E"
	default:
		return "#95A5A6"
	}
}

func (c SavingsCategory) Icon() string {
	switch c {
	case SavingsEmergency:
		return "shield.fill"
	case SavingsVacation:
		return "airplane"
	case SavingsHouse:
		return "house.fill"
	case SavingsCar:
		return "car.fill"
	case SavingsEducation:
		return "book.fill"
	case SavingsRetirement:
		return "person.fill"
	case SavingsWedding:
		return "heart.fill"
	case SavingsGadget:
		return "laptopcomputer"
	case SavingsHealth:
		return "cross.fill"
	case SavingsBusiness:
		return "building.2.fill"
	default:
		return "star.fill"
	}
}

func (c SavingsCategory) Color() string {
	switch c {
	case SavingsEmergency:
		return "#FF4444"
	case SavingsVacation:
		return "#4A90E2"
	case SavingsHouse:
		return "#8CC152"
	case SavingsCar:
		return "#FF8800"
	case SavingsEducation:
		return "#9B59B6"
	case SavingsRetirement:
		return "#34495E"
	case SavingsWedding:
		return "#E91E63"
	case SavingsGadget:
		return "#00BCD4"
	case SavingsHealth:
		return "#FF5722"
	case SavingsBusiness:
		return "#607D8B"
	default:
		return "#95A5A6"
	}
}

func (p GoalPriority) Color() string {
	switch p {
	case PriorityLow:
		return "#95A5A6"
	case PriorityMedium:
		return "#3498DB"
	case PriorityHigh:
		return "#F39C12"
	default:
		return "#E74C3C"
	}
}

func (c HealthCategory) Color() string {
	switch c {
	case HealthExcellent:
		return "#00AA00"
	case HealthGood:
		return "#88CC00"
	case HealthFair:
		return "#FFDD00"
	case HealthPoor:
		return "#FF8800"
	default:
		return "#FF4444"
	}
}
