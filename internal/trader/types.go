package trader

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Action is the side of an executed trade.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Actions lists every action in draw order.
var Actions = []Action{ActionBuy, ActionSell}

// TradeRecord is an executed trade. It is never modified after creation.
type TradeRecord struct {
	ID     uuid.UUID
	Time   time.Time
	Symbol string
	Action Action
	Price  decimal.Decimal
	Amount decimal.Decimal
	Total  decimal.Decimal
}

// NewTradeRecord builds a record with Total = price * amount.
func NewTradeRecord(now time.Time, symbol string, action Action, price, amount decimal.Decimal) TradeRecord {
	return TradeRecord{
		ID:     uuid.New(),
		Time:   now,
		Symbol: symbol,
		Action: action,
		Price:  price,
		Amount: amount,
		Total:  price.Mul(amount),
	}
}
