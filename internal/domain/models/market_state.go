package models

// The routine trades a single fixed instrument and timeframe; the webhook
// record is stamped with these regardless of what the sender claims.
const (
	StateSymbol    = "XAUUSD"
	StateTimeframe = "M5"
)

// Recognized market regimes; anything else coerces to UNKNOWN.
const (
	RegimeRange   = "RANGE"
	RegimeTrend   = "TREND"
	RegimeUnknown = "UNKNOWN"
)

// Recognized volatility tiers; anything else coerces to NORMAL.
const (
	VolatilityLow    = "LOW"
	VolatilityNormal = "NORMAL"
	VolatilityHigh   = "HIGH"
)

// MarketState is the single persisted externally-reported record, overwritten
// wholesale on every accepted webhook write.
type MarketState struct {
	Symbol     string   `json:"symbol"`
	Timeframe  string   `json:"timeframe"`
	State      string   `json:"state"`
	Volatility string   `json:"volatility"`
	Score      *float64 `json:"score,omitempty"`
	Note       *string  `json:"note,omitempty"`
	Timestamp  int64    `json:"timestamp"` // epoch milliseconds
}

// StateSubmission is the webhook write body. Score and Note are untyped on
// purpose: values of the wrong JSON type are silently omitted, not rejected.
type StateSubmission struct {
	Secret     string      `json:"secret"`
	State      string      `json:"state" default:"UNKNOWN"`
	Volatility string      `json:"volatility" default:"NORMAL"`
	Score      interface{} `json:"score"`
	Note       interface{} `json:"note"`
	Timestamp  int64       `json:"timestamp" validate:"gte=0"`
}

// StateReadResponse is the market-state GET body. Value is null when the
// record has never been written.
type StateReadResponse struct {
	OK    bool         `json:"ok"`
	Value *MarketState `json:"value"`
}

// StateWriteResponse is the market-state POST body on success.
type StateWriteResponse struct {
	OK      bool        `json:"ok"`
	Saved   int64       `json:"saved"`
	Payload MarketState `json:"payload"`
}
