package client

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// PayoutRequest - модель запроса на выплату для платёжного шлюза
type PayoutRequest struct {
	RequestID     string  `json:"request_id"`
	WalletAddress string  `json:"wallet_address"`
	Network       string  `json:"network"`
	Amount        float64 `json:"amount"`
}

// PayoutResponse - модель ответа платёжного шлюза
type PayoutResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

type PayoutGateway interface {
	SendPayout(ctx context.Context, payout PayoutRequest) (*PayoutResponse, error)
}

var (
	ErrGatewayUnavailable = errors.New("payout gateway unavailable")
	ErrPayoutRejected     = errors.New("payout rejected by gateway")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
