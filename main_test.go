package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"esarif/commontypes"
	"esarif/modules/rates"
	"esarif/modules/swap"
)

func TestHandleQuoteTransfer(t *testing.T) {
	conv := swap.NewConverter(rates.NewTable())
	handler := handleQuote(conv)

	req := httptest.NewRequest(http.MethodGet, "/quote?mode=transfer&from=MPESA&to=USDT-TRC20&amount=100", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var quote commontypes.QuoteResponse
	if err := json.NewDecoder(rec.Body).Decode(&quote); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if quote.ServiceFee != "1.00" {
		t.Errorf("service fee = %s, want 1.00", quote.ServiceFee)
	}
	if quote.NetAmount != "99.00" {
		t.Errorf("net amount = %s, want 99.00", quote.NetAmount)
	}
	if quote.EstimatedReceive != "98.99" {
		t.Errorf("estimated receive = %s, want 98.99", quote.EstimatedReceive)
	}
}

func TestHandleQuoteBuy(t *testing.T) {
	conv := swap.NewConverter(rates.NewTable())
	handler := handleQuote(conv)

	req := httptest.NewRequest(http.MethodGet, "/quote?mode=buy&from=EVC&to=USDC-BEP20&amount=50", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var quote commontypes.QuoteResponse
	if err := json.NewDecoder(rec.Body).Decode(&quote); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if quote.ServiceFee != "0.00" {
		t.Errorf("buy leg fee = %s, want 0.00", quote.ServiceFee)
	}
	if quote.EstimatedReceive != "50.01" {
		t.Errorf("estimated receive = %s, want 50.01", quote.EstimatedReceive)
	}
}

func TestHandleQuoteErrors(t *testing.T) {
	conv := swap.NewConverter(rates.NewTable())
	handler := handleQuote(conv)

	cases := []struct {
		name   string
		target string
		status int
	}{
		{"unknown wallet", "/quote?mode=transfer&from=DOGE&to=MPESA&amount=10", http.StatusNotFound},
		{"bad amount", "/quote?mode=transfer&from=EVC&to=ZAAD&amount=abc", http.StatusBadRequest},
		{"bad mode", "/quote?mode=stake&from=EVC&to=ZAAD&amount=10", http.StatusBadRequest},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != tc.status {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.status, rec.Code)
		}
		var errResp commontypes.ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
			t.Errorf("%s: failed to decode error body: %v", tc.name, err)
		} else if errResp.Error == "" {
			t.Errorf("%s: expected a non-empty error message", tc.name)
		}
	}
}

func TestHandleWallets(t *testing.T) {
	handler := handleWallets(rates.NewTable())

	req := httptest.NewRequest(http.MethodGet, "/wallets", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var wallets []commontypes.WalletInfo
	if err := json.NewDecoder(rec.Body).Decode(&wallets); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(wallets) == 0 {
		t.Fatal("expected a non-empty wallet list")
	}
	for _, w := range wallets {
		if (w.Rate == "") == (w.RateUSD == "") {
			t.Errorf("%s: expected exactly one rate field, got rate=%q rateUSD=%q", w.ID, w.Rate, w.RateUSD)
		}
	}
}

func TestHandleMethods(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/methods?mode=transfer", nil)
	rec := httptest.NewRecorder()
	handleMethods(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var methods []commontypes.MethodInfo
	if err := json.NewDecoder(rec.Body).Decode(&methods); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, m := range methods {
		if m.Category != string(swap.CategoryMobileMoney) {
			t.Errorf("transfer mode offered %s method %s", m.Category, m.ID)
		}
	}

	rec = httptest.NewRecorder()
	handleMethods(rec, httptest.NewRequest(http.MethodGet, "/methods?mode=nope", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad mode, got %d", rec.Code)
	}
}
