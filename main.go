package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"esarif/commontypes"
	"esarif/modules/rates"
	"esarif/modules/swap"

	xrate "golang.org/x/time/rate"
)

const (
	httpPort     = ":8080"
	ratesFileEnv = "ESARIF_RATES"
)

// One shared limiter for the whole receiver; quoting is cheap but the
// endpoint is unauthenticated.
var quoteLimiter = xrate.NewLimiter(xrate.Every(time.Second/50), 100)

func main() {
	table := loadTable()
	conv := swap.NewConverter(table)

	mux := http.NewServeMux()
	mux.HandleFunc("/quote", handleQuote(conv))
	mux.HandleFunc("/wallets", handleWallets(table))
	mux.HandleFunc("/methods", handleMethods)

	server := &http.Server{
		Addr:         httpPort,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("e-Sarif quote receiver listening on port %s", httpPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", httpPort, err)
	}
}

func loadTable() *rates.Table {
	path := os.Getenv(ratesFileEnv)
	if path == "" {
		return rates.NewTable()
	}

	table, err := rates.NewTableFromFile(path)
	if err != nil {
		log.Fatalf("Failed to load rates from %s: %v", path, err)
	}
	log.Printf("Loaded rate overrides from %s", path)
	return table
}

func handleQuote(conv *swap.Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !quoteLimiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		q := r.URL.Query()
		mode, err := swap.ParseMode(q.Get("mode"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		quote, err := swap.BuildQuote(conv, mode, q.Get("from"), q.Get("to"), q.Get("amount"))
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, rates.ErrNotFound) {
				status = http.StatusNotFound
			}
			writeError(w, status, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}

func handleWallets(table *rates.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := table.Entries()
		wallets := make([]commontypes.WalletInfo, 0, len(entries))
		for _, e := range entries {
			info := commontypes.WalletInfo{
				ID:     e.ID,
				Symbol: e.Symbol,
				Name:   e.Name,
				Kind:   string(e.Kind),
			}
			switch rate := e.Pricing.(type) {
			case rates.DirectRate:
				info.Rate = rate.PerUSD.String()
			case rates.UsdRate:
				info.RateUSD = rate.USD.String()
			}
			wallets = append(wallets, info)
		}
		writeJSON(w, http.StatusOK, wallets)
	}
}

func handleMethods(w http.ResponseWriter, r *http.Request) {
	mode, err := swap.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	methods := swap.MethodsFor(mode)
	infos := make([]commontypes.MethodInfo, 0, len(methods))
	for _, m := range methods {
		infos = append(infos, commontypes.MethodInfo{
			ID:       m.ID,
			Label:    m.Label,
			Category: string(m.Category),
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, commontypes.ErrorResponse{Error: msg})
}
