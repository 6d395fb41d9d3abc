// Package yahoo resolves the most recent daily closing price of a ticker
// symbol from the Yahoo Finance chart endpoint.
package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// perCallTimeout bounds a single quote fetch so that one hung symbol cannot
// block the whole dashboard render.
const perCallTimeout = 10 * time.Second

// Client fetches quotes. The zero value is not usable, use New.
type Client struct {
	base   string
	client *http.Client
}

// New returns a Client with a daily-expiring on-disk response cache.
func New() *Client {
	return &Client{base: defaultBaseURL, client: newDailyCachingClient()}
}

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {
	                    "currency": "USD",
	                    "symbol": "AAPL",
	                    "regularMarketPrice": 196.45,
	                    ...
	                },
	                "indicators": { "quote": [ { "close": [ ... ] } ] }
	            }
	        ],
	        "error": null
	    }
	}
*/

// Latest returns the most recent daily closing price for the given symbol.
//
// Unknown symbols, network errors and empty quote series are all reported as
// an error; the caller decides how to degrade.
func (c *Client) Latest(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if symbol == "" {
		return decimal.Zero, fmt.Errorf("empty symbol")
	}
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", c.base, url.PathEscape(symbol))

	var jobj any
	if err := jwget(ctx, c.client, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing quote for %q: %q %w", symbol, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or
	// a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("error parsing quote for %q: %q not a float: %v", symbol, path, jval)
	}
	if val == 0 {
		return decimal.Zero, fmt.Errorf("empty quote series for %q", symbol)
	}
	return decimal.NewFromFloat(val), nil
}
