package api

import "github.com/shopspring/decimal"

func init() {
	// Money fields are rendered as JSON numbers rather than strings.
	decimal.MarshalJSONWithoutQuotes = true
}
