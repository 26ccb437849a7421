package dto

import (
	"github.com/SscSPs/money_fx_service/internal/core/domain"
)

// ExposureItemRequest is one holding, income, expense or liability.
// Investments carry quantity and currentPrice, everything else an amount.
type ExposureItemRequest struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind" binding:"omitempty,oneof=investment income expense loan cash"`
	Currency     string  `json:"currency" binding:"required,currencycode"`
	Quantity     float64 `json:"quantity"`
	CurrentPrice float64 `json:"currentPrice"`
	Amount       float64 `json:"amount"`
}

// ExposureRequest defines the body of exposure and risk requests.
type ExposureRequest struct {
	Items             []ExposureItemRequest `json:"items" binding:"dive"`
	ReportingCurrency string                `json:"reportingCurrency" binding:"omitempty,currencycode"`
}

// ExposureResponse lists exposures sorted by share, largest first.
type ExposureResponse struct {
	Exposures []domain.CurrencyExposure `json:"exposures"`
}

// ToExposureItems converts request items to domain items.
func (r ExposureRequest) ToExposureItems() []domain.ExposureItem {
	items := make([]domain.ExposureItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.ExposureItem{
			ID:           it.ID,
			Kind:         domain.ItemKind(it.Kind),
			Currency:     it.Currency,
			Quantity:     it.Quantity,
			CurrentPrice: it.CurrentPrice,
			Amount:       it.Amount,
		}
	}
	return items
}
