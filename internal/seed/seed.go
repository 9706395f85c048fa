package seed

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wallet-tracker-api/internal/models"
)

// referenceCurrencies covers the money unit plus a starter set of crypto
// assets. Codes follow the provider's id scheme.
var referenceCurrencies = []models.Currency{
	{Code: "usd", Name: "US Dollar"},
	{Code: "bitcoin", Name: "Bitcoin"},
	{Code: "ethereum", Name: "Ethereum"},
	{Code: "cardano", Name: "Cardano"},
	{Code: "solana", Name: "Solana"},
	{Code: "dogecoin", Name: "Dogecoin"},
}

// Currencies inserts the reference currency set when missing. Safe to run on
// every startup.
func Currencies(db *gorm.DB) error {
	for _, currency := range referenceCurrencies {
		var existing models.Currency
		err := db.Where(models.Currency{Code: currency.Code}).
			Attrs(models.Currency{Name: currency.Name}).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}

	logrus.WithField("count", len(referenceCurrencies)).Debug("reference currencies seeded")
	return nil
}
