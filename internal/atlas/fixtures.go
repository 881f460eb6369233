package atlas

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deterministic sample data for tests. IDs are derived from stable names so
// reruns produce identical collections.

func fixtureID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("atlasctl/"+name))
}

// SampleUsers returns a fixed set of user accounts covering every status.
func SampleUsers() []User {
	registered := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	statuses := []UserStatus{UserActive, UserInactive, UserPending, UserBlocked}

	users := make([]User, 0, 12)
	for i := 0; i < 12; i++ {
		users = append(users, User{
			ID:           fixtureID(fmt.Sprintf("user-%d", i)),
			Name:         fmt.Sprintf("User %02d", i),
			Email:        fmt.Sprintf("user%02d@atlasbank.example", i),
			Status:       statuses[i%len(statuses)],
			RegisteredAt: registered.AddDate(0, 0, i*3),
		})
	}
	return users
}

// SampleTransactions returns a fixed set of transactions spanning the amount
// ranges the toolbar filters on.
func SampleTransactions() []Transaction {
	created := time.Date(2026, 2, 1, 14, 30, 0, 0, time.UTC)
	types := []TransactionType{
		TransactionDeposit, TransactionWithdrawal, TransactionTransfer, TransactionPayment,
	}
	statuses := []TransactionStatus{
		TransactionCompleted, TransactionPending, TransactionFailed, TransactionReversed,
	}

	transactions := make([]Transaction, 0, 16)
	for i := 0; i < 16; i++ {
		transactions = append(transactions, Transaction{
			ID:        fixtureID(fmt.Sprintf("transaction-%d", i)),
			Reference: fmt.Sprintf("TXN-2026-%04d", i+1),
			Account:   fmt.Sprintf("ACC-%05d", 10000+i),
			Type:      types[i%len(types)],
			Amount:    decimal.NewFromInt(int64(i * 125)).Add(decimal.NewFromFloat(0.50)),
			Currency:  "USD",
			Status:    statuses[i%len(statuses)],
			CreatedAt: created.AddDate(0, 0, i),
		})
	}
	return transactions
}

// SampleCurrencies returns a small exchange-rate table.
func SampleCurrencies() []Currency {
	updated := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return []Currency{
		{Code: "USD", Name: "US Dollar", Rate: decimal.NewFromInt(1), UpdatedAt: updated},
		{Code: "EUR", Name: "Euro", Rate: decimal.RequireFromString("0.91"), UpdatedAt: updated},
		{Code: "GBP", Name: "Pound Sterling", Rate: decimal.RequireFromString("0.78"), UpdatedAt: updated},
		{Code: "JPY", Name: "Japanese Yen", Rate: decimal.RequireFromString("149.32"), UpdatedAt: updated},
		{Code: "CHF", Name: "Swiss Franc", Rate: decimal.RequireFromString("0.88"), UpdatedAt: updated},
	}
}

// SampleATMs returns a fixed set of machines covering every status.
func SampleATMs() []ATM {
	cities := []string{"Springfield", "Riverton", "Lakeside", "Hillcrest"}
	statuses := []ATMStatus{ATMOnline, ATMOffline, ATMMaintenance}

	atms := make([]ATM, 0, 8)
	for i := 0; i < 8; i++ {
		atms = append(atms, ATM{
			ID:      fixtureID(fmt.Sprintf("atm-%d", i)),
			Label:   fmt.Sprintf("ATM-%03d", i+1),
			Address: fmt.Sprintf("%d Main Street", 100+i*10),
			City:    cities[i%len(cities)],
			Status:  statuses[i%len(statuses)],
		})
	}
	return atms
}
