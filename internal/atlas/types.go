package atlas

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserStatus enumerates the lifecycle states of a back office user account.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserPending  UserStatus = "pending"
	UserBlocked  UserStatus = "blocked"
)

func (s UserStatus) String() string { return string(s) }

// TransactionType enumerates the supported money movement kinds.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionTransfer   TransactionType = "transfer"
	TransactionPayment    TransactionType = "payment"
)

func (t TransactionType) String() string { return string(t) }

// TransactionStatus enumerates processing states.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionReversed  TransactionStatus = "reversed"
)

func (s TransactionStatus) String() string { return string(s) }

// ATMStatus enumerates operational states of a machine.
type ATMStatus string

const (
	ATMOnline      ATMStatus = "online"
	ATMOffline     ATMStatus = "offline"
	ATMMaintenance ATMStatus = "maintenance"
)

func (s ATMStatus) String() string { return string(s) }

// User is a bank customer account as the admin API returns it.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Status       UserStatus `json:"status"`
	RegisteredAt time.Time  `json:"registeredAt"`
}

// Transaction is a single money movement between accounts.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	Reference string            `json:"reference"`
	Account   string            `json:"account"`
	Type      TransactionType   `json:"type"`
	Amount    decimal.Decimal   `json:"amount"`
	Currency  string            `json:"currency"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Currency is an exchange-rate table entry.
type Currency struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ATM is a physical machine registered with the network.
type ATM struct {
	ID      uuid.UUID `json:"id"`
	Label   string    `json:"label"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	Status  ATMStatus `json:"status"`
}

var statusTitler = cases.Title(language.English)

// StatusLabel renders a lower-cased status literal as display text,
// e.g. "maintenance" -> "Maintenance".
func StatusLabel(status string) string {
	trimmed := strings.TrimSpace(status)
	if trimmed == "" {
		return ""
	}
	return statusTitler.String(trimmed)
}
