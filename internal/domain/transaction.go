package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the only currency that appears in MoMo notification SMS
const Currency = "RWF"

// Category represents the classification of a transaction based on SMS content
type Category string

// Transaction categories
const (
	IncomingMoney   Category = "INCOMING_MONEY"
	PaymentToCode   Category = "PAYMENT_TO_CODE"
	TransferMobile  Category = "TRANSFER_MOBILE"
	WithdrawalAgent Category = "WITHDRAWAL_AGENT"
	BankTransfer    Category = "BANK_TRANSFER"
	AirtimePurchase Category = "AIRTIME_PURCHASE"
	UtilityPayment  Category = "UTILITY_PAYMENT"
	ThirdParty      Category = "THIRD_PARTY"
	FeeCharge       Category = "FEE_CHARGE"
	BalanceInquiry  Category = "BALANCE_INQUIRY"
	Unknown         Category = "UNKNOWN"
)

var validCategories = map[Category]bool{
	IncomingMoney:   true,
	PaymentToCode:   true,
	TransferMobile:  true,
	WithdrawalAgent: true,
	BankTransfer:    true,
	AirtimePurchase: true,
	UtilityPayment:  true,
	ThirdParty:      true,
	FeeCharge:       true,
	BalanceInquiry:  true,
	Unknown:         true,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	return validCategories[c]
}

// TransactionRecord represents one accepted mobile-money transaction parsed
// from an SMS body. Category, TransactionDate and RawBody are always set on
// an accepted record; every other field may be absent (nil), except Fees
// which defaults to zero when the SMS mentions no fee.
type TransactionRecord struct {
	TransactionID   *string
	Category        Category
	Amount          *decimal.Decimal
	Currency        string
	SenderName      *string
	ReceiverName    *string
	PhoneNumber     *string
	AgentName       *string
	AgentCode       *string
	TransactionDate time.Time
	Fees            decimal.Decimal
	BalanceAfter    *decimal.Decimal
	RawBody         string
}
