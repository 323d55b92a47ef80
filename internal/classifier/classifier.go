package classifier

import (
	"strings"

	"github.com/gashumba/momo-ledger/internal/domain"
)

// Rule pairs a category with the content check that assigns it
type Rule struct {
	Category domain.Category
	Match    func(body string) bool
}

// Rules is the classification table in priority order. Evaluation is
// top-to-bottom and the first hit short-circuits, so when several keywords
// appear in one body the earlier rule wins.
var Rules = []Rule{
	{domain.IncomingMoney, contains("received")},
	{domain.PaymentToCode, contains("payment to code holder")},
	{domain.TransferMobile, anyOf(contains("sent"), allOf(contains("transferred to"), contains("mobile")))},
	{domain.WithdrawalAgent, contains("withdrawn from")},
	{domain.BankTransfer, contains("bank transfer")},
	{domain.AirtimePurchase, anyOf(contains("airtime"), contains("data"), contains("bundle"))},
	{domain.UtilityPayment, anyOf(contains("cash power"), contains("utility"))},
	{domain.ThirdParty, contains("third party")},
	{domain.FeeCharge, allOf(contains("fee"), contains("service"))},
	{domain.BalanceInquiry, allOf(contains("balance"), contains("inquiry"))},
}

// Classify returns the category for an SMS body, or UNKNOWN when no rule
// matches. The body is lower-cased once before evaluation; matching is plain
// substring containment.
func Classify(body string) domain.Category {
	lower := strings.ToLower(body)
	for _, rule := range Rules {
		if rule.Match(lower) {
			return rule.Category
		}
	}
	return domain.Unknown
}

func contains(keyword string) func(string) bool {
	return func(body string) bool {
		return strings.Contains(body, keyword)
	}
}

func anyOf(checks ...func(string) bool) func(string) bool {
	return func(body string) bool {
		for _, check := range checks {
			if check(body) {
				return true
			}
		}
		return false
	}
}

func allOf(checks ...func(string) bool) func(string) bool {
	return func(body string) bool {
		for _, check := range checks {
			if !check(body) {
				return false
			}
		}
		return true
	}
}
