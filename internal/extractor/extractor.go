package extractor

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Fields holds every value recognized in one SMS body. All fields are
// independently optional except Fees, which resolves to zero when the body
// mentions no fee.
type Fields struct {
	TransactionID *string
	Amount        *decimal.Decimal
	Date          *time.Time
	SenderName    *string
	ReceiverName  *string
	PhoneNumber   *string
	AgentName     *string
	AgentCode     *string
	Fees          decimal.Decimal
	BalanceAfter  *decimal.Decimal
}

// dateLayout matches the timestamp format used in MoMo notification SMS
const dateLayout = "2006-01-02 15:04:05"

var (
	// Amount: digits with optional fraction, immediately before the currency token
	amountPattern = regexp.MustCompile(`(\d+\.?\d*) RWF`)

	// Date: "Date: 2024-01-15 10:30:00"
	datePattern = regexp.MustCompile(`Date: (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)

	// Transaction ID: "Transaction ID: ABC123"
	transactionIDPattern = regexp.MustCompile(`Transaction ID: (\w+)`)

	// Phone: standalone run of exactly ten digits
	phonePattern = regexp.MustCompile(`\b\d{10}\b`)

	// Names: "from"/"to" followed by exactly two word tokens
	senderPattern   = regexp.MustCompile(`(?i)from (\w+\s+\w+)`)
	receiverPattern = regexp.MustCompile(`(?i)to (\w+\s+\w+)`)

	// Agent: "agent Jane Doe" and "Agent Code: AG001"
	agentNamePattern = regexp.MustCompile(`(?i)agent (\w+\s+\w+)`)
	agentCodePattern = regexp.MustCompile(`(?i)Agent Code: (\w+)`)

	// Fee and balance carry their own labeled amounts
	feePattern     = regexp.MustCompile(`(?i)Fee: (\d+\.?\d*) RWF`)
	balancePattern = regexp.MustCompile(`(?i)Balance: (\d+\.?\d*) RWF`)
)

// Extract runs every field rule against the body and returns the resolved
// fields. Rules are independent of each other; within a rule the first match
// wins. No cross-field disambiguation happens here, so a labeled balance
// amount can also satisfy the plain amount rule on complex bodies.
func Extract(body string) Fields {
	f := Fields{Fees: decimal.Zero}

	f.Amount = matchDecimal(amountPattern, body)
	f.Date = matchDate(body)
	f.TransactionID = matchGroup(transactionIDPattern, body)
	f.PhoneNumber = matchWhole(phonePattern, body)
	f.SenderName = matchGroup(senderPattern, body)
	f.ReceiverName = matchGroup(receiverPattern, body)
	f.AgentName = matchGroup(agentNamePattern, body)
	f.AgentCode = matchGroup(agentCodePattern, body)
	if fee := matchDecimal(feePattern, body); fee != nil {
		f.Fees = *fee
	}
	f.BalanceAfter = matchDecimal(balancePattern, body)

	return f
}

// matchGroup returns the first capture group of the first match, or nil
func matchGroup(re *regexp.Regexp, body string) *string {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	return &m[1]
}

// matchWhole returns the whole first match, or nil
func matchWhole(re *regexp.Regexp, body string) *string {
	m := re.FindString(body)
	if m == "" {
		return nil
	}
	return &m
}

func matchDecimal(re *regexp.Regexp, body string) *decimal.Decimal {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	d, err := decimal.NewFromString(m[1])
	if err != nil {
		return nil
	}
	return &d
}

// matchDate resolves the date field. A token that matches the shape but is
// not a real calendar date (month 13, hour 25) resolves to absent, not to an
// error.
func matchDate(body string) *time.Time {
	m := datePattern.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return nil
	}
	return &t
}
