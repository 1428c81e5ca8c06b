package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldError         = "error"
	FieldMessageID     = "message_id"
	FieldFrom          = "from"
	FieldText          = "text"
	FieldIntent        = "intent"
	FieldDelay         = "delay"
	FieldTransactionID = "transaction_id"
	FieldKind          = "kind"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldTerm          = "term"
	FieldMonth         = "month"
	FieldYear          = "year"
	FieldBackend       = "backend"
	FieldQueue         = "queue"
	FieldExchange      = "exchange"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentBot     = "bot"
	ComponentLedger  = "ledger"
	ComponentConsole = "console"
	ComponentAMQP    = "amqp"
	ComponentConfig  = "config"
)
