package events

// Ledger event types. Every committed lifecycle or payment mutation emits one.
const (
	SubscriptionCreated   = "SUBSCRIPTION_CREATED"
	SubscriptionUpdated   = "SUBSCRIPTION_UPDATED"
	SubscriptionRenewed   = "SUBSCRIPTION_RENEWED"
	SubscriptionCancelled = "SUBSCRIPTION_CANCELLED"
	SubscriptionExpired   = "SUBSCRIPTION_EXPIRED"
	SubscriptionDeleted   = "SUBSCRIPTION_DELETED"
	PaymentRecorded       = "PAYMENT_RECORDED"
	PaymentUpdated        = "PAYMENT_UPDATED"
	PaymentDeleted        = "PAYMENT_DELETED"
	InvoiceCreated        = "INVOICE_CREATED"
	InvoiceUpdated        = "INVOICE_UPDATED"
	InvoiceDeleted        = "INVOICE_DELETED"
)
