package services

// ServiceContainer holds all service facades needed by the transport layers.
type ServiceContainer struct {
	Lease    LeaseSvcFacade
	Payment  PaymentSvcFacade
	Reminder ReminderSvcFacade
	Stats    StatsSvcFacade
}
