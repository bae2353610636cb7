package service

// FlowRecorder receives counters from the authentication flows.
type FlowRecorder interface {
	// RecordAuthFlow counts one flow run; a nil err is a success.
	RecordAuthFlow(flow, accountType string, err error)
	RecordTokenIssued(kind string)
	RecordEventPublishFailure(event string)
	// RecordEventReceived counts one consumed event; a nil err is a success.
	RecordEventReceived(event string, err error)
}
