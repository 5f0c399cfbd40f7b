// Package operation
package operation

type DatabaseOperations struct {
	userOperation        UserOperationInterface
	aircraftOperation    AircraftOperationInterface
	flightOperation      FlightOperationInterface
	preferencesOperation PreferencesOperationInterface
	auditLogOperation    AuditLogOperationInterface
	feedbackOperation    FeedbackOperationInterface
}

func NewDatabaseOperations(
	userOperation UserOperationInterface,
	aircraftOperation AircraftOperationInterface,
	flightOperation FlightOperationInterface,
	preferencesOperation PreferencesOperationInterface,
	auditLogOperation AuditLogOperationInterface,
	feedbackOperation FeedbackOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		userOperation:        userOperation,
		aircraftOperation:    aircraftOperation,
		flightOperation:      flightOperation,
		preferencesOperation: preferencesOperation,
		auditLogOperation:    auditLogOperation,
		feedbackOperation:    feedbackOperation,
	}
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface {
	return db.userOperation
}

func (db *DatabaseOperations) AircraftOperation() AircraftOperationInterface {
	return db.aircraftOperation
}

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface {
	return db.flightOperation
}

func (db *DatabaseOperations) PreferencesOperation() PreferencesOperationInterface {
	return db.preferencesOperation
}

func (db *DatabaseOperations) AuditLogOperation() AuditLogOperationInterface {
	return db.auditLogOperation
}

func (db *DatabaseOperations) FeedbackOperation() FeedbackOperationInterface {
	return db.feedbackOperation
}
