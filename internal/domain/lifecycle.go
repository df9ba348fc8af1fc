package domain

// Event представляет событие жизненного цикла заявки
type Event string

const (
	EventSubmitEstimate Event = "SUBMIT_ESTIMATE"
	EventAccept         Event = "ACCEPT"
	EventReject         Event = "REJECT"
	EventStartWork      Event = "START_WORK"
	EventComplete       Event = "COMPLETE"
	EventFileReport     Event = "FILE_REPORT"
)

// transitions - единственный источник допустимых переходов.
// REJECTED терминален: заявка удаляется сразу после перехода.
var transitions = map[ServiceRequestStatus]map[Event]ServiceRequestStatus{
	StatusPending: {
		EventSubmitEstimate: StatusEstimated,
	},
	StatusEstimated: {
		EventAccept: StatusAccepted,
		EventReject: StatusRejected,
	},
	StatusAccepted: {
		EventStartWork: StatusInProgress,
	},
	StatusInProgress: {
		EventComplete: StatusCompleted,
	},
	StatusCompleted: {
		EventFileReport: StatusCompleted,
	},
}

// Next возвращает статус после события или ErrInvalidState
func (s ServiceRequestStatus) Next(e Event) (ServiceRequestStatus, error) {
	next, ok := transitions[s][e]
	if !ok {
		return s, InvalidStatef("event %s is not allowed in status %s", e, s)
	}
	return next, nil
}

// Modifiable сообщает, может ли клиент редактировать или удалять заявку в этом статусе
func (s ServiceRequestStatus) Modifiable() bool {
	return s == StatusPending || s == StatusRejected
}

// Apply выполняет переход заявки по событию с проверкой охранных условий
func (sr *ServiceRequest) Apply(e Event) error {
	next, err := sr.Status.Next(e)
	if err != nil {
		return err
	}

	switch e {
	case EventAccept, EventReject:
		if sr.Estimate == nil {
			return ErrEstimateNotFound
		}
	case EventSubmitEstimate:
		if sr.Estimate != nil {
			return ErrEstimateExists
		}
	case EventFileReport:
		if sr.Report != nil {
			return ErrReportExists
		}
	}

	sr.Status = next
	return nil
}
