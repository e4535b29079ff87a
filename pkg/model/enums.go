package model

import "fmt"

// City is the branch filter dimension. The board never owns it; it is passed
// in by the caller and persisted as a preference by the session store.
type City string

const (
	Astana         City = "astana"
	UstKamenogorsk City = "ust_kamenogorsk"
)

// Cities lists every supported city in display order.
func Cities() []City {
	return []City{Astana, UstKamenogorsk}
}

func ParseCity(s string) (City, error) {
	for _, c := range Cities() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("model: unknown city %q", s)
}

func (c City) Label() string {
	switch c {
	case Astana:
		return "Astana"
	case UstKamenogorsk:
		return "Ust-Kamenogorsk"
	}
	return string(c)
}

// Next cycles to the other city, wrapping around.
func (c City) Next() City {
	cities := Cities()
	for i, it := range cities {
		if it == c {
			return cities[(i+1)%len(cities)]
		}
	}
	return cities[0]
}

// ClientResult is the sales outcome recorded against a trial lesson.
// The empty value means no outcome has been recorded yet.
type ClientResult string

const (
	ResultNone       ClientResult = ""
	ResultBought     ClientResult = "bought"
	ResultNotBought  ClientResult = "not_bought"
	ResultPrepayment ClientResult = "prepayment"
)

// ResultOptions lists the results in the order the edit surface cycles them.
func ResultOptions() []ClientResult {
	return []ClientResult{ResultNone, ResultBought, ResultNotBought, ResultPrepayment}
}

func ParseResult(s string) (ClientResult, error) {
	for _, r := range ResultOptions() {
		if s == string(r) {
			return r, nil
		}
	}
	return ResultNone, fmt.Errorf("model: unknown result %q", s)
}

func (r ClientResult) Label() string {
	switch r {
	case ResultNone:
		return "not set"
	case ResultBought:
		return "bought"
	case ResultNotBought:
		return "not bought"
	case ResultPrepayment:
		return "prepayment"
	}
	return string(r)
}

// EmployeeRole distinguishes who a lesson recording belongs to.
type EmployeeRole string

const (
	RoleTeacher      EmployeeRole = "teacher"
	RoleSalesManager EmployeeRole = "sales_manager"
)

func (r EmployeeRole) Label() string {
	switch r {
	case RoleTeacher:
		return "Teacher"
	case RoleSalesManager:
		return "Sales manager"
	}
	return string(r)
}

// Direction is a teaching discipline attached to an employee.
type Direction string

const (
	Guitar Direction = "guitar"
	Piano  Direction = "piano"
	Vocal  Direction = "vocal"
	Dombra Direction = "dombra"
)

func (d Direction) Label() string {
	switch d {
	case Guitar:
		return "Guitar"
	case Piano:
		return "Piano"
	case Vocal:
		return "Vocal"
	case Dombra:
		return "Dombra"
	}
	return string(d)
}

// RecordingStatus tracks a recording through the transcription pipeline.
type RecordingStatus string

const (
	StatusPending      RecordingStatus = "pending"
	StatusTranscribing RecordingStatus = "transcribing"
	StatusAnalyzing    RecordingStatus = "analyzing"
	StatusDone         RecordingStatus = "done"
	StatusError        RecordingStatus = "error"
)

func (s RecordingStatus) Label() string {
	switch s {
	case StatusPending:
		return "waiting for processing"
	case StatusTranscribing:
		return "transcribing"
	case StatusAnalyzing:
		return "analyzing"
	case StatusDone:
		return "done"
	case StatusError:
		return "processing failed"
	}
	return string(s)
}
