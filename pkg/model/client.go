package model

import (
	"encoding/json"
	"time"
)

// ClientCard is one client on the weekly board: a trial lesson slot plus
// whatever the pipeline has produced for it so far.
type ClientCard struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	City           City            `json:"city"`
	LessonDatetime time.Time       `json:"lesson_datetime"`
	Result         ClientResult    `json:"result,omitempty"`
	TeacherName    string          `json:"teacher_name,omitempty"`
	ManagerName    string          `json:"manager_name,omitempty"`
	TeacherScore   int             `json:"teacher_score,omitempty"`
	ManagerScore   int             `json:"manager_score,omitempty"`
	TeacherStatus  RecordingStatus `json:"teacher_status,omitempty"`
	ManagerStatus  RecordingStatus `json:"manager_status,omitempty"`
}

// Score prefers the teacher's score when both are present.
func (c ClientCard) Score() int {
	if c.TeacherScore != 0 {
		return c.TeacherScore
	}
	return c.ManagerScore
}

// RecordingDetail is a processed lesson recording shown in the detail view.
type RecordingDetail struct {
	ID            string          `json:"id"`
	EmployeeName  string          `json:"employee_name"`
	EmployeeRole  EmployeeRole    `json:"employee_role"`
	Directions    []Direction     `json:"directions,omitempty"`
	Transcription string          `json:"transcription,omitempty"`
	Analysis      string          `json:"analysis,omitempty"`
	Score         int             `json:"score,omitempty"`
	Status        RecordingStatus `json:"status"`
}

// ClientDetail is the full client record with nested recordings.
type ClientDetail struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	City           City              `json:"city"`
	LessonDatetime time.Time         `json:"lesson_datetime"`
	Result         ClientResult      `json:"result,omitempty"`
	Recordings     []RecordingDetail `json:"recordings"`
}

// ClientUpdate carries only the fields the edit surface changed. Result is a
// pointer so three states survive the wire: nil is omitted, a value is sent,
// and a clear back to none goes out as an explicit null.
type ClientUpdate struct {
	Name   string
	Result *ClientResult
}

// Empty reports whether the update would be a no-op request.
func (u ClientUpdate) Empty() bool {
	return u.Name == "" && u.Result == nil
}

// MarshalJSON omits untouched fields. A Result cleared to ResultNone encodes
// as null; the empty string is not a valid enum member server-side.
func (u ClientUpdate) MarshalJSON() ([]byte, error) {
	body := make(map[string]interface{}, 2)
	if u.Name != "" {
		body["name"] = u.Name
	}
	if u.Result != nil {
		if *u.Result == ResultNone {
			body["result"] = nil
		} else {
			body["result"] = *u.Result
		}
	}
	return json.Marshal(body)
}

// AnalyticsReport is the precomputed aggregate shape delivered by the
// backend; the client only displays it.
type AnalyticsReport struct {
	TotalClients int                  `json:"total_clients"`
	Bought       int                  `json:"bought"`
	NotBought    int                  `json:"not_bought"`
	Prepayment   int                  `json:"prepayment"`
	Conversion   float64              `json:"conversion"`
	AvgScore     float64              `json:"avg_score"`
	Employees    []EmployeeAnalytics  `json:"employees,omitempty"`
	Directions   map[Direction]int    `json:"directions,omitempty"`
	Results      map[ClientResult]int `json:"results,omitempty"`
}

// EmployeeAnalytics is one row of the per-employee aggregate table.
type EmployeeAnalytics struct {
	Name       string       `json:"name"`
	Role       EmployeeRole `json:"role"`
	Lessons    int          `json:"lessons"`
	AvgScore   float64      `json:"avg_score"`
	Conversion float64      `json:"conversion"`
}

// Setting is a key-value pair from the settings editor.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
