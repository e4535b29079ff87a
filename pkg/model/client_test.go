package model

import (
	"encoding/json"
	"testing"
)

func TestClientUpdateWireShape(t *testing.T) {
	bought := ResultBought
	cleared := ResultNone
	tests := []struct {
		name string
		upd  ClientUpdate
		want string
	}{
		{"name only", ClientUpdate{Name: "Aruzhan"}, `{"name":"Aruzhan"}`},
		{"result set", ClientUpdate{Result: &bought}, `{"result":"bought"}`},
		{"result cleared", ClientUpdate{Result: &cleared}, `{"result":null}`},
		{"untouched", ClientUpdate{}, `{}`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.upd)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if string(got) != tt.want {
			t.Fatalf("%s: body = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestClientCardScorePrefersTeacher(t *testing.T) {
	c := ClientCard{TeacherScore: 7, ManagerScore: 4}
	if got := c.Score(); got != 7 {
		t.Fatalf("score = %d, want the teacher's", got)
	}
	c.TeacherScore = 0
	if got := c.Score(); got != 4 {
		t.Fatalf("score = %d, want the manager's fallback", got)
	}
}
