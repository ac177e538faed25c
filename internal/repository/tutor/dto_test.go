package tutor

import (
	"strings"
	"testing"
)

func TestDecodeSeed(t *testing.T) {
	data := []byte(`[
		{"id":"ann","firstname":"Ann","subjects":[{"name":"Mathematics"}],"rating":4,"tutorVerified":true},
		{"id":"bo","firstname":"Bo","rating":"n/a","tutorVerified":false}
	]`)

	tutors, err := DecodeSeed(data)
	if err != nil {
		t.Fatalf("DecodeSeed: %v", err)
	}
	if len(tutors) != 2 {
		t.Fatalf("expected 2 tutors, got %d", len(tutors))
	}
	if tutors[0].ID() != "ann" || !tutors[0].Verified() || !tutors[0].HasSubject("mathematics") {
		t.Errorf("unexpected first tutor: %+v", tutors[0])
	}
	if _, ok := tutors[1].Rating(); ok {
		t.Error("non-numeric rating should decode as absent")
	}
}

func TestDecodeSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not json", `{`, "unmarshal seed"},
		{"missing id", `[{"firstname":"Ann"}]`, "id is required"},
		{"duplicate id", `[{"id":"a"},{"id":"a"}]`, "duplicate id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSeed([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
