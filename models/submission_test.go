package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected, StatusRevision} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "Approved", "accepted", "deleted", "pending "} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}

func TestParseTrack(t *testing.T) {
	cases := []struct {
		in   string
		want Track
		ok   bool
	}{
		{"research", TrackResearch, true},
		{"innovation", TrackInnovation, true},
		{"Research", TrackResearch, true},
		{"INNOVATION", TrackInnovation, true},
		{"poster", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := ParseTrack(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseTrack(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseTrack(%q) succeeded, want error", c.in)
		}
	}
}

func TestTrackForSubmissionID(t *testing.T) {
	if got := TrackForSubmissionID("R2026-0042"); got != TrackResearch {
		t.Errorf("R-prefixed id mapped to %q", got)
	}
	if got := TrackForSubmissionID("I2026-0042"); got != TrackInnovation {
		t.Errorf("I-prefixed id mapped to %q", got)
	}
}

func TestTrackPrefix(t *testing.T) {
	if TrackResearch.Prefix() != "R" || TrackInnovation.Prefix() != "I" {
		t.Fatalf("unexpected prefixes: %q %q", TrackResearch.Prefix(), TrackInnovation.Prefix())
	}
}

func TestSnapshotUsesInnovatorNameAsAuthor(t *testing.T) {
	s := InnovationSubmission{
		ID:            3,
		SubmissionID:  "I2026-0100",
		InnovatorName: "Khalid Omar",
		MentorName:    "Dr. Rania Saleh",
		Email:         "khalid@example.edu",
		Title:         "Solar Desalination Kit",
		Status:        StatusPending,
	}
	snap := s.Snapshot()
	if snap.AuthorName != "Khalid Omar" {
		t.Fatalf("snapshot author = %q, want the innovator name", snap.AuthorName)
	}
	if snap.SubmissionID != "I2026-0100" || snap.Status != StatusPending {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestMarshalDetails(t *testing.T) {
	got := MarshalDetails(map[string]any{"status": "approved"})
	if got == nil || *got != `{"status":"approved"}` {
		t.Fatalf("MarshalDetails = %v", got)
	}
	if MarshalDetails(func() {}) != nil {
		t.Fatal("unmarshalable value should yield nil")
	}
}
