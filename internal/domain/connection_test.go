package domain

import "testing"

func TestParseConnectionCommaForm(t *testing.T) {
	connection := ParseConnection("OnTrigger", "door01,Open,,0.5,-1")

	if connection.Output != "OnTrigger" {
		t.Fatalf("unexpected output %q", connection.Output)
	}
	if connection.TargetName != "door01" || connection.Input != "Open" {
		t.Fatalf("unexpected target/input %q/%q", connection.TargetName, connection.Input)
	}
	if connection.Parameter != "" {
		t.Fatalf("unexpected parameter %q", connection.Parameter)
	}
	if connection.Delay != 0.5 {
		t.Fatalf("unexpected delay %v", connection.Delay)
	}
	if connection.TimesToFire != -1 {
		t.Fatalf("unexpected times to fire %d", connection.TimesToFire)
	}
}

func TestParseConnectionEscapeSeparatorWins(t *testing.T) {
	// ESC-delimited fields may themselves contain commas.
	connection := ParseConnection("OnPressed", "relay\x1bTrigger\x1bx,y\x1b1.25\x1b2")

	if connection.TargetName != "relay" || connection.Input != "Trigger" {
		t.Fatalf("unexpected target/input %q/%q", connection.TargetName, connection.Input)
	}
	if connection.Parameter != "x,y" {
		t.Fatalf("unexpected parameter %q", connection.Parameter)
	}
	if connection.Delay != 1.25 || connection.TimesToFire != 2 {
		t.Fatalf("unexpected delay/times %v/%d", connection.Delay, connection.TimesToFire)
	}
}

func TestParseConnectionDefaultsMissingFields(t *testing.T) {
	connection := ParseConnection("OnTrigger", "door01")

	if connection.TargetName != "door01" {
		t.Fatalf("unexpected target %q", connection.TargetName)
	}
	if connection.Input != "" || connection.Parameter != "" {
		t.Fatalf("expected empty input/parameter")
	}
	if connection.Delay != 0 || connection.TimesToFire != 0 {
		t.Fatalf("expected zero delay and times to fire")
	}
}

func TestParseConnectionIgnoresMalformedNumbers(t *testing.T) {
	connection := ParseConnection("OnTrigger", "door01,Open,,soon,many")

	if connection.Delay != 0 || connection.TimesToFire != 0 {
		t.Fatalf("malformed numbers should fall back to zero, got %v/%d", connection.Delay, connection.TimesToFire)
	}
}
