package amqp

import "testing"

func TestInboundFromJSONDefaults(t *testing.T) {
	msg, err := inboundFromJSON([]byte(`{"from":"user","text":"gastei 50 mercado"}`))
	if err != nil {
		t.Fatalf("inboundFromJSON() error: %v", err)
	}
	if msg.ID == "" {
		t.Error("missing id was not defaulted")
	}
	if msg.Timestamp.IsZero() {
		t.Error("missing timestamp was not defaulted")
	}
	if msg.Text != "gastei 50 mercado" || msg.From != "user" {
		t.Errorf("message = %+v", msg)
	}
}

func TestInboundFromJSONRejectsGarbage(t *testing.T) {
	if _, err := inboundFromJSON([]byte("not json")); err == nil {
		t.Error("garbage payload accepted")
	}
}

func TestOutboundEventCorrelation(t *testing.T) {
	ev := newOutboundEvent("msg-1", "user", EventReply, "olá")
	if ev.InReplyTo != "msg-1" || ev.To != "user" || ev.Type != EventReply || ev.Text != "olá" {
		t.Errorf("event = %+v", ev)
	}
	if ev.ID == "" || ev.Timestamp.IsZero() {
		t.Errorf("event missing id or timestamp: %+v", ev)
	}
}
