package models

import (
	"testing"
	"time"
)

func TestHubBroadcastFanOut(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := &ClientConnection{Hub: hub, Send: make(chan []byte, 4), UserID: 1}
	b := &ClientConnection{Hub: hub, Send: make(chan []byte, 4), UserID: 2}
	hub.Register <- a
	hub.Register <- b

	hub.Broadcast <- []byte(`{"type":"booking.created"}`)

	for _, c := range []*ClientConnection{a, b} {
		select {
		case msg := <-c.Send:
			if string(msg) != `{"type":"booking.created"}` {
				t.Errorf("client %d received %s", c.UserID, msg)
			}
		case <-time.After(time.Second):
			t.Fatalf("client %d did not receive broadcast", c.UserID)
		}
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := &ClientConnection{Hub: hub, Send: make(chan []byte, 1), UserID: 1}
	hub.Register <- c
	hub.Unregister <- c

	select {
	case _, ok := <-c.Send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed after unregister")
	}

	// Broadcasting after the client left must not panic or block.
	hub.Broadcast <- []byte("after")
	time.Sleep(10 * time.Millisecond)
}
