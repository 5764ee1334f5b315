package ws

import (
	"testing"
	"time"
)

func newTestClient() *Client {
	return &Client{Send: make(chan []byte, 8)}
}

func TestHubRegisterAndBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c1 := newTestClient()
	c2 := newTestClient()
	hub.Register <- c1
	hub.Register <- c2

	msg := []byte(`{"type":"antrian_update","data":{"event":"created"}}`)
	hub.Broadcast <- msg

	for _, c := range []*Client{c1, c2} {
		select {
		case got := <-c.Send:
			if string(got) != string(msg) {
				t.Errorf("unexpected message: %s", got)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for broadcast")
		}
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := newTestClient()
	hub.Register <- c
	hub.Unregister <- c

	// Setelah unregister, kanal Send ditutup oleh hub.
	select {
	case _, ok := <-c.Send:
		if ok {
			t.Error("expected closed Send channel")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	// Broadcast setelah unregister tidak boleh macet.
	done := make(chan struct{})
	go func() {
		hub.Broadcast <- []byte("x")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked after unregister")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := &Client{Send: make(chan []byte)} // tanpa buffer, tidak pernah dibaca
	hub.Register <- slow

	done := make(chan struct{})
	go func() {
		hub.Broadcast <- []byte("pesan")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on slow client")
	}

	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Error("expected slow client channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for slow client drop")
	}
}
