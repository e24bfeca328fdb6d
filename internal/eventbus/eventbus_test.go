package eventbus

import "testing"

func TestPublishSubscribe(t *testing.T) {
	bus := New[int]()
	sub := bus.Subscribe()
	bus.Publish(7)
	if got := <-sub; got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	bus.Close()
	if _, ok := <-sub; ok {
		t.Fatalf("channel still open after Close")
	}
}

func TestPublishNonBlocking(t *testing.T) {
	bus := New[int]()
	defer bus.Close()
	bus.Subscribe() // never drained
	// More events than the subscriber buffer; Publish must not stall.
	for i := 0; i < 100; i++ {
		bus.Publish(i)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := New[string]()
	defer bus.Close()
	sub := bus.Subscribe()
	bus.Unsubscribe(sub)
	if _, ok := <-sub; ok {
		t.Fatalf("channel still open after Unsubscribe")
	}
	bus.Publish("after")
}

func TestPublishAfterClose(t *testing.T) {
	bus := New[int]()
	bus.Close()
	bus.Publish(1)
	bus.Close()
}
