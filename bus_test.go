package coopbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/method"
	"github.com/coopbus/coopbus/status"
)

func uniqueTopic(t *testing.T) Topic {
	return NewTopic("test/" + t.Name())
}

func TestTopicParentChildRoundTrip(t *testing.T) {
	top := uniqueTopic(t)
	child := top.Child("leaf")
	if got := child.Parent().Child(child.ID()).Path(); got != child.Path() {
		t.Fatalf("parent().child(id()).path() = %q, want %q", got, child.Path())
	}
}

func TestServeThenCurrentService(t *testing.T) {
	top := uniqueTopic(t)
	svc, err := top.ServeDefault(func(r *Request) { r.RespondOK("ok") })
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}
	if top.CurrentService() != svc {
		t.Fatalf("CurrentService did not return the installed service")
	}

	_, err = top.ServeDefault(func(r *Request) {})
	if _, ok := err.(*ServiceExistsError); !ok {
		t.Fatalf("second Serve: got %v, want *ServiceExistsError", err)
	}
}

func TestSubscribeReceivesPublishedEvent(t *testing.T) {
	top := uniqueTopic(t)
	received := make(chan string, 1)
	sub := top.SubscribeDefault(func(e *Event) {
		received <- MustAs[string](e.Content)
	})
	_ = sub

	top.PublishDefault(status.OK, "hello")

	select {
	case got := <-received:
		if got != "hello" {
			t.Fatalf("subscriber got %q, want %q", got, "hello")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber was never invoked")
	}
}

func TestRecursivePublishReachesAncestorSubscriber(t *testing.T) {
	parent := uniqueTopic(t)
	child := parent.Child("child")

	received := make(chan struct{}, 1)
	parent.SubscribeDefault(func(e *Event) { received <- struct{}{} })

	child.Publish(status.OK, "x", flags.DefaultMessageFiltering, flags.NoSpecialHandling)

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("ancestor subscriber was never invoked by a recursive publish")
	}
}

func TestIssueWithNoServiceReturnsServiceNotFound(t *testing.T) {
	top := uniqueTopic(t)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic, got none")
		}
		if _, ok := r.(*ServiceNotFoundError); !ok {
			t.Fatalf("recovered %v, want *ServiceNotFoundError", r)
		}
	}()
	top.Issue(method.GET, nil, nil, flags.DefaultMessageFiltering, flags.NoSpecialHandling)
}

func TestGetRoundTripsThroughService(t *testing.T) {
	top := uniqueTopic(t)
	top.ServeDefault(func(r *Request) {
		r.RespondOK(MustAs[int](r.Content) * 2)
	})

	resp, err := top.Get(21)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := MustAs[int](resp.Content); got != 42 {
		t.Fatalf("Get returned %d, want 42", got)
	}
	if !resp.Status().IsSuccessful() {
		t.Fatalf("response status %v is not successful", resp.Status())
	}
}

func TestServiceDefaultsToNoContentWhenUnanswered(t *testing.T) {
	top := uniqueTopic(t)
	top.ServeDefault(func(r *Request) {})

	resp, err := top.Get(nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if resp.Status() != status.NoContent {
		t.Fatalf("status = %v, want NoContent", resp.Status())
	}
}

func TestServiceStatusExceptionBecomesResponse(t *testing.T) {
	top := uniqueTopic(t)
	top.ServeDefault(func(r *Request) { panic(&status.Exception{Status: status.Gone}) })

	resp, err := top.Get(nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if resp.Status() != status.Gone {
		t.Fatalf("status = %v, want Gone", resp.Status())
	}
}

func TestSubscriberPanicRepublishesAsException(t *testing.T) {
	top := uniqueTopic(t)
	caught := make(chan any, 1)

	top.Subscribe(func(e *Event) {
		if e.Filtering&flags.SubscriberException != 0 {
			caught <- e.Content.Value()
		}
	}, flags.DefaultReceiverIgnore&^flags.SubscriberException, flags.NoSpecialHandling)

	top.Subscribe(func(e *Event) {
		if e.Filtering&flags.SubscriberException == 0 {
			panic("boom")
		}
	}, flags.DefaultSubscriberIgnore, flags.NoSpecialHandling)

	top.PublishDefault(status.OK, "x")

	select {
	case v := <-caught:
		if v != "boom" {
			t.Fatalf("exception event carried %v, want %q", v, "boom")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber exception was never republished")
	}
}

func TestHandlingUnavailableWithoutInterceptor(t *testing.T) {
	top := uniqueTopic(t)
	top.ServeDefault(func(r *Request) { r.RespondOK(nil) })

	defer func() {
		r := recover()
		if _, ok := r.(*HandlingUnavailableError); !ok {
			t.Fatalf("recovered %v, want *HandlingUnavailableError", r)
		}
	}()
	top.Issue(method.GET, nil, nil, flags.DefaultMessageFiltering, flags.Realtime)
}

func TestHandlingInterceptorOverridesDefaultRefusal(t *testing.T) {
	top := uniqueTopic(t)
	top.ServeDefault(func(r *Request) { r.RespondOK("ok") })

	SetHandlingInterceptor(func(r Receiver, unhandled flags.Handling) bool { return true })
	defer SetHandlingInterceptor(nil)

	resp, err := AwaitContext[string](context.Background(), top, method.GET, nil, flags.DefaultMessageFiltering, flags.Realtime)
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("got %q, want %q", resp, "ok")
	}
}

func TestFutureAwaitRawResponse(t *testing.T) {
	top := uniqueTopic(t)
	top.ServeDefault(func(r *Request) { r.RespondCreated("payload") })

	client, future := NewFuture[Response]()
	top.Issue(method.POST, nil, client, flags.DefaultMessageFiltering, flags.NoSpecialHandling)

	resp, err := future.Await(context.Background())
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if resp.Status() != status.Created {
		t.Fatalf("status = %v, want Created", resp.Status())
	}
}

func TestFutureAwaitConvertsFailureStatusToError(t *testing.T) {
	top := uniqueTopic(t)
	top.ServeDefault(func(r *Request) { r.RespondNotFound("nope") })

	client, future := NewFuture[string]()
	top.Issue(method.GET, nil, client, flags.DefaultMessageFiltering, flags.NoSpecialHandling)

	_, err := future.Await(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	statusErr, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("err = %v (%T), want *StatusError", err, err)
	}
	if statusErr.Status != status.NotFound {
		t.Fatalf("status = %v, want NotFound", statusErr.Status)
	}
}

func TestRelayForwardsEvents(t *testing.T) {
	source := uniqueTopic(t)
	dest := NewTopic("test/" + t.Name() + "-relay-dest")

	_, err := NewEventRelay(source, dest, flags.DefaultSubscriberIgnore, flags.NoSpecialHandling)
	if err != nil {
		t.Fatalf("NewEventRelay failed: %v", err)
	}

	received := make(chan string, 1)
	dest.SubscribeDefault(func(e *Event) { received <- MustAs[string](e.Content) })

	source.PublishDefault(status.OK, "relayed")

	select {
	case got := <-received:
		if got != "relayed" {
			t.Fatalf("got %q, want %q", got, "relayed")
		}
	case <-time.After(time.Second):
		t.Fatal("relay never forwarded the event")
	}
}

func TestRelayRejectsRecursiveLoop(t *testing.T) {
	source := uniqueTopic(t)
	descendant := source.Child("inner")

	if _, err := NewEventRelay(source, descendant, flags.DefaultSubscriberIgnore, flags.NoSpecialHandling); err == nil {
		t.Fatal("expected NewEventRelay to reject a descendant destination")
	}
}

func TestServiceRelayForwardsRequests(t *testing.T) {
	source := uniqueTopic(t)
	dest := NewTopic("test/" + t.Name() + "-relay-dest")
	dest.ServeDefault(func(r *Request) { r.RespondOK(MustAs[int](r.Content) + 1) })

	if _, err := NewServiceRelay(source, dest, flags.DefaultServiceIgnore, flags.NoSpecialHandling); err != nil {
		t.Fatalf("NewServiceRelay failed: %v", err)
	}

	resp, err := source.Get(41)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := MustAs[int](resp.Content); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestDiscoverServicesSeesExistingAndFuture(t *testing.T) {
	root := uniqueTopic(t)
	existing := root.Child("existing")
	existing.ServeDefault(func(r *Request) {})

	var mu sync.Mutex
	seen := map[string]bool{}

	watch := DiscoverServices(func(svc *Service) {
		mu.Lock()
		seen[svc.Topic().Path()] = true
		mu.Unlock()
	}, root, flags.NoSpecialHandling)
	defer func() { _ = watch }()

	later := root.Child("later")
	later.ServeDefault(func(r *Request) {})

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := len(seen)
		mu.Unlock()
		if n >= 2 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	want := map[string]bool{existing.Path(): true, later.Path(): true}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("discovered services mismatch (-want +got):\n%s", diff)
	}
}

func TestMessageIDsAreMonotonicAndUnique(t *testing.T) {
	top := uniqueTopic(t)
	top.ServeDefault(func(r *Request) {})

	var last uint64
	for i := 0; i < 5; i++ {
		resp, err := top.Get(nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if resp.ID <= last {
			t.Fatalf("response id %d did not increase past %d", resp.ID, last)
		}
		last = resp.ID
	}
}
