package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue()

	eq.Emit(EventServeReady, &ServeReadyPayload{Server: component.SideHuman}, 1)
	eq.Emit(EventHit, &HitPayload{Side: component.SideHuman, Serve: true}, 2)
	eq.Emit(EventPointScored, &PointScoredPayload{Winner: component.SideAI}, 3)

	if eq.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", eq.Len())
	}

	evs := eq.Consume()
	if len(evs) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(evs))
	}
	want := []EventType{EventServeReady, EventHit, EventPointScored}
	for i, ev := range evs {
		if ev.Type != want[i] || ev.Tick != int64(i+1) {
			t.Errorf("Event %d: expected %s at tick %d, got %s at tick %d", i, want[i], i+1, ev.Type, ev.Tick)
		}
	}

	if again := eq.Consume(); len(again) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(again))
	}
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	eq := NewEventQueue()
	producers, perProducer := 8, 16

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				eq.Push(GameEvent{Type: EventHit, Payload: id*100 + j})
			}
		}(p)
	}
	wg.Wait()

	evs := eq.Consume()
	if len(evs) != producers*perProducer {
		t.Fatalf("Expected %d events, got %d", producers*perProducer, len(evs))
	}
	seen := make(map[int]bool)
	for _, ev := range evs {
		v := ev.Payload.(int)
		if seen[v] {
			t.Errorf("Duplicate payload %d", v)
		}
		seen[v] = true
	}
	if eq.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", eq.Len())
	}
}

// TestEventQueueOverflowKeepsNewest checks the oldest events are dropped once the ring wraps
func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 44
	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventHit, Payload: i})
	}

	evs := eq.Consume()
	if len(evs) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(evs))
	}
	if last := evs[len(evs)-1].Payload.(int); last != total-1 {
		t.Errorf("Expected last payload %d, got %d", total-1, last)
	}
	for i := 1; i < len(evs); i++ {
		if evs[i].Payload.(int) != evs[i-1].Payload.(int)+1 {
			t.Fatalf("Events not sequential at %d", i)
		}
	}
}

type recordingHandler struct {
	types []EventType
	got   []GameEvent
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) HandleEvent(_ struct{}, ev GameEvent) { h.got = append(h.got, ev) }

func TestRouterDispatchByType(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[struct{}](eq)

	hits := &recordingHandler{types: []EventType{EventHit}}
	all := &recordingHandler{types: []EventType{EventHit, EventNetTouch}}
	r.Register(hits)
	r.Register(all)

	if r.HandlerCount(EventHit) != 2 || r.HandlerCount(EventMatchOver) != 0 {
		t.Fatalf("Unexpected handler counts")
	}

	eq.Emit(EventHit, nil, 1)
	eq.Emit(EventNetTouch, nil, 2)
	eq.Emit(EventMatchOver, nil, 3)

	if n := r.DispatchAll(struct{}{}); n != 3 {
		t.Errorf("Expected 3 drained, got %d", n)
	}
	if len(hits.got) != 1 {
		t.Errorf("Expected 1 hit event, got %d", len(hits.got))
	}
	if len(all.got) != 2 || all.got[1].Type != EventNetTouch {
		t.Errorf("Expected hit then net touch, got %v", all.got)
	}
}

type lifecycleLog struct {
	points  []component.Score
	overs   []component.Side
	servers []component.Side
}

func (l *lifecycleLog) OnPointScored(_ component.Side, s component.Score) { l.points = append(l.points, s) }

func (l *lifecycleLog) OnMatchOver(w component.Side, _ component.Score) { l.overs = append(l.overs, w) }

func (l *lifecycleLog) OnServeReady(s component.Side) { l.servers = append(l.servers, s) }

func TestLifecycleAdapter(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[struct{}](eq)
	log := &lifecycleLog{}
	r.Register(NewLifecycleHandler[struct{}](log))

	eq.Emit(EventServeReady, &ServeReadyPayload{Server: component.SideAI}, 1)
	eq.Emit(EventHit, &HitPayload{Side: component.SideAI}, 2)
	eq.Emit(EventPointScored, &PointScoredPayload{Winner: component.SideHuman, Score: component.Score{Human: 21, AI: 3}}, 3)
	eq.Emit(EventMatchOver, &MatchOverPayload{Winner: component.SideHuman}, 3)
	r.DispatchAll(struct{}{})

	if len(log.servers) != 1 || log.servers[0] != component.SideAI {
		t.Errorf("Expected AI serve ready, got %v", log.servers)
	}
	if len(log.points) != 1 || log.points[0].Human != 21 {
		t.Errorf("Expected one point callback at 21, got %v", log.points)
	}
	if len(log.overs) != 1 || log.overs[0] != component.SideHuman {
		t.Errorf("Expected human match over, got %v", log.overs)
	}
}

func TestEventTypeNames(t *testing.T) {
	if EventMatchOver.String() != "MatchOver" {
		t.Errorf("Expected MatchOver, got %s", EventMatchOver)
	}
	if EventType(99).String() != "Unknown" {
		t.Errorf("Expected Unknown for out-of-range type")
	}
}
