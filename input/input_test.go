package input

import (
	"strings"
	"sync"
	"testing"

	"github.com/pthm-cable/snake/board"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		want    Command
		wantErr bool
	}{
		{"up", Up, false},
		{"  DOWN\n", Down, false},
		{"left", Left, false},
		{"right", Right, false},
		{"pause", TogglePause, false},
		{"p", TogglePause, false},
		{"reset", Reset, false},
		{"quit", Quit, false},
		{"q", Quit, false},
		{"step", Step, false},
		{".", Step, false},
		{"tick", Step, false},
		{"none", None, true},
		{"jump", None, true},
		{"", None, true},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCommand(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCommandDirection(t *testing.T) {
	tests := []struct {
		cmd  Command
		want board.Direction
		ok   bool
	}{
		{Up, board.Up, true},
		{Down, board.Down, true},
		{Left, board.Left, true},
		{Right, board.Right, true},
		{TogglePause, board.Direction{}, false},
		{Quit, board.Direction{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.cmd.Direction()
		if ok != tt.ok || got != tt.want {
			t.Errorf("%v.Direction() = %v, %v; want %v, %v", tt.cmd, got, ok, tt.want, tt.ok)
		}
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(8)
	in := []Command{Up, Left, TogglePause, Reset}
	for _, c := range in {
		if !q.Push(c) {
			t.Fatalf("push %v rejected", c)
		}
	}

	got := q.Drain(nil)
	if len(got) != len(in) {
		t.Fatalf("expected %d commands, got %d", len(in), len(got))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], in[i])
		}
	}
	if rest := q.Drain(nil); len(rest) != 0 {
		t.Errorf("expected empty queue after drain, got %v", rest)
	}
}

func TestQueueDropsOnFull(t *testing.T) {
	q := NewQueue(2)
	q.Push(Up)
	q.Push(Down)
	if q.Push(Left) {
		t.Error("push on full queue should be rejected")
	}
	if q.Dropped() != 1 {
		t.Errorf("expected 1 dropped, got %d", q.Dropped())
	}
	got := q.Drain(nil)
	if len(got) != 2 || got[0] != Up || got[1] != Down {
		t.Errorf("unexpected drain result %v", got)
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue(1000)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				q.Push(Up)
			}
		}()
	}
	wg.Wait()

	if n := len(q.Drain(nil)); n != 500 {
		t.Errorf("expected 500 commands, got %d", n)
	}
}

func TestReadCommands(t *testing.T) {
	q := NewQueue(16)
	push := func(c Command) bool { q.Push(c); return true }
	err := ReadCommands(strings.NewReader("up\n\nbogus\nPAUSE\n  left \nquit\n"), push)
	if err != nil {
		t.Fatalf("ReadCommands failed: %v", err)
	}

	got := q.Drain(nil)
	want := []Command{Up, TogglePause, Left, Quit}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadCommandsStopsWhenRefused(t *testing.T) {
	var got []Command
	send := func(c Command) bool {
		got = append(got, c)
		return len(got) < 2
	}
	if err := ReadCommands(strings.NewReader("up\nleft\ndown\n"), send); err != nil {
		t.Fatalf("ReadCommands failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected reading to stop after 2 commands, got %v", got)
	}
}

func TestQueueSendWaitsForSpace(t *testing.T) {
	q := NewQueue(1)
	q.Push(Up)

	stop := make(chan struct{})
	sent := make(chan bool)
	go func() { sent <- q.Send(Left, stop) }()

	if c := <-q.C(); c != Up {
		t.Fatalf("expected up first, got %v", c)
	}
	if !<-sent {
		t.Fatal("Send should succeed once space frees up")
	}
	if c := <-q.C(); c != Left {
		t.Errorf("expected left, got %v", c)
	}
	if q.Dropped() != 0 {
		t.Errorf("Send must not drop, dropped = %d", q.Dropped())
	}
}

func TestQueueSendStops(t *testing.T) {
	q := NewQueue(1)
	q.Push(Up)

	stop := make(chan struct{})
	close(stop)
	if q.Send(Left, stop) {
		t.Error("Send on a full queue should give up once stopped")
	}
}
