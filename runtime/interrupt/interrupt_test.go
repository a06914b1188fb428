package interrupt

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"omibyte.io/cortexrt/runtime/register/primask"
	"omibyte.io/cortexrt/sim"
)

type vectors map[int]func()

func (v vectors) InitialSP() uint32 { return sim.SRAMBase + sim.SRAMSize }

func (v vectors) Handler(n int) func() { return v[n] }

func TestFreeRestoresPrimask(t *testing.T) {
	tests := []struct {
		name    string
		primask uint32
	}{
		{"enabled", 0},
		{"disabled", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cpu := sim.New()
			defer cpu.Install()()
			cpu.SetPrimask(tc.primask)

			var inside primask.Primask
			Free(func(*CriticalSection) struct{} {
				inside = primask.Read()
				return struct{}{}
			})

			if inside != primask.Inactive {
				t.Errorf("body ran with interrupts %v", inside)
			}
			if got := cpu.Primask(); got != tc.primask {
				t.Errorf("PRIMASK after Free = %d, want %d", got, tc.primask)
			}
		})
	}
}

func TestFreeReturnsResult(t *testing.T) {
	cpu := sim.New()
	defer cpu.Install()()

	got := Free(func(*CriticalSection) int {
		return 42
	})
	if got != 42 {
		t.Errorf("Free returned %d, want 42", got)
	}
}

func TestFreeNested(t *testing.T) {
	cpu := sim.New()
	defer cpu.Install()()

	var observed []primask.Primask
	Run(func(*CriticalSection) {
		Run(func(*CriticalSection) {
			observed = append(observed, primask.Read())
		})
		observed = append(observed, primask.Read())
	})
	observed = append(observed, primask.Read())

	want := []primask.Primask{primask.Inactive, primask.Inactive, primask.Active}
	if diff := cmp.Diff(want, observed); diff != "" {
		t.Errorf("PRIMASK sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestFreeDefersInterrupts(t *testing.T) {
	var log []string
	cpu := sim.New(sim.WithVectors(vectors{
		20: func() { log = append(log, "irq") },
	}))
	defer cpu.Install()()

	Run(func(*CriticalSection) {
		Run(func(*CriticalSection) {
			log = append(log, "inner")
			if cpu.Raise(20) {
				t.Error("interrupt taken inside critical section")
			}
		})
		log = append(log, "outer")
	})
	log = append(log, "after")

	want := []string{"inner", "outer", "irq", "after"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("execution order mismatch (-want +got):\n%s", diff)
	}
	if len(cpu.Pending()) != 0 {
		t.Errorf("pending after Free: %v", cpu.Pending())
	}
}

func TestFreePanicLeavesInterruptsDisabled(t *testing.T) {
	cpu := sim.New()
	defer cpu.Install()()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic did not propagate")
			}
		}()
		Run(func(*CriticalSection) {
			panic("boom")
		})
	}()

	if primask.Read() != primask.Inactive {
		t.Error("interrupts re-enabled after panic in critical section")
	}
}

func TestDisableIdempotent(t *testing.T) {
	cpu := sim.New()
	defer cpu.Install()()

	Disable()
	once := cpu.Primask()
	Disable()
	if twice := cpu.Primask(); twice != once {
		t.Errorf("PRIMASK after second Disable = %d, want %d", twice, once)
	}

	Enable()
	if cpu.Primask() != 0 {
		t.Error("Enable did not clear PRIMASK")
	}
}

func TestMutex(t *testing.T) {
	cpu := sim.New()
	defer cpu.Install()()

	counter := NewMutex(0)
	for i := 0; i < 3; i++ {
		Run(func(cs *CriticalSection) {
			*counter.Borrow(cs)++
		})
	}

	got := Free(func(cs *CriticalSection) int {
		return *counter.Borrow(cs)
	})
	if got != 3 {
		t.Errorf("counter = %d, want 3", got)
	}
}

func TestMutexBorrowWithoutToken(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Borrow(nil) did not panic")
		}
	}()

	NewMutex(0).Borrow(nil)
}
