package reactive

import "testing"

func TestBindingRunsImmediately(t *testing.T) {
	runs := 0
	b := Bind(func() Cleanup {
		runs++
		return nil
	})
	defer b.Dispose()

	if runs != 1 {
		t.Errorf("expected binding to run once on creation, got %d runs", runs)
	}
}

func TestBindingRerunsOnChange(t *testing.T) {
	index := NewCell(1)
	runs := 0
	var seen []int

	b := Bind(func() Cleanup {
		runs++
		seen = append(seen, index.Get())
		return nil
	})
	defer b.Dispose()

	index.Set(2)
	index.Set(3)

	if runs != 3 {
		t.Errorf("expected 3 runs, got %d", runs)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Errorf("unexpected observed values: %v", seen)
	}
}

func TestBindingDynamicDependencies(t *testing.T) {
	useFirst := NewCell(true)
	first := NewCell("a")
	second := NewCell("x")
	runs := 0

	b := Bind(func() Cleanup {
		runs++
		if useFirst.Get() {
			_ = first.Get()
		} else {
			_ = second.Get()
		}
		return nil
	})
	defer b.Dispose()

	// Switch the tracked branch
	useFirst.Set(false)
	if runs != 2 {
		t.Fatalf("expected 2 runs after switch, got %d", runs)
	}

	// first is no longer a dependency
	first.Set("b")
	if runs != 2 {
		t.Errorf("write to untracked cell should not re-run binding, got %d runs", runs)
	}

	second.Set("y")
	if runs != 3 {
		t.Errorf("write to tracked cell should re-run binding, got %d runs", runs)
	}
}

func TestBindingCleanup(t *testing.T) {
	index := NewCell(0)
	cleanups := 0

	b := Bind(func() Cleanup {
		_ = index.Get()
		return func() { cleanups++ }
	})

	index.Set(1) // cleanup from the first run fires before the re-run
	if cleanups != 1 {
		t.Errorf("expected 1 cleanup before re-run, got %d", cleanups)
	}

	b.Dispose()
	if cleanups != 2 {
		t.Errorf("expected cleanup on dispose, got %d", cleanups)
	}
}

func TestBindingDispose(t *testing.T) {
	index := NewCell(0)
	runs := 0

	b := Bind(func() Cleanup {
		runs++
		_ = index.Get()
		return nil
	})

	b.Dispose()
	b.Dispose() // safe to call twice

	index.Set(1)
	if runs != 1 {
		t.Errorf("disposed binding must not re-run, got %d runs", runs)
	}
}

func TestBatchDeduplicates(t *testing.T) {
	a := NewCell(0)
	b := NewCell(0)
	runs := 0

	bind := Bind(func() Cleanup {
		runs++
		_ = a.Get()
		_ = b.Get()
		return nil
	})
	defer bind.Dispose()

	Batch(func() {
		a.Set(1)
		a.Set(2)
		b.Set(1)
	})

	// One initial run plus a single batched notification.
	if runs != 2 {
		t.Errorf("expected 2 runs, got %d", runs)
	}
	if a.Peek() != 2 || b.Peek() != 1 {
		t.Errorf("batch must apply all writes, got a=%d b=%d", a.Peek(), b.Peek())
	}
}

func TestBatchNested(t *testing.T) {
	a := NewCell(0)
	runs := 0

	bind := Bind(func() Cleanup {
		runs++
		_ = a.Get()
		return nil
	})
	defer bind.Dispose()

	Batch(func() {
		a.Set(1)
		Batch(func() {
			a.Set(2)
		})
		// Inner batch completion must not flush early.
		if runs != 1 {
			t.Errorf("inner batch flushed early, got %d runs", runs)
		}
	})

	if runs != 2 {
		t.Errorf("expected 2 runs after outer batch, got %d", runs)
	}
}

func TestUntracked(t *testing.T) {
	index := NewCell(0)
	runs := 0

	b := Bind(func() Cleanup {
		runs++
		Untracked(func() {
			_ = index.Get()
		})
		return nil
	})
	defer b.Dispose()

	index.Set(1)
	if runs != 1 {
		t.Errorf("untracked read must not subscribe, got %d runs", runs)
	}
}
